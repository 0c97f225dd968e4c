package contract

import (
	"github.com/pkg/errors"
)

// CreateSale escrows exactly TokensForSale units of the sale asset from the
// admin and opens a new sale in the Upcoming phase. Each validation is a
// distinct failure; nothing is written until the escrow draw succeeded.
func CreateSale(cap *AdminCap, args *CreateSaleArgs) (uint64, error) {
	if cap == nil {
		return 0, errors.Wrap(ErrUnauthorized, "nil admin capability")
	}
	if err := validateSaleArgs(args); err != nil {
		return 0, err
	}

	saleAsset := AssetFromString(args.SaleAsset)
	paymentAsset := AssetFromString(args.PaymentAsset)

	// The escrow deposit must match the declared supply exactly; drawing that
	// exact amount from the creator enforces it.
	if err := sdkDraw(args.TokensForSale, saleAsset); err != nil {
		return 0, errors.Wrapf(ErrInsufficientFunding,
			"escrow %d %s: %v", args.TokensForSale, saleAsset, err)
	}

	id := nextSaleID()
	sale := &Sale{
		ID:               id,
		MinSpend:         args.MinSpend,
		MaxSpend:         args.MaxSpend,
		RaiseTarget:      args.RaiseTarget,
		RaisedTotal:      0,
		TokensForSale:    args.TokensForSale,
		Softcap:          args.Softcap,
		SaleStartTs:      args.SaleStartTs,
		SaleEndTs:        args.SaleEndTs,
		DistributionTs:   args.DistributionTs,
		Phase:            PhaseUpcoming,
		WhitelistEnabled: args.WhitelistEnabled,
		SaleAsset:        saleAsset,
		PaymentAsset:     paymentAsset,
		CreatedAt:        nowUnix(),
	}
	addReserve(saleReserveKey(id), args.TokensForSale)
	saveSale(sale)
	emitSaleCreatedEvent(id, cap.Holder().String(), args.TokensForSale, args.RaiseTarget)
	return id, nil
}

// validateSaleArgs covers every creation precondition except the escrow draw.
func validateSaleArgs(args *CreateSaleArgs) error {
	if args == nil {
		return errors.Wrap(ErrInvalidConfiguration, "missing sale args")
	}
	if args.MinSpend <= 0 || args.MaxSpend <= 0 || args.RaiseTarget <= 0 ||
		args.TokensForSale <= 0 || args.Softcap <= 0 {
		return errors.Wrap(ErrInvalidConfiguration, "sale amounts must be positive")
	}
	if args.MinSpend >= args.MaxSpend {
		return errors.Wrapf(ErrInvalidConfiguration,
			"min spend %d must be below max spend %d", args.MinSpend, args.MaxSpend)
	}
	if args.Softcap >= args.RaiseTarget {
		return errors.Wrapf(ErrInvalidConfiguration,
			"softcap %d must be below raise target %d", args.Softcap, args.RaiseTarget)
	}
	if args.SaleEndTs >= args.DistributionTs {
		return errors.Wrapf(ErrInvalidConfiguration,
			"sale end %d must precede distribution %d", args.SaleEndTs, args.DistributionTs)
	}
	if args.SaleAsset == "" || args.PaymentAsset == "" {
		return errors.Wrap(ErrInvalidConfiguration, "sale and payment assets required")
	}
	return nil
}
