package contract

import (
	"github.com/pkg/errors"
)

// RedeemClaim consumes the caller's claim once the sale closed and pays out
// the entitled sale-token amount from the escrow reserve. The claim row is
// gone afterwards; a second call fails with NoSuchContribution.
func RedeemClaim(saleID uint64) (Amount, error) {
	sender := getSenderAddress()
	sale, err := loadSale(saleID)
	if err != nil {
		return 0, err
	}
	if sale.Phase != PhaseClosed {
		return 0, errors.Wrapf(ErrWrongPhase,
			"sale %d is %s, redemption needs closed", saleID, sale.Phase)
	}
	claim, ok, err := loadClaim(saleID, sender)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.Wrapf(ErrNoSuchContribution, "%s holds no claim on sale %d", sender, saleID)
	}

	// A reserve short of the entitlement means the escrow accounting broke;
	// this is a defect signal, not a user error.
	if err := removeReserve(saleReserveKey(saleID), claim.EntitledTokens); err != nil {
		return 0, err
	}
	if err := sdkTransfer(sender, claim.EntitledTokens, sale.SaleAsset); err != nil {
		// undo the debit so state stays consistent with custody
		addReserve(saleReserveKey(saleID), claim.EntitledTokens)
		return 0, errors.Wrapf(ErrReserveUnderflow, "payout transfer: %v", err)
	}
	deleteClaim(saleID, sender)
	emitRedeemEvent(saleID, sender.String(), claim.EntitledTokens)
	return claim.EntitledTokens, nil
}
