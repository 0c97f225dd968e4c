package contract

import (
	"github.com/pkg/errors"

	"presale_contract/sdk"
)

// SetPhase overwrites the sale phase with any of the four stages. There is
// deliberately no transition table: the admin may jump Upcoming straight to
// Closed or reopen an Ongoing sale. Only values outside the enum are rejected.
func SetPhase(cap *AdminCap, saleID uint64, phaseCode uint8) error {
	if cap == nil {
		return errors.Wrap(ErrUnauthorized, "nil admin capability")
	}
	phase, ok := phaseFromCode(phaseCode)
	if !ok {
		return errors.Wrapf(ErrInvalidConfiguration, "unknown phase code %d", phaseCode)
	}
	sale, err := loadSale(saleID)
	if err != nil {
		return err
	}
	sale.Phase = phase
	saveSale(sale)
	emitPhaseChangedEvent(saleID, phase)
	return nil
}

// SetWhitelistEnabled toggles the whitelist gate.
func SetWhitelistEnabled(cap *AdminCap, saleID uint64, enabled bool) error {
	if cap == nil {
		return errors.Wrap(ErrUnauthorized, "nil admin capability")
	}
	sale, err := loadSale(saleID)
	if err != nil {
		return err
	}
	sale.WhitelistEnabled = enabled
	saveSale(sale)
	emitWhitelistToggledEvent(saleID, enabled)
	return nil
}

// SetMaxSpend overwrites the per-user ceiling. The limit is not cross-checked
// against min spend or in-flight claims; that mirrors the original protocol.
func SetMaxSpend(cap *AdminCap, saleID uint64, limit Amount) error {
	if cap == nil {
		return errors.Wrap(ErrUnauthorized, "nil admin capability")
	}
	sale, err := loadSale(saleID)
	if err != nil {
		return err
	}
	sale.MaxSpend = limit
	saveSale(sale)
	emitMaxSpendChangedEvent(saleID, limit)
	return nil
}

// AddToWhitelist appends addresses to the sale whitelist. Only permitted
// while the sale is still Upcoming; afterwards the list is frozen.
func AddToWhitelist(cap *AdminCap, saleID uint64, addresses []sdk.Address) ([]sdk.Address, error) {
	if cap == nil {
		return nil, errors.Wrap(ErrUnauthorized, "nil admin capability")
	}
	sale, err := loadSale(saleID)
	if err != nil {
		return nil, err
	}
	if sale.Phase != PhaseUpcoming {
		return nil, errors.Wrapf(ErrWrongPhase,
			"sale %d is %s, whitelist edits need upcoming", saleID, sale.Phase)
	}
	added := addWhitelistEntries(saleID, addresses)
	if len(added) > 0 {
		sale.WhitelistCount += uint64(len(added))
		saveSale(sale)
	}
	emitWhitelistAddedEvent(saleID, len(added))
	return added, nil
}
