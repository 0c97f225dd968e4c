package contract

import (
	"github.com/pkg/errors"
)

// AdminSweep withdraws whatever both reserves currently hold — the unsold or
// truncation-remainder sale tokens plus every collected payment unit — and
// transfers it to the capability holder. Sweeping an already empty sale moves
// zero and succeeds, so the call is idempotent.
func AdminSweep(cap *AdminCap, saleID uint64) (Amount, Amount, error) {
	if cap == nil {
		return 0, 0, errors.Wrap(ErrUnauthorized, "nil admin capability")
	}
	sale, err := loadSale(saleID)
	if err != nil {
		return 0, 0, err
	}
	if sale.Phase != PhaseClosed && sale.Phase != PhaseAborted {
		return 0, 0, errors.Wrapf(ErrWrongPhase,
			"sale %d is %s, sweep needs closed or aborted", saleID, sale.Phase)
	}

	saleTokens := getReserve(saleReserveKey(saleID))
	payment := getReserve(paymentReserveKey(saleID))

	if saleTokens > 0 {
		if err := removeReserve(saleReserveKey(saleID), saleTokens); err != nil {
			return 0, 0, err
		}
		if err := sdkTransfer(cap.Holder(), saleTokens, sale.SaleAsset); err != nil {
			addReserve(saleReserveKey(saleID), saleTokens)
			return 0, 0, errors.Wrapf(ErrReserveUnderflow, "sweep sale tokens: %v", err)
		}
	}
	if payment > 0 {
		if err := removeReserve(paymentReserveKey(saleID), payment); err != nil {
			return 0, 0, err
		}
		if err := sdkTransfer(cap.Holder(), payment, sale.PaymentAsset); err != nil {
			addReserve(paymentReserveKey(saleID), payment)
			return 0, 0, errors.Wrapf(ErrReserveUnderflow, "sweep payment: %v", err)
		}
	}
	emitSweepEvent(saleID, cap.Holder().String(), saleTokens, payment)
	return saleTokens, payment, nil
}
