package contract

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"presale_contract/sdk"
)

// Deposit is the first-contribution entry point: the caller must not hold a
// claim yet. It returns the sale-token amount the new claim is entitled to.
func Deposit(saleID uint64, amount Amount) (Amount, error) {
	sender := getSenderAddress()
	sale, err := loadSale(saleID)
	if err != nil {
		return 0, err
	}
	if err := checkDepositGate(sale, sender); err != nil {
		return 0, err
	}
	if hasClaim(saleID, sender) {
		return 0, errors.Wrapf(ErrDuplicateContribution,
			"%s already contributed to sale %d, use top-up", sender, saleID)
	}
	if err := checkDepositAmount(sale, amount, 0); err != nil {
		return 0, err
	}
	entitled, err := entitledTokens(amount, sale.TokensForSale, sale.RaiseTarget)
	if err != nil {
		return 0, err
	}

	if err := sdkDraw(amount, sale.PaymentAsset); err != nil {
		return 0, errors.Wrapf(ErrInsufficientFunding, "draw payment: %v", err)
	}

	now := nowUnix()
	saveClaim(&Claim{
		ID:             uuid.NewString(),
		SaleID:         saleID,
		Address:        sender,
		Contributed:    amount,
		EntitledTokens: entitled,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	sale.ParticipantCount++
	sale.RaisedTotal += amount
	saveSale(sale)
	addReserve(paymentReserveKey(saleID), amount)
	emitDepositEvent(saleID, sender.String(), amount, entitled, sale.RaisedTotal)
	return entitled, nil
}

// DepositTopUp extends an existing claim. The per-call minimum still applies
// and the cumulative contribution may not pass the max spend limit.
func DepositTopUp(saleID uint64, amount Amount) (Amount, error) {
	sender := getSenderAddress()
	sale, err := loadSale(saleID)
	if err != nil {
		return 0, err
	}
	if err := checkDepositGate(sale, sender); err != nil {
		return 0, err
	}
	claim, ok, err := loadClaim(saleID, sender)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.Wrapf(ErrNoSuchContribution,
			"%s has no claim on sale %d, use deposit", sender, saleID)
	}
	if err := checkDepositAmount(sale, amount, claim.Contributed); err != nil {
		return 0, err
	}
	entitled, err := entitledTokens(amount, sale.TokensForSale, sale.RaiseTarget)
	if err != nil {
		return 0, err
	}

	if err := sdkDraw(amount, sale.PaymentAsset); err != nil {
		return 0, errors.Wrapf(ErrInsufficientFunding, "draw payment: %v", err)
	}

	claim.Contributed += amount
	claim.EntitledTokens += entitled
	claim.UpdatedAt = nowUnix()
	saveClaim(claim)
	sale.RaisedTotal += amount
	saveSale(sale)
	addReserve(paymentReserveKey(saleID), amount)
	emitDepositEvent(saleID, sender.String(), amount, entitled, sale.RaisedTotal)
	return entitled, nil
}

// checkDepositGate covers the preconditions shared by both deposit entry
// points that do not depend on the amount: phase and whitelist. The whitelist
// verdict comes before any amount validation on purpose.
func checkDepositGate(sale *Sale, sender sdk.Address) error {
	if sale.Phase != PhaseOngoing {
		return errors.Wrapf(ErrWrongPhase,
			"sale %d is %s, deposits need ongoing", sale.ID, sale.Phase)
	}
	if sale.WhitelistEnabled && !isWhitelistedEntry(sale.ID, sender) {
		return errors.Wrapf(ErrNotWhitelisted, "%s is not on the sale %d whitelist", sender, sale.ID)
	}
	return nil
}

// checkDepositAmount validates the incremental amount against the hard cap
// and the per-user bounds. alreadyContributed is zero for first deposits.
func checkDepositAmount(sale *Sale, amount Amount, alreadyContributed Amount) error {
	if amount <= 0 {
		return errors.Wrapf(ErrLimitViolation, "deposit amount %d must be positive", amount)
	}
	if sale.RaiseTarget-sale.RaisedTotal < amount {
		return errors.Wrapf(ErrHardCapExceeded,
			"deposit %d exceeds remaining capacity %d", amount, sale.RaiseTarget-sale.RaisedTotal)
	}
	if amount < sale.MinSpend {
		return errors.Wrapf(ErrLimitViolation,
			"deposit %d below min spend %d", amount, sale.MinSpend)
	}
	if alreadyContributed+amount > sale.MaxSpend {
		return errors.Wrapf(ErrLimitViolation,
			"cumulative %d exceeds max spend %d", alreadyContributed+amount, sale.MaxSpend)
	}
	return nil
}
