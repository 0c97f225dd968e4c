package contract

import (
	"strconv"

	"github.com/pkg/errors"

	"presale_contract/sdk"
)

// Reserve balances live as plain decimal strings in their own kv rows so a
// sweep can zero them without rewriting the sale record.

// getReserve retrieves the balance stored under a reserve key.
func getReserve(key string) Amount {
	ptr := sdk.StateGetObject(key)
	if ptr == nil {
		return 0
	}
	balance, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		return 0
	}
	return Amount(balance)
}

// setReserve overwrites the balance under a reserve key.
func setReserve(key string, amount Amount) {
	sdk.StateSetObject(key, strconv.FormatInt(int64(amount), 10))
}

// addReserve credits a reserve.
func addReserve(key string, amount Amount) {
	setReserve(key, getReserve(key)+amount)
}

// removeReserve debits a reserve. Asking for more than it holds means an
// accounting invariant broke somewhere upstream, so it surfaces as a defect.
func removeReserve(key string, amount Amount) error {
	current := getReserve(key)
	if current < amount {
		return errors.Wrapf(ErrReserveUnderflow, "reserve holds %d, requested %d", current, amount)
	}
	setReserve(key, current-amount)
	return nil
}
