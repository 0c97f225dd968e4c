package contract

import (
	"math"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// entitledTokens computes floor(amount * tokensForSale / raiseTarget), the
// contributor's sale-token allocation for one (incremental) payment. The
// implicit token price is tokensForSale/raiseTarget; truncation remainders
// accumulate in the reserve and are collected by the admin sweep.
//
// The product can exceed 64 bits long before the division brings it back
// down, so the intermediate runs through uint256 and a result that no longer
// fits an Amount is an explicit error instead of silent wraparound.
func entitledTokens(amount, tokensForSale, raiseTarget Amount) (Amount, error) {
	if raiseTarget <= 0 {
		return 0, errors.Wrapf(ErrInvalidConfiguration, "raise target %d", raiseTarget)
	}
	if amount < 0 || tokensForSale < 0 {
		return 0, errors.Wrapf(ErrInvalidConfiguration, "negative allocation input")
	}
	num := new(uint256.Int).Mul(
		uint256.NewInt(uint64(amount)),
		uint256.NewInt(uint64(tokensForSale)),
	)
	quo := new(uint256.Int).Div(num, uint256.NewInt(uint64(raiseTarget)))
	if !quo.IsUint64() || quo.Uint64() > math.MaxInt64 {
		return 0, errors.Wrapf(ErrNumericOverflow,
			"%d * %d / %d does not fit an amount", amount, tokensForSale, raiseTarget)
	}
	return Amount(quo.Uint64()), nil
}
