package contract

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitledTokens(t *testing.T) {
	cases := []struct {
		name          string
		amount        Amount
		tokensForSale Amount
		raiseTarget   Amount
		want          Amount
	}{
		{"reference scenario", 1_000_000, 100_000_000, 10_000_000, 10_000_000},
		{"floors the quotient", 2, 10, 3, 6},
		{"sub-unit contribution floors to zero", 1, 1, 10, 0},
		{"full target takes full supply", 10_000_000, 100_000_000, 10_000_000, 100_000_000},
		{"zero amount", 0, 100, 10, 0},
		{"huge product needs wide intermediate", math.MaxInt64 / 2, 2, math.MaxInt64, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entitledTokens(tc.amount, tc.tokensForSale, tc.raiseTarget)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEntitledTokensWideIntermediate(t *testing.T) {
	// amount * tokensForSale overflows int64 by far, the division brings it back
	got, err := entitledTokens(math.MaxInt64, math.MaxInt64, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, Amount(math.MaxInt64), got)
}

func TestEntitledTokensOverflowResult(t *testing.T) {
	_, err := entitledTokens(math.MaxInt64, math.MaxInt64, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNumericOverflow))
}

func TestEntitledTokensBadInputs(t *testing.T) {
	_, err := entitledTokens(1, 1, 0)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	_, err = entitledTokens(-1, 1, 1)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	_, err = entitledTokens(1, -1, 1)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
