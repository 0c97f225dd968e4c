package contract

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presale_contract/sdk"
)

func TestRedeemClaim(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	id := openTestSale(t, h, cap)
	depositAs(t, h, testAlice, id, 1_000_000)

	actAs(h, testAdmin)
	require.NoError(t, SetPhase(cap, id, uint8(PhaseClosed)))

	actAs(h, testAlice)
	paid, err := RedeemClaim(id)
	require.NoError(t, err)
	assert.Equal(t, Amount(10_000_000), paid)
	assert.Equal(t, int64(10_000_000), h.Balance(testAlice, testSaleAsset))

	// claim is consumed
	_, err = GetClaimView(id, testAlice)
	assert.True(t, errors.Is(err, ErrNoSuchContribution))

	// the reserve shrank by exactly the payout
	saleReserve, _, err := ReserveBalances(id)
	require.NoError(t, err)
	assert.Equal(t, refTokensForSale-10_000_000, saleReserve)

	// participant count intentionally keeps counting redeemed contributors
	view, err := GetSaleView(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), view.ParticipantCount)
}

func TestRedeemTwice(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	id := openTestSale(t, h, cap)
	depositAs(t, h, testAlice, id, 1_000_000)

	actAs(h, testAdmin)
	require.NoError(t, SetPhase(cap, id, uint8(PhaseClosed)))

	actAs(h, testAlice)
	_, err := RedeemClaim(id)
	require.NoError(t, err)
	_, err = RedeemClaim(id)
	assert.True(t, errors.Is(err, ErrNoSuchContribution))
}

func TestRedeemRequiresClosed(t *testing.T) {
	for _, phase := range []SalePhase{PhaseUpcoming, PhaseOngoing, PhaseAborted} {
		t.Run(phase.String(), func(t *testing.T) {
			h := newTestHost(t)
			cap := initAdmin(t, h)
			id := openTestSale(t, h, cap)
			depositAs(t, h, testAlice, id, 1_000_000)

			actAs(h, testAdmin)
			require.NoError(t, SetPhase(cap, id, uint8(phase)))

			actAs(h, testAlice)
			_, err := RedeemClaim(id)
			assert.True(t, errors.Is(err, ErrWrongPhase))
		})
	}
}

func TestRedeemWithoutClaim(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	id := openTestSale(t, h, cap)

	actAs(h, testAdmin)
	require.NoError(t, SetPhase(cap, id, uint8(PhaseClosed)))

	actAs(h, testBob)
	_, err := RedeemClaim(id)
	assert.True(t, errors.Is(err, ErrNoSuchContribution))
}

// The sum of all entitlements can never pass the escrowed supply, so every
// contributor redeems successfully even when the sale filled completely.
func TestEntitlementsNeverExceedSupply(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	args := defaultSaleArgs()
	args.MinSpend = 1
	args.MaxSpend = args.RaiseTarget
	args.TokensForSale = 99_999_999 // non-integer price, every allocation truncates
	supply := args.TokensForSale
	id := createTestSale(t, h, cap, args)
	actAs(h, testAdmin)
	require.NoError(t, SetPhase(cap, id, uint8(PhaseOngoing)))

	contributors := map[sdk.Address]Amount{
		testAlice: 3_333_333,
		testBob:   3_333_333,
		testCarol: 3_333_334,
	}
	var total Amount
	for addr, amount := range contributors {
		total += depositAs(t, h, addr, id, amount)
	}
	assert.Less(t, total, supply)

	actAs(h, testAdmin)
	require.NoError(t, SetPhase(cap, id, uint8(PhaseClosed)))

	for addr := range contributors {
		actAs(h, addr)
		_, err := RedeemClaim(id)
		require.NoError(t, err)
	}

	// whatever truncation left behind is still in the reserve
	saleReserve, _, err := ReserveBalances(id)
	require.NoError(t, err)
	assert.Equal(t, supply-total, saleReserve)
}

func TestAdminSweepClosed(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	id := openTestSale(t, h, cap)
	depositAs(t, h, testAlice, id, 1_000_000)

	actAs(h, testAdmin)
	require.NoError(t, SetPhase(cap, id, uint8(PhaseClosed)))

	actAs(h, testAlice)
	_, err := RedeemClaim(id)
	require.NoError(t, err)

	actAs(h, testAdmin)
	saleTokens, payment, err := AdminSweep(cap, id)
	require.NoError(t, err)
	assert.Equal(t, refTokensForSale-10_000_000, saleTokens)
	assert.Equal(t, Amount(1_000_000), payment)

	assert.Equal(t, AmountToInt64(saleTokens), h.Balance(testAdmin, testSaleAsset))
	assert.Equal(t, int64(1_000_000), h.Balance(testAdmin, sdk.AssetHive))

	// idempotent: a second sweep moves nothing and succeeds
	saleTokens, payment, err = AdminSweep(cap, id)
	require.NoError(t, err)
	assert.Equal(t, Amount(0), saleTokens)
	assert.Equal(t, Amount(0), payment)
}

func TestAdminSweepAborted(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	id := openTestSale(t, h, cap)
	depositAs(t, h, testAlice, id, 1_000_000)

	actAs(h, testAdmin)
	require.NoError(t, SetPhase(cap, id, uint8(PhaseAborted)))

	saleTokens, payment, err := AdminSweep(cap, id)
	require.NoError(t, err)
	assert.Equal(t, refTokensForSale, saleTokens)
	assert.Equal(t, Amount(1_000_000), payment)
}

func TestAdminSweepWrongPhase(t *testing.T) {
	for _, phase := range []SalePhase{PhaseUpcoming, PhaseOngoing} {
		t.Run(phase.String(), func(t *testing.T) {
			h := newTestHost(t)
			cap := initAdmin(t, h)
			id := createTestSale(t, h, cap, defaultSaleArgs())
			actAs(h, testAdmin)
			require.NoError(t, SetPhase(cap, id, uint8(phase)))

			_, _, err := AdminSweep(cap, id)
			assert.True(t, errors.Is(err, ErrWrongPhase))
		})
	}
}

func TestAdminSweepNilCap(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	id := createTestSale(t, h, cap, defaultSaleArgs())

	_, _, err := AdminSweep(nil, id)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}
