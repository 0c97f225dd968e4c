package contract

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presale_contract/sdk"
)

func TestContractInitTwice(t *testing.T) {
	h := newTestHost(t)
	initAdmin(t, h)

	actAs(h, testAlice)
	_, err := ContractInit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyInitialized))
}

func TestResolveAdminCap(t *testing.T) {
	h := newTestHost(t)

	actAs(h, testAdmin)
	_, err := ResolveAdminCap()
	assert.True(t, errors.Is(err, ErrNotInitialized))

	initAdmin(t, h)

	actAs(h, testAdmin)
	cap, err := ResolveAdminCap()
	require.NoError(t, err)
	assert.Equal(t, testAdmin, cap.Holder())

	actAs(h, testAlice)
	_, err = ResolveAdminCap()
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestTransferAdminCap(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)

	require.NoError(t, TransferAdminCap(cap, testAlice))

	// old holder lost the capability
	actAs(h, testAdmin)
	_, err := ResolveAdminCap()
	assert.True(t, errors.Is(err, ErrUnauthorized))

	// new holder resolves their own
	actAs(h, testAlice)
	got, err := ResolveAdminCap()
	require.NoError(t, err)
	assert.Equal(t, testAlice, got.Holder())
}

func TestCreateSaleEscrowsSupply(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)

	id := createTestSale(t, h, cap, defaultSaleArgs())
	assert.Equal(t, uint64(1), id)

	// the whole declared supply moved into contract custody
	assert.Equal(t, int64(0), h.Balance(testAdmin, testSaleAsset))
	assert.Equal(t, AmountToInt64(refTokensForSale), h.Balance(testContract, testSaleAsset))

	saleReserve, paymentReserve, err := ReserveBalances(id)
	require.NoError(t, err)
	assert.Equal(t, refTokensForSale, saleReserve)
	assert.Equal(t, Amount(0), paymentReserve)

	view, err := GetSaleView(id)
	require.NoError(t, err)
	assert.Equal(t, "upcoming", view.Phase)
	assert.Equal(t, Amount(0), view.RaisedTotal)
	assert.Equal(t, uint64(0), view.ParticipantCount)
}

func TestCreateSaleIDsAreSequential(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)

	first := createTestSale(t, h, cap, defaultSaleArgs())
	second := createTestSale(t, h, cap, defaultSaleArgs())
	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(2), second)
}

func TestCreateSaleUnderfundedAdmin(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)

	// one unit short of the declared supply
	h.Credit(testAdmin, testSaleAsset, AmountToInt64(refTokensForSale)-1)
	actAs(h, testAdmin)
	_, err := CreateSale(cap, defaultSaleArgs())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientFunding))

	// nothing was written
	_, err = GetSaleView(1)
	assert.True(t, errors.Is(err, ErrNoSuchSale))
}

func TestCreateSaleValidation(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	h.Credit(testAdmin, testSaleAsset, AmountToInt64(refTokensForSale))
	actAs(h, testAdmin)

	cases := map[string]func(*CreateSaleArgs){
		"zero min spend":          func(a *CreateSaleArgs) { a.MinSpend = 0 },
		"negative target":         func(a *CreateSaleArgs) { a.RaiseTarget = -1 },
		"zero supply":             func(a *CreateSaleArgs) { a.TokensForSale = 0 },
		"min at max":              func(a *CreateSaleArgs) { a.MinSpend = a.MaxSpend },
		"softcap at target":       func(a *CreateSaleArgs) { a.Softcap = a.RaiseTarget },
		"distribution before end": func(a *CreateSaleArgs) { a.DistributionTs = a.SaleEndTs },
		"missing sale asset":      func(a *CreateSaleArgs) { a.SaleAsset = "" },
		"missing payment asset":   func(a *CreateSaleArgs) { a.PaymentAsset = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			args := defaultSaleArgs()
			mutate(args)
			_, err := CreateSale(cap, args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		})
	}

	// validation failures never touched the escrow
	assert.Equal(t, AmountToInt64(refTokensForSale), h.Balance(testAdmin, testSaleAsset))
}

func TestCreateSaleNilCap(t *testing.T) {
	h := newTestHost(t)
	initAdmin(t, h)
	actAs(h, testAlice)

	_, err := CreateSale(nil, defaultSaleArgs())
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestSaleViewUnknownID(t *testing.T) {
	h := newTestHost(t)
	initAdmin(t, h)

	_, err := GetSaleView(42)
	assert.True(t, errors.Is(err, ErrNoSuchSale))

	_, _, err = ReserveBalances(42)
	assert.True(t, errors.Is(err, ErrNoSuchSale))

	_, err = GetClaimView(42, testAlice)
	assert.True(t, errors.Is(err, ErrNoSuchSale))

	_, err = IsWhitelisted(42, sdk.Address("hive:nobody"))
	assert.True(t, errors.Is(err, ErrNoSuchSale))
}
