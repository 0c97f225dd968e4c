package contract

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presale_contract/sdk"
)

func TestDispatchFullLifecycle(t *testing.T) {
	h := newTestHost(t)
	h.Credit(testAdmin, testSaleAsset, AmountToInt64(refTokensForSale))
	h.Credit(testAlice, sdk.AssetHive, 1_000_000)

	actAs(h, testAdmin)
	out, err := Dispatch("contract_init", "{}")
	require.NoError(t, err)
	assert.Equal(t, `{"admin":"hive:presale-admin"}`, out)

	out, err = Dispatch("sale_create",
		`{"min_spend":1000000,"max_spend":3000000,"raise_target":10000000,`+
			`"tokens_for_sale":100000000,"softcap":5000000,`+
			`"sale_start_ts":100,"sale_end_ts":200,"distribution_ts":300,`+
			`"whitelist_enabled":false,"sale_asset":"token","payment_asset":"hive"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"sale_id":1}`, out)

	actAs(h, testAdmin)
	_, err = Dispatch("sale_set_phase", `{"sale_id":1,"phase":1}`)
	require.NoError(t, err)

	actAs(h, testAlice)
	out, err = Dispatch("sale_deposit", `{"sale_id":1,"amount":1000000}`)
	require.NoError(t, err)
	assert.Equal(t, `{"entitled_tokens":10000000}`, out)

	actAs(h, testAdmin)
	_, err = Dispatch("sale_set_phase", `{"sale_id":1,"phase":2}`)
	require.NoError(t, err)

	actAs(h, testAlice)
	out, err = Dispatch("sale_redeem", `{"sale_id":1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"redeemed_tokens":10000000}`, out)
	assert.Equal(t, int64(10_000_000), h.Balance(testAlice, testSaleAsset))

	actAs(h, testAdmin)
	out, err = Dispatch("sale_sweep", `{"sale_id":1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"sale_tokens":90000000,"payment":1000000}`, out)
}

func TestDispatchSaleGetRoundTrips(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	id := openTestSale(t, h, cap)
	depositAs(t, h, testAlice, id, 1_000_000)

	actAs(h, testAlice)
	out, err := Dispatch("sale_get", `{"sale_id":1}`)
	require.NoError(t, err)

	var view SaleView
	require.NoError(t, view.UnmarshalJSON([]byte(out)))
	assert.Equal(t, uint64(1), view.ID)
	assert.Equal(t, "ongoing", view.Phase)
	assert.Equal(t, Amount(1_000_000), view.RaisedTotal)
	assert.Equal(t, refTokensForSale, view.SaleReserve)
	assert.Equal(t, Amount(1_000_000), view.PaymentReserve)
}

func TestDispatchClaimGetDefaultsToSender(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	id := openTestSale(t, h, cap)
	depositAs(t, h, testAlice, id, 1_000_000)

	// no address in the payload means "my own claim"
	actAs(h, testAlice)
	out, err := Dispatch("claim_get", `{"sale_id":1}`)
	require.NoError(t, err)

	var view ClaimView
	require.NoError(t, view.UnmarshalJSON([]byte(out)))
	assert.Equal(t, testAlice.String(), view.Address)
	assert.Equal(t, Amount(10_000_000), view.EntitledTokens)

	// anyone may look up a third-party claim explicitly
	actAs(h, testBob)
	out, err = Dispatch("claim_get", `{"sale_id":1,"address":"hive:alice"}`)
	require.NoError(t, err)
	require.NoError(t, view.UnmarshalJSON([]byte(out)))
	assert.Equal(t, testAlice.String(), view.Address)
}

func TestDispatchAdminActionsNeedHolder(t *testing.T) {
	h := newTestHost(t)
	cap := initAdmin(t, h)
	createTestSale(t, h, cap, defaultSaleArgs())

	actAs(h, testAlice)
	for _, action := range []string{
		"sale_create", "sale_sweep", "sale_set_phase",
		"sale_set_whitelist", "sale_set_max_spend", "sale_whitelist_add",
		"admin_transfer",
	} {
		_, err := Dispatch(action, `{"sale_id":1}`)
		assert.True(t, errors.Is(err, ErrUnauthorized), "action %s", action)
	}
}

func TestDispatchBadPayload(t *testing.T) {
	h := newTestHost(t)
	initAdmin(t, h)

	actAs(h, testAlice)
	_, err := Dispatch("sale_deposit", `{"sale_id":`)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestDispatchUnknownAction(t *testing.T) {
	h := newTestHost(t)
	initAdmin(t, h)

	actAs(h, testAlice)
	_, err := Dispatch("sale_destroy", `{}`)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestDispatchWhitelistFlow(t *testing.T) {
	h := newTestHost(t)
	h.Credit(testAdmin, testSaleAsset, AmountToInt64(refTokensForSale))

	actAs(h, testAdmin)
	_, err := Dispatch("contract_init", "{}")
	require.NoError(t, err)
	_, err = Dispatch("sale_create",
		`{"min_spend":1000000,"max_spend":3000000,"raise_target":10000000,`+
			`"tokens_for_sale":100000000,"softcap":5000000,`+
			`"sale_start_ts":100,"sale_end_ts":200,"distribution_ts":300,`+
			`"whitelist_enabled":true,"sale_asset":"token","payment_asset":"hive"}`)
	require.NoError(t, err)

	actAs(h, testAdmin)
	out, err := Dispatch("sale_whitelist_add", `{"sale_id":1,"addresses":["hive:alice","hive:bob"]}`)
	require.NoError(t, err)
	assert.Equal(t, `{"added":2}`, out)

	actAs(h, testCarol)
	out, err = Dispatch("whitelist_check", `{"sale_id":1,"address":"hive:alice"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"whitelisted":true}`, out)

	out, err = Dispatch("whitelist_check", `{"sale_id":1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"whitelisted":false}`, out)
}
