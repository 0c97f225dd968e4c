package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"presale_contract/sdk"
)

const (
	testContract = sdk.Address("contract:presale")
	testAdmin    = sdk.Address("hive:presale-admin")
	testAlice    = sdk.Address("hive:alice")
	testBob      = sdk.Address("hive:bob")
	testCarol    = sdk.Address("hive:carol")

	testSaleAsset = sdk.Asset("token")
)

// reference sale used by most scenarios: price is 10 tokens per payment unit
const (
	refMinSpend      = Amount(1_000_000)
	refMaxSpend      = Amount(3_000_000)
	refRaiseTarget   = Amount(10_000_000)
	refTokensForSale = Amount(100_000_000)
	refSoftcap       = Amount(5_000_000)
)

var txCounter uint64

// newTestHost installs a fresh in-memory host so every test starts from an
// empty contract state and custody ledger.
func newTestHost(t *testing.T) *sdk.MemoryHost {
	t.Helper()
	h := sdk.NewMemoryHost(testContract)
	sdk.UseHost(h)
	return h
}

// actAs switches the calling principal. The tx id must roll over too, else
// the per-tx env cache would keep serving the previous sender.
func actAs(h *sdk.MemoryHost, addr sdk.Address) {
	txCounter++
	h.SetTxId(fmt.Sprintf("tx-%d", txCounter))
	h.SetSender(addr)
}

func initAdmin(t *testing.T, h *sdk.MemoryHost) *AdminCap {
	t.Helper()
	actAs(h, testAdmin)
	cap, err := ContractInit()
	require.NoError(t, err)
	return cap
}

func defaultSaleArgs() *CreateSaleArgs {
	return &CreateSaleArgs{
		MinSpend:         refMinSpend,
		MaxSpend:         refMaxSpend,
		RaiseTarget:      refRaiseTarget,
		TokensForSale:    refTokensForSale,
		Softcap:          refSoftcap,
		SaleStartTs:      100,
		SaleEndTs:        200,
		DistributionTs:   300,
		WhitelistEnabled: false,
		SaleAsset:        string(testSaleAsset),
		PaymentAsset:     string(sdk.AssetHive),
	}
}

// createTestSale funds the admin with the full supply and opens the sale.
func createTestSale(t *testing.T, h *sdk.MemoryHost, cap *AdminCap, args *CreateSaleArgs) uint64 {
	t.Helper()
	h.Credit(testAdmin, sdk.Asset(args.SaleAsset), AmountToInt64(args.TokensForSale))
	actAs(h, testAdmin)
	id, err := CreateSale(cap, args)
	require.NoError(t, err)
	return id
}

// openTestSale creates the reference sale and flips it to ongoing.
func openTestSale(t *testing.T, h *sdk.MemoryHost, cap *AdminCap) uint64 {
	t.Helper()
	id := createTestSale(t, h, cap, defaultSaleArgs())
	actAs(h, testAdmin)
	require.NoError(t, SetPhase(cap, id, uint8(PhaseOngoing)))
	return id
}

// depositAs seeds the contributor with exactly amount of the payment asset
// and performs a first deposit.
func depositAs(t *testing.T, h *sdk.MemoryHost, addr sdk.Address, saleID uint64, amount Amount) Amount {
	t.Helper()
	h.Credit(addr, sdk.AssetHive, AmountToInt64(amount))
	actAs(h, addr)
	entitled, err := Deposit(saleID, amount)
	require.NoError(t, err)
	return entitled
}
