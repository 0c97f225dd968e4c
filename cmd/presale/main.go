package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"presale_contract/contract"
	"presale_contract/sdk"
	"presale_contract/store"
)

// Local driver: runs a full sale lifecycle against a sqlite-backed host so
// the contract can be exercised without a chain node. Every step goes through
// the same Dispatch boundary the wasm host would use.
func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found")
	}

	dbPath := os.Getenv("PRESALE_DB")
	if dbPath == "" {
		dbPath = "presale.db"
	}

	s, err := store.New(dbPath)
	if err != nil {
		log.Error("init storage", "error", err)
		os.Exit(1)
	}
	defer s.Close()
	log.Info("storage initialized", "path", dbPath)

	admin := sdk.Address("hive:presale-admin")
	alice := sdk.Address("hive:alice")
	bob := sdk.Address("hive:bob")

	host := newSqliteHost(s, log, sdk.Address("contract:presale"))
	sdk.UseHost(host)

	// seed custody balances for the demo actors
	seed := func(account sdk.Address, asset string, amount int64) {
		if err := s.Credit(account.String(), asset, amount); err != nil {
			log.Error("seed balance", "account", account, "error", err)
			os.Exit(1)
		}
	}
	seed(admin, "token", 100_000_000)
	seed(alice, string(sdk.AssetHive), 3_000_000)
	seed(bob, string(sdk.AssetHive), 3_000_000)

	call := func(as sdk.Address, action, payload string) string {
		host.as(as)
		out, err := contract.Dispatch(action, payload)
		if err != nil {
			log.Error("dispatch failed", "action", action, "sender", as, "error", err)
			os.Exit(1)
		}
		log.Info("dispatch", "action", action, "sender", as, "result", out)
		return out
	}

	call(admin, "contract_init", "{}")
	call(admin, "sale_create", fmt.Sprintf(
		`{"min_spend":1000000,"max_spend":3000000,"raise_target":10000000,"tokens_for_sale":100000000,"softcap":5000000,"sale_start_ts":0,"sale_end_ts":0,"distribution_ts":1,"whitelist_enabled":false,"sale_asset":"token","payment_asset":%q}`,
		string(sdk.AssetHive)))
	call(admin, "sale_set_phase", `{"sale_id":1,"phase":1}`)

	call(alice, "sale_deposit", `{"sale_id":1,"amount":1000000}`)
	call(bob, "sale_deposit", `{"sale_id":1,"amount":2000000}`)
	call(bob, "sale_topup", `{"sale_id":1,"amount":1000000}`)

	call(admin, "sale_set_phase", `{"sale_id":1,"phase":2}`)
	call(alice, "sale_redeem", `{"sale_id":1}`)
	call(bob, "sale_redeem", `{"sale_id":1}`)
	call(admin, "sale_sweep", `{"sale_id":1}`)

	call(admin, "sale_get", `{"sale_id":1}`)
	log.Info("final balances",
		"alice_tokens", host.Balance(alice, "token"),
		"bob_tokens", host.Balance(bob, "token"),
		"admin_tokens", host.Balance(admin, "token"),
		"admin_hive", host.Balance(admin, sdk.AssetHive))
}
