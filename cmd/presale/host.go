package main

import (
	"fmt"
	"log/slog"
	"time"

	"presale_contract/sdk"
	"presale_contract/store"
)

// sqliteHost adapts the sqlite store to the contract host surface for local
// runs. Storage failures panic: a broken database leaves no sane way to
// continue a call half-applied.
type sqliteHost struct {
	store    *store.Storage
	log      *slog.Logger
	contract sdk.Address
	env      sdk.Env
	txSeq    uint64
}

func newSqliteHost(s *store.Storage, log *slog.Logger, contract sdk.Address) *sqliteHost {
	return &sqliteHost{
		store:    s,
		log:      log,
		contract: contract,
		env: sdk.Env{
			ContractId: contract.String(),
			Timestamp:  time.Now().UTC().Format("2006-01-02T15:04:05"),
		},
	}
}

// as switches the acting principal and rolls the tx id forward.
func (h *sqliteHost) as(addr sdk.Address) {
	h.txSeq++
	h.env.Sender = sdk.Sender{Address: addr, RequiredAuths: []sdk.Address{addr}}
	h.env.TxId = fmt.Sprintf("local-%d", h.txSeq)
}

func (h *sqliteHost) Log(msg string) {
	h.log.Info("contract", "msg", msg)
}

func (h *sqliteHost) StateSet(key, value string) {
	if err := h.store.SetState(key, value); err != nil {
		panic(fmt.Sprintf("state set %q: %v", key, err))
	}
}

func (h *sqliteHost) StateGet(key string) *string {
	v, err := h.store.GetState(key)
	if err != nil {
		panic(fmt.Sprintf("state get %q: %v", key, err))
	}
	return v
}

func (h *sqliteHost) StateDelete(key string) {
	if err := h.store.DeleteState(key); err != nil {
		panic(fmt.Sprintf("state delete %q: %v", key, err))
	}
}

func (h *sqliteHost) GetEnv() sdk.Env {
	return h.env
}

func (h *sqliteHost) Draw(amount int64, asset sdk.Asset) error {
	return h.store.Move(h.env.Sender.Address.String(), h.contract.String(), string(asset), amount)
}

func (h *sqliteHost) Transfer(to sdk.Address, amount int64, asset sdk.Asset) error {
	return h.store.Move(h.contract.String(), to.String(), string(asset), amount)
}

func (h *sqliteHost) Balance(account sdk.Address, asset sdk.Asset) int64 {
	bal, err := h.store.Balance(account.String(), string(asset))
	if err != nil {
		panic(fmt.Sprintf("balance %s/%s: %v", account, asset, err))
	}
	return bal
}
