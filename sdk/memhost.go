package sdk

import (
	"github.com/pkg/errors"
)

// MemoryHost is an in-process Host used by tests and local debugging. It keeps
// contract state, custody balances and the call environment in plain maps so
// a test can seed balances, flip the sender and inspect emitted log lines.
type MemoryHost struct {
	contract Address
	kv       map[string]string
	balances map[Address]map[Asset]int64
	env      Env
	logs     []string
}

// NewMemoryHost creates a host whose custody account is the given contract address.
// Example payload: sdk.NewMemoryHost("contract:presale")
func NewMemoryHost(contract Address) *MemoryHost {
	return &MemoryHost{
		contract: contract,
		kv:       map[string]string{},
		balances: map[Address]map[Asset]int64{},
		env: Env{
			ContractId: contract.String(),
			TxId:       "tx-0",
			Timestamp:  "2025-09-03T00:00:00",
		},
	}
}

// SetSender switches the principal the next calls execute as.
func (h *MemoryHost) SetSender(addr Address) {
	h.env.Sender = Sender{Address: addr, RequiredAuths: []Address{addr}}
}

// SetTimestamp overrides the block timestamp for expiry-style tests.
func (h *MemoryHost) SetTimestamp(ts string) {
	h.env.Timestamp = ts
}

// SetTxId changes the transaction id so per-tx caches roll over.
func (h *MemoryHost) SetTxId(id string) {
	h.env.TxId = id
}

// Credit seeds an account balance, the test stand-in for on-chain deposits.
func (h *MemoryHost) Credit(account Address, asset Asset, amount int64) {
	if h.balances[account] == nil {
		h.balances[account] = map[Asset]int64{}
	}
	h.balances[account][asset] += amount
}

// Logs returns every line the contract emitted so far.
func (h *MemoryHost) Logs() []string {
	return h.logs
}

func (h *MemoryHost) Log(msg string) {
	h.logs = append(h.logs, msg)
}

func (h *MemoryHost) StateSet(key, value string) {
	h.kv[key] = value
}

func (h *MemoryHost) StateGet(key string) *string {
	v, ok := h.kv[key]
	if !ok {
		return nil
	}
	return &v
}

func (h *MemoryHost) StateDelete(key string) {
	delete(h.kv, key)
}

func (h *MemoryHost) GetEnv() Env {
	return h.env
}

func (h *MemoryHost) Draw(amount int64, asset Asset) error {
	if amount < 0 {
		return errors.Errorf("draw of negative amount %d", amount)
	}
	from := h.env.Sender.Address
	if h.balances[from][asset] < amount {
		return errors.Errorf("account %s holds %d %s, cannot draw %d",
			from, h.balances[from][asset], asset, amount)
	}
	h.balances[from][asset] -= amount
	h.Credit(h.contract, asset, amount)
	return nil
}

func (h *MemoryHost) Transfer(to Address, amount int64, asset Asset) error {
	if amount < 0 {
		return errors.Errorf("transfer of negative amount %d", amount)
	}
	if h.balances[h.contract][asset] < amount {
		return errors.Errorf("contract holds %d %s, cannot transfer %d",
			h.balances[h.contract][asset], asset, amount)
	}
	h.balances[h.contract][asset] -= amount
	h.Credit(to, asset, amount)
	return nil
}

func (h *MemoryHost) Balance(account Address, asset Asset) int64 {
	return h.balances[account][asset]
}
