package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHostStateLifecycle(t *testing.T) {
	h := NewMemoryHost("contract:presale")

	assert.Nil(t, h.StateGet("k"))

	h.StateSet("k", "v")
	got := h.StateGet("k")
	require.NotNil(t, got)
	assert.Equal(t, "v", *got)

	h.StateDelete("k")
	assert.Nil(t, h.StateGet("k"))
}

func TestMemoryHostDraw(t *testing.T) {
	h := NewMemoryHost("contract:presale")
	h.SetSender("hive:alice")
	h.Credit("hive:alice", AssetHive, 100)

	require.NoError(t, h.Draw(60, AssetHive))
	assert.Equal(t, int64(40), h.Balance("hive:alice", AssetHive))
	assert.Equal(t, int64(60), h.Balance("contract:presale", AssetHive))

	// drawing past the balance fails without moving anything
	err := h.Draw(41, AssetHive)
	require.Error(t, err)
	assert.Equal(t, int64(40), h.Balance("hive:alice", AssetHive))

	require.Error(t, h.Draw(-1, AssetHive))
}

func TestMemoryHostTransfer(t *testing.T) {
	h := NewMemoryHost("contract:presale")
	h.Credit("contract:presale", AssetHbd, 50)

	require.NoError(t, h.Transfer("hive:bob", 30, AssetHbd))
	assert.Equal(t, int64(30), h.Balance("hive:bob", AssetHbd))
	assert.Equal(t, int64(20), h.Balance("contract:presale", AssetHbd))

	require.Error(t, h.Transfer("hive:bob", 21, AssetHbd))
	require.Error(t, h.Transfer("hive:bob", -1, AssetHbd))
}

func TestMemoryHostEnv(t *testing.T) {
	h := NewMemoryHost("contract:presale")
	h.SetSender("hive:alice")
	h.SetTxId("tx-42")
	h.SetTimestamp("2025-09-04T12:00:00")

	env := h.GetEnv()
	assert.Equal(t, Address("hive:alice"), env.Sender.Address)
	assert.Equal(t, "tx-42", env.TxId)
	assert.Equal(t, "2025-09-04T12:00:00", env.Timestamp)
	assert.Equal(t, "contract:presale", env.ContractId)
}

func TestMemoryHostLogs(t *testing.T) {
	h := NewMemoryHost("contract:presale")
	h.Log("first")
	h.Log("second")
	assert.Equal(t, []string{"first", "second"}, h.Logs())
}
