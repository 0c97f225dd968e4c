package store

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "presale.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStateRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	got, err := s.GetState("missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.SetState("k", "v1"))
	require.NoError(t, s.SetState("k", "v2")) // overwrite

	got, err = s.GetState("k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "v2", *got)

	require.NoError(t, s.DeleteState("k"))
	got, err = s.GetState("k")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting again is fine
	require.NoError(t, s.DeleteState("k"))
}

func TestBalances(t *testing.T) {
	s := newTestStorage(t)

	bal, err := s.Balance("hive:alice", "HIVE")
	require.NoError(t, err)
	assert.Equal(t, int64(0), bal)

	require.NoError(t, s.Credit("hive:alice", "HIVE", 500))
	require.NoError(t, s.Credit("hive:alice", "HIVE", 250))

	bal, err = s.Balance("hive:alice", "HIVE")
	require.NoError(t, err)
	assert.Equal(t, int64(750), bal)
}

func TestMove(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Credit("hive:alice", "HIVE", 100))

	require.NoError(t, s.Move("hive:alice", "contract:presale", "HIVE", 60))

	from, err := s.Balance("hive:alice", "HIVE")
	require.NoError(t, err)
	assert.Equal(t, int64(40), from)

	to, err := s.Balance("contract:presale", "HIVE")
	require.NoError(t, err)
	assert.Equal(t, int64(60), to)
}

func TestMoveInsufficient(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Credit("hive:alice", "HIVE", 10))

	err := s.Move("hive:alice", "contract:presale", "HIVE", 11)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientBalance))

	// nothing moved
	bal, err := s.Balance("hive:alice", "HIVE")
	require.NoError(t, err)
	assert.Equal(t, int64(10), bal)
}
