package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

var ErrInsufficientBalance = errors.New("store: insufficient balance")

// Storage persists contract state and account balances in sqlite so a local
// run survives restarts. Keys and values are opaque strings; the contract
// layer owns their encoding.
type Storage struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and ensures the schema.
func New(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	s := &Storage{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS contract_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS balances (
			account TEXT NOT NULL,
			asset TEXT NOT NULL,
			amount INTEGER NOT NULL,
			PRIMARY KEY (account, asset)
		)`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}

	return nil
}

// --- Contract state ---

// SetState writes or overwrites one state entry.
func (s *Storage) SetState(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO contract_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// GetState returns the value for key, or nil when the key is absent.
func (s *Storage) GetState(key string) (*string, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM contract_state WHERE key = ?",
		key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// DeleteState removes a state entry; deleting a missing key is a no-op.
func (s *Storage) DeleteState(key string) error {
	_, err := s.db.Exec("DELETE FROM contract_state WHERE key = ?", key)
	return err
}

// --- Balances ---

// Credit adds amount to an account's asset balance, creating the row if
// needed. Negative amounts debit without an underflow check; use Move for
// checked transfers.
func (s *Storage) Credit(account, asset string, amount int64) error {
	_, err := s.db.Exec(
		`INSERT INTO balances (account, asset, amount) VALUES (?, ?, ?)
		 ON CONFLICT(account, asset) DO UPDATE SET amount = amount + excluded.amount`,
		account, asset, amount,
	)
	return err
}

// Balance returns the current balance, zero for unknown accounts.
func (s *Storage) Balance(account, asset string) (int64, error) {
	var amount int64
	err := s.db.QueryRow(
		"SELECT amount FROM balances WHERE account = ? AND asset = ?",
		account, asset,
	).Scan(&amount)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	return amount, err
}

// Move transfers amount between two accounts inside one transaction and
// fails with ErrInsufficientBalance when the source cannot cover it.
func (s *Storage) Move(from, to, asset string, amount int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var have int64
	err = tx.QueryRow(
		"SELECT amount FROM balances WHERE account = ? AND asset = ?",
		from, asset,
	).Scan(&have)
	if err == sql.ErrNoRows {
		have = 0
	} else if err != nil {
		return err
	}
	if have < amount {
		return errors.Wrapf(ErrInsufficientBalance, "%s has %d %s, needs %d", from, have, asset, amount)
	}

	if _, err := tx.Exec(
		"UPDATE balances SET amount = amount - ? WHERE account = ? AND asset = ?",
		amount, from, asset,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(
		`INSERT INTO balances (account, asset, amount) VALUES (?, ?, ?)
		 ON CONFLICT(account, asset) DO UPDATE SET amount = amount + excluded.amount`,
		to, asset, amount,
	); err != nil {
		return err
	}

	return tx.Commit()
}
