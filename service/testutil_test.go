package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bililionairestory/casino-bot/ledger"
	"github.com/bililionairestory/casino-bot/models"
)

const testStartingBalance = 500

// newTestLedger opens a ledger backed by a file in a temp directory.
func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	store := ledger.NewFileStore(filepath.Join(t.TempDir(), "user_data.json"))
	l, err := ledger.Open(context.Background(), store, testStartingBalance)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

// setBalance forces a user's balance to a known value.
func setBalance(t *testing.T, l *ledger.Ledger, userID string, balance int64) {
	t.Helper()

	_, err := l.Update(context.Background(), userID, func(a *models.Account) error {
		a.Balance = balance
		return nil
	})
	require.NoError(t, err)
}
