// Package ledger is the sole authority over account state: a mutex-guarded
// in-memory map with synchronous write-through persistence. Every mutation
// is durable before the call returns, and callers only ever see deep copies
// of account data.
package ledger

import (
	"context"
	"errors"

	"github.com/bililionairestory/casino-bot/models"
)

var (
	// ErrStoreUnavailable wraps persistence failures. A mutation that hits
	// it has been rolled back in memory; nothing was committed.
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrCorruptStore is returned at load time when the durable store exists
	// but cannot be decoded. Boot fails loudly instead of silently resetting
	// balances; a genuinely missing store is not an error.
	ErrCorruptStore = errors.New("ledger store corrupt")

	// ErrInsufficientFunds rejects a debit or transfer that would exceed the
	// account's balance. No state changes.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Store is the durable backend behind the ledger.
type Store interface {
	// Load reads all persisted accounts. A missing store yields an empty
	// map; a present-but-undecodable store yields ErrCorruptStore.
	Load(ctx context.Context) (map[string]*models.Account, error)

	// Save durably persists the accounts before returning. dirty lists the
	// user ids changed by the mutation being committed; implementations may
	// persist only those, or rewrite everything.
	Save(ctx context.Context, accounts map[string]*models.Account, dirty []string) error

	// Close releases the backend's resources.
	Close() error
}
