package ledger

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/bililionairestory/casino-bot/events"
	"github.com/bililionairestory/casino-bot/models"
)

// Ledger serializes all account mutations behind a single lock and writes
// through to its Store before any mutation returns. Concurrent callers
// observe a total order; a reader that sees a mutation's result has also
// seen its durable persistence.
type Ledger struct {
	mu             sync.RWMutex
	store          Store
	accounts       map[string]*models.Account
	defaultBalance int64
	eventBus       *events.Bus
}

// Open loads the store and returns a ready ledger. A missing store starts
// empty and is persisted immediately; a corrupt store fails the boot.
func Open(ctx context.Context, store Store, defaultBalance int64) (*Ledger, error) {
	accounts, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger store: %w", err)
	}
	if accounts == nil {
		accounts = make(map[string]*models.Account)
	}
	for id, acct := range accounts {
		acct.UserID = id
	}

	l := &Ledger{
		store:          store,
		accounts:       accounts,
		defaultBalance: defaultBalance,
	}

	if err := store.Save(ctx, accounts, nil); err != nil {
		return nil, fmt.Errorf("%w: initializing store: %v", ErrStoreUnavailable, err)
	}

	log.WithField("accounts", len(accounts)).Info("Ledger loaded")
	return l, nil
}

// SetEventBus attaches an event bus; the ledger announces account creation
// on it. A nil bus disables the announcements.
func (l *Ledger) SetEventBus(bus *events.Bus) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.eventBus = bus
}

// Close releases the underlying store.
func (l *Ledger) Close() error {
	return l.store.Close()
}

// Account returns the account for userID, creating and persisting a default
// one on first access.
func (l *Ledger) Account(ctx context.Context, userID string) (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, err := l.ensureLocked(ctx, userID)
	if err != nil {
		return models.Account{}, err
	}
	return *acct.Clone(), nil
}

// Update atomically applies fn to the account for userID, creating the
// account first if needed, and persists the result before returning. If fn
// returns an error the account is left exactly as it was and nothing is
// persisted; the unchanged account is still returned alongside the error so
// callers can report current state.
//
// The balance floor invariant is enforced here: whatever fn does, the
// committed balance is clamped at zero.
func (l *Ledger) Update(ctx context.Context, userID string, fn func(*models.Account) error) (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur, err := l.ensureLocked(ctx, userID)
	if err != nil {
		return models.Account{}, err
	}

	next := cur.Clone()
	if err := fn(next); err != nil {
		return *cur.Clone(), err
	}
	if next.Balance < 0 {
		next.Balance = 0
	}

	l.accounts[userID] = next
	if err := l.store.Save(ctx, l.accounts, []string{userID}); err != nil {
		l.accounts[userID] = cur
		return models.Account{}, fmt.Errorf("%w: persisting account %s: %v", ErrStoreUnavailable, userID, err)
	}
	return *next.Clone(), nil
}

// AdjustBalance atomically adds delta (which may be negative) to the
// balance, clamping the result at zero, and returns the new balance.
func (l *Ledger) AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	acct, err := l.Update(ctx, userID, func(a *models.Account) error {
		a.Balance += delta
		return nil
	})
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}

// IncrementStat atomically adds delta to a numeric stat, initializing it to
// zero if absent.
func (l *Ledger) IncrementStat(ctx context.Context, userID, name string, delta int64) error {
	_, err := l.Update(ctx, userID, func(a *models.Account) error {
		a.AddStat(name, delta)
		return nil
	})
	return err
}

// SetStat atomically overwrites a stat.
func (l *Ledger) SetStat(ctx context.Context, userID, name string, v models.StatValue) error {
	_, err := l.Update(ctx, userID, func(a *models.Account) error {
		a.SetStat(name, v)
		return nil
	})
	return err
}

// Transfer atomically moves amount from one account to the other. Both
// sides commit together or not at all; an observer can never see coins
// vanish or duplicate. Returns the two new balances.
func (l *Ledger) Transfer(ctx context.Context, fromID, toID string, amount int64) (fromBalance, toBalance int64, err error) {
	if amount <= 0 {
		return 0, 0, fmt.Errorf("transfer amount must be positive, got %d", amount)
	}
	if fromID == toID {
		return 0, 0, fmt.Errorf("transfer endpoints must differ")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	from, err := l.ensureLocked(ctx, fromID)
	if err != nil {
		return 0, 0, err
	}
	to, err := l.ensureLocked(ctx, toID)
	if err != nil {
		return 0, 0, err
	}

	if from.Balance < amount {
		return 0, 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, from.Balance, amount)
	}

	newFrom := from.Clone()
	newTo := to.Clone()
	newFrom.Balance -= amount
	newTo.Balance += amount

	l.accounts[fromID] = newFrom
	l.accounts[toID] = newTo
	if err := l.store.Save(ctx, l.accounts, []string{fromID, toID}); err != nil {
		l.accounts[fromID] = from
		l.accounts[toID] = to
		return 0, 0, fmt.Errorf("%w: persisting transfer %s -> %s: %v", ErrStoreUnavailable, fromID, toID, err)
	}
	return newFrom.Balance, newTo.Balance, nil
}

// Snapshot returns a deep-copied read-only view of every account, keyed by
// user id. It never creates accounts.
func (l *Ledger) Snapshot() map[string]models.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]models.Account, len(l.accounts))
	for id, acct := range l.accounts {
		out[id] = *acct.Clone()
	}
	return out
}

// ensureLocked fetches or lazily creates an account. Creation is itself a
// mutation and is persisted before the account becomes visible.
func (l *Ledger) ensureLocked(ctx context.Context, userID string) (*models.Account, error) {
	if acct, ok := l.accounts[userID]; ok {
		return acct, nil
	}

	acct := &models.Account{
		UserID:  userID,
		Balance: l.defaultBalance,
		Stats:   make(map[string]models.StatValue),
	}
	l.accounts[userID] = acct
	if err := l.store.Save(ctx, l.accounts, []string{userID}); err != nil {
		delete(l.accounts, userID)
		return nil, fmt.Errorf("%w: creating account %s: %v", ErrStoreUnavailable, userID, err)
	}

	log.WithFields(log.Fields{
		"userID":  userID,
		"balance": l.defaultBalance,
	}).Info("Created account")

	if l.eventBus != nil {
		l.eventBus.Emit(ctx, events.AccountCreatedEvent{
			UserID:         userID,
			InitialBalance: l.defaultBalance,
		})
	}
	return acct, nil
}
