package ledger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bililionairestory/casino-bot/database"
	"github.com/bililionairestory/casino-bot/models"
)

// PGStore persists accounts in Postgres, one row per user id. Saves touch
// only the dirty accounts and run in a single transaction, so a transfer's
// debit and credit rows commit together.
type PGStore struct {
	db *database.DB
}

// NewPGStore creates a store over an open database connection. The schema
// is managed by the migrate subcommand.
func NewPGStore(db *database.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Load(ctx context.Context) (map[string]*models.Account, error) {
	query := `
		SELECT user_id, balance, stats, last_daily_claim, claimed_votes
		FROM accounts
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: loading accounts: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	accounts := make(map[string]*models.Account)
	for rows.Next() {
		var (
			acct      models.Account
			lastDaily *int64
		)
		if err := rows.Scan(&acct.UserID, &acct.Balance, &acct.Stats, &lastDaily, &acct.ClaimedVotes); err != nil {
			return nil, fmt.Errorf("%w: scanning account row: %v", ErrCorruptStore, err)
		}
		if lastDaily != nil {
			acct.LastDailyClaim = *lastDaily
		}
		a := acct
		accounts[acct.UserID] = &a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading accounts: %v", ErrStoreUnavailable, err)
	}
	return accounts, nil
}

func (s *PGStore) Save(ctx context.Context, accounts map[string]*models.Account, dirty []string) error {
	if len(dirty) == 0 {
		return nil
	}

	query := `
		INSERT INTO accounts (user_id, balance, stats, last_daily_claim, claimed_votes, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id) DO UPDATE SET
			balance = EXCLUDED.balance,
			stats = EXCLUDED.stats,
			last_daily_claim = EXCLUDED.last_daily_claim,
			claimed_votes = EXCLUDED.claimed_votes,
			updated_at = now()
	`

	return s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, id := range dirty {
			acct, ok := accounts[id]
			if !ok {
				continue
			}

			var lastDaily *int64
			if acct.LastDailyClaim != 0 {
				lastDaily = &acct.LastDailyClaim
			}
			stats := acct.Stats
			if stats == nil {
				stats = map[string]models.StatValue{}
			}
			votes := acct.ClaimedVotes
			if votes == nil {
				votes = []int64{}
			}

			if _, err := tx.Exec(ctx, query, id, acct.Balance, stats, lastDaily, votes); err != nil {
				return fmt.Errorf("upserting account %s: %w", id, err)
			}
		}
		return nil
	})
}

func (s *PGStore) Close() error {
	s.db.Close()
	return nil
}
