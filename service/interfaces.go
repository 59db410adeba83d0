package service

import (
	"context"

	"github.com/bililionairestory/casino-bot/models"
	"github.com/bililionairestory/casino-bot/slots"
)

// Ledger defines the account operations the services need. The concrete
// implementation lives in the ledger package.
type Ledger interface {
	// Account returns a copy of the user's account, creating it with the
	// default balance on first contact
	Account(ctx context.Context, userID string) (models.Account, error)

	// Update applies fn to the user's account atomically and persists the
	// result, rolling back if persistence fails
	Update(ctx context.Context, userID string, fn func(*models.Account) error) (models.Account, error)

	// Transfer atomically moves amount from one account to another
	Transfer(ctx context.Context, fromID, toID string, amount int64) (fromBalance, toBalance int64, err error)

	// Snapshot returns a copy of every known account
	Snapshot() map[string]models.Account
}

// RewardService defines the interface for daily and vote reward operations
type RewardService interface {
	// ClaimDaily grants the daily reward, or fails with a DailyCooldownError
	ClaimDaily(ctx context.Context, userID string) (*models.DailyResult, error)

	// ClaimVote grants the reward for the given vote number exactly once
	ClaimVote(ctx context.Context, userID string, voteNumber int64) (*models.VoteResult, error)

	// VoteTiers returns the configured vote multiplier tiers
	VoteTiers() []VoteTier
}

// TransferService defines the interface for gifting coins between users
type TransferService interface {
	// PrepareGift validates a gift request without moving any coins
	PrepareGift(ctx context.Context, fromID, toID string, toIsBot bool, rawAmount string) (int64, error)

	// ExecuteGift performs a previously validated gift
	ExecuteGift(ctx context.Context, fromID, toID string, amount int64) (*models.TransferResult, error)
}

// GamblingService defines the interface for slot machine operations
type GamblingService interface {
	// PlaySlots resolves one slot machine play for the given raw bet string.
	// An empty bet plays the table minimum.
	PlaySlots(ctx context.Context, userID string, rawBet string) (*models.SlotResult, error)

	// Table returns the payout table in play
	Table() *slots.PayoutTable

	// MinimumBet returns the smallest accepted bet
	MinimumBet() int64
}

// StatsService defines the interface for read-only account queries
type StatsService interface {
	// Leaderboard returns up to limit accounts ordered by balance descending
	Leaderboard(limit int) []models.LeaderboardEntry

	// UserStats returns gameplay statistics for an existing account
	UserStats(userID string) (*models.PublicStats, error)

	// AccountOverview returns the user's account, creating it if needed
	AccountOverview(ctx context.Context, userID string) (models.Account, error)
}
