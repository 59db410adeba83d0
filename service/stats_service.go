package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/bililionairestory/casino-bot/models"
)

type statsService struct {
	ledger Ledger
}

// NewStatsService creates a new stats service
func NewStatsService(l Ledger) StatsService {
	return &statsService{ledger: l}
}

func (s *statsService) Leaderboard(limit int) []models.LeaderboardEntry {
	accounts := s.ledger.Snapshot()

	entries := make([]models.LeaderboardEntry, 0, len(accounts))
	for userID, account := range accounts {
		entries = append(entries, models.LeaderboardEntry{
			UserID:  userID,
			Balance: account.Balance,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (s *statsService) UserStats(userID string) (*models.PublicStats, error) {
	accounts := s.ledger.Snapshot()
	account, ok := accounts[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, ErrUnknownUser)
	}

	played := account.StatInt(models.StatSlotsPlayed)
	won := account.StatInt(models.StatSlotsWon)
	winRate := 0.0
	if played > 0 {
		winRate = float64(won) / float64(played)
	}

	return &models.PublicStats{
		UserID:      userID,
		Balance:     account.Balance,
		SlotsPlayed: played,
		SlotsWon:    won,
		WinRate:     winRate,
		HighestWin:  account.StatInt(models.StatHighestWin),
	}, nil
}

func (s *statsService) AccountOverview(ctx context.Context, userID string) (models.Account, error) {
	return s.ledger.Account(ctx, userID)
}
