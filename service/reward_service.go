package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bililionairestory/casino-bot/events"
	"github.com/bililionairestory/casino-bot/models"
)

// VoteTier maps a range of vote numbers to a reward. A tier covering a single
// vote number is a milestone with a boosted multiplier.
type VoteTier struct {
	Min        int64
	Max        int64 // inclusive; the last tier is open-ended
	Multiplier int64
	Reward     int64
}

// Milestone reports whether the tier covers exactly one vote number.
func (t VoteTier) Milestone() bool {
	return t.Min == t.Max
}

// DefaultVoteTiers returns the standard vote reward schedule. Every block of
// twenty votes raises the multiplier and ends in a milestone vote paying
// triple the block rate. Votes past the last tier keep paying its reward.
func DefaultVoteTiers() []VoteTier {
	return []VoteTier{
		{Min: 1, Max: 20, Multiplier: 1, Reward: 100_000},
		{Min: 21, Max: 21, Multiplier: 3, Reward: 300_000},
		{Min: 22, Max: 41, Multiplier: 2, Reward: 200_000},
		{Min: 42, Max: 42, Multiplier: 6, Reward: 600_000},
		{Min: 43, Max: 62, Multiplier: 3, Reward: 300_000},
		{Min: 63, Max: 63, Multiplier: 9, Reward: 900_000},
		{Min: 64, Max: 83, Multiplier: 4, Reward: 400_000},
		{Min: 84, Max: 84, Multiplier: 12, Reward: 1_200_000},
	}
}

type rewardService struct {
	ledger      Ledger
	eventBus    *events.Bus
	dailyReward int64
	cooldown    time.Duration
	tiers       []VoteTier
	now         func() time.Time
}

// NewRewardService creates a new reward service
func NewRewardService(ledger Ledger, eventBus *events.Bus, dailyReward int64, cooldown time.Duration, tiers []VoteTier) RewardService {
	return &rewardService{
		ledger:      ledger,
		eventBus:    eventBus,
		dailyReward: dailyReward,
		cooldown:    cooldown,
		tiers:       tiers,
		now:         time.Now,
	}
}

func (s *rewardService) ClaimDaily(ctx context.Context, userID string) (*models.DailyResult, error) {
	now := s.now()

	account, err := s.ledger.Update(ctx, userID, func(a *models.Account) error {
		if a.LastDailyClaim > 0 {
			elapsed := now.Unix() - a.LastDailyClaim
			if remaining := s.cooldown - time.Duration(elapsed)*time.Second; remaining > 0 {
				return &DailyCooldownError{Remaining: remaining}
			}
		}
		a.Balance += s.dailyReward
		a.LastDailyClaim = now.Unix()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		s.eventBus.Emit(ctx, events.RewardClaimedEvent{
			UserID: userID,
			Kind:   "daily",
			Amount: s.dailyReward,
		})
		s.eventBus.Emit(ctx, events.BalanceChangeEvent{
			UserID:       userID,
			OldBalance:   account.Balance - s.dailyReward,
			NewBalance:   account.Balance,
			ChangeAmount: s.dailyReward,
			Reason:       "daily",
		})
	}

	return &models.DailyResult{
		Reward:     s.dailyReward,
		NewBalance: account.Balance,
	}, nil
}

func (s *rewardService) ClaimVote(ctx context.Context, userID string, voteNumber int64) (*models.VoteResult, error) {
	if voteNumber <= 0 {
		return nil, ErrInvalidVoteNumber
	}

	tier := s.tierFor(voteNumber)

	account, err := s.ledger.Update(ctx, userID, func(a *models.Account) error {
		if a.HasClaimedVote(voteNumber) {
			return fmt.Errorf("vote %d: %w", voteNumber, ErrVoteAlreadyClaimed)
		}
		a.Balance += tier.Reward
		a.ClaimedVotes = append(a.ClaimedVotes, voteNumber)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		s.eventBus.Emit(ctx, events.RewardClaimedEvent{
			UserID:     userID,
			Kind:       "vote",
			VoteNumber: voteNumber,
			Amount:     tier.Reward,
		})
		s.eventBus.Emit(ctx, events.BalanceChangeEvent{
			UserID:       userID,
			OldBalance:   account.Balance - tier.Reward,
			NewBalance:   account.Balance,
			ChangeAmount: tier.Reward,
			Reason:       "vote",
		})
	}

	return &models.VoteResult{
		VoteNumber: voteNumber,
		Multiplier: tier.Multiplier,
		Reward:     tier.Reward,
		NewBalance: account.Balance,
		// Votes past the last tier reuse its reward but are not
		// themselves milestones.
		Milestone: tier.Milestone() && voteNumber == tier.Min,
	}, nil
}

func (s *rewardService) VoteTiers() []VoteTier {
	tiers := make([]VoteTier, len(s.tiers))
	copy(tiers, s.tiers)
	return tiers
}

// tierFor returns the tier covering voteNumber. Numbers past the last tier's
// range keep using the last tier.
func (s *rewardService) tierFor(voteNumber int64) VoteTier {
	for _, tier := range s.tiers {
		if voteNumber >= tier.Min && voteNumber <= tier.Max {
			return tier
		}
	}
	return s.tiers[len(s.tiers)-1]
}
