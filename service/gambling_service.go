package service

import (
	"context"
	"fmt"

	"github.com/bililionairestory/casino-bot/amount"
	"github.com/bililionairestory/casino-bot/events"
	"github.com/bililionairestory/casino-bot/ledger"
	"github.com/bililionairestory/casino-bot/models"
	"github.com/bililionairestory/casino-bot/slots"
)

type gamblingService struct {
	ledger   Ledger
	machine  *slots.Machine
	eventBus *events.Bus
	minBet   int64
}

// NewGamblingService creates a new gambling service
func NewGamblingService(l Ledger, machine *slots.Machine, eventBus *events.Bus, minBet int64) GamblingService {
	return &gamblingService{
		ledger:   l,
		machine:  machine,
		eventBus: eventBus,
		minBet:   minBet,
	}
}

func (s *gamblingService) PlaySlots(ctx context.Context, userID string, rawBet string) (*models.SlotResult, error) {
	bet := s.minBet
	if rawBet != "" {
		var err error
		bet, err = amount.Parse(rawBet)
		if err != nil {
			return nil, err
		}
	}
	if bet < s.minBet {
		return nil, fmt.Errorf("bet %d is below the minimum of %d: %w", bet, s.minBet, ErrBetTooSmall)
	}

	// Take the bet up front. The spin and the winnings credit happen after,
	// so two concurrent plays can never spend the same coins twice.
	if _, err := s.ledger.Update(ctx, userID, func(a *models.Account) error {
		if a.Balance < bet {
			return fmt.Errorf("have %d, need %d: %w", a.Balance, bet, ledger.ErrInsufficientFunds)
		}
		a.Balance -= bet
		return nil
	}); err != nil {
		return nil, err
	}

	outcome := s.machine.Spin()
	winnings := outcome.Winnings(bet)
	won := outcome.Multiplier > 0

	account, err := s.ledger.Update(ctx, userID, func(a *models.Account) error {
		a.Balance += winnings
		a.AddStat(models.StatSlotsPlayed, 1)
		if won {
			a.AddStat(models.StatSlotsWon, 1)
			if winnings > a.StatInt(models.StatHighestWin) {
				a.SetStat(models.StatHighestWin, models.IntStat(winnings))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to credit winnings: %w", err)
	}

	if s.eventBus != nil {
		s.eventBus.Emit(ctx, events.SpinPlayedEvent{
			UserID:     userID,
			Bet:        bet,
			Winnings:   winnings,
			Multiplier: outcome.Multiplier,
			Pattern:    outcome.Pattern,
			Won:        won,
		})
		s.eventBus.Emit(ctx, events.BalanceChangeEvent{
			UserID:       userID,
			OldBalance:   account.Balance - winnings + bet,
			NewBalance:   account.Balance,
			ChangeAmount: winnings - bet,
			Reason:       "slots",
		})
	}

	return &models.SlotResult{
		Symbols:    outcome.Symbols,
		Multiplier: outcome.Multiplier,
		Pattern:    outcome.Pattern,
		Bet:        bet,
		Winnings:   winnings,
		NewBalance: account.Balance,
		Won:        won,
	}, nil
}

func (s *gamblingService) Table() *slots.PayoutTable {
	return s.machine.Table()
}

func (s *gamblingService) MinimumBet() int64 {
	return s.minBet
}
