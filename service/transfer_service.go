package service

import (
	"context"
	"fmt"

	"github.com/bililionairestory/casino-bot/amount"
	"github.com/bililionairestory/casino-bot/events"
	"github.com/bililionairestory/casino-bot/ledger"
	"github.com/bililionairestory/casino-bot/models"
)

type transferService struct {
	ledger   Ledger
	eventBus *events.Bus
}

// NewTransferService creates a new transfer service
func NewTransferService(l Ledger, eventBus *events.Bus) TransferService {
	return &transferService{
		ledger:   l,
		eventBus: eventBus,
	}
}

// PrepareGift validates the gift and returns the parsed amount. It performs a
// funds precheck so obviously doomed gifts are rejected before the caller
// starts a confirmation prompt; ExecuteGift still rechecks at commit time.
func (s *transferService) PrepareGift(ctx context.Context, fromID, toID string, toIsBot bool, rawAmount string) (int64, error) {
	amt, err := amount.Parse(rawAmount)
	if err != nil {
		return 0, err
	}
	if amt <= 0 {
		return 0, ErrAmountNotPositive
	}
	if fromID == toID {
		return 0, ErrSelfTransfer
	}
	if toIsBot {
		return 0, ErrBotRecipient
	}

	sender, err := s.ledger.Account(ctx, fromID)
	if err != nil {
		return 0, fmt.Errorf("failed to get sender account: %w", err)
	}
	if sender.Balance < amt {
		return 0, fmt.Errorf("have %d, need %d: %w", sender.Balance, amt, ledger.ErrInsufficientFunds)
	}

	return amt, nil
}

func (s *transferService) ExecuteGift(ctx context.Context, fromID, toID string, amt int64) (*models.TransferResult, error) {
	if amt <= 0 {
		return nil, ErrAmountNotPositive
	}
	if fromID == toID {
		return nil, ErrSelfTransfer
	}

	fromBalance, toBalance, err := s.ledger.Transfer(ctx, fromID, toID, amt)
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		s.eventBus.Emit(ctx, events.TransferCompletedEvent{
			FromUserID: fromID,
			ToUserID:   toID,
			Amount:     amt,
		})
		s.eventBus.Emit(ctx, events.BalanceChangeEvent{
			UserID:       fromID,
			OldBalance:   fromBalance + amt,
			NewBalance:   fromBalance,
			ChangeAmount: -amt,
			Reason:       "gift",
		})
		s.eventBus.Emit(ctx, events.BalanceChangeEvent{
			UserID:       toID,
			OldBalance:   toBalance - amt,
			NewBalance:   toBalance,
			ChangeAmount: amt,
			Reason:       "gift",
		})
	}

	return &models.TransferResult{
		Amount:           amt,
		SenderBalance:    fromBalance,
		RecipientBalance: toBalance,
	}, nil
}
