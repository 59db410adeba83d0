package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bililionairestory/casino-bot/amount"
	"github.com/bililionairestory/casino-bot/events"
	"github.com/bililionairestory/casino-bot/ledger"
)

func TestPrepareGift_Valid(t *testing.T) {
	l := newTestLedger(t)
	setBalance(t, l, "alice", 5000)
	svc := NewTransferService(l, nil)

	amt, err := svc.PrepareGift(context.Background(), "alice", "bob", false, "1k")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), amt)

	// Preparation alone moves nothing
	account, err := l.Account(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(testStartingBalance), account.Balance)
}

func TestPrepareGift_Rejections(t *testing.T) {
	l := newTestLedger(t)
	setBalance(t, l, "alice", 5000)
	svc := NewTransferService(l, nil)

	tests := []struct {
		name      string
		toID      string
		toIsBot   bool
		rawAmount string
		wantErr   error
	}{
		{"malformed amount", "bob", false, "abc", amount.ErrInvalidAmount},
		{"zero amount", "bob", false, "0", ErrAmountNotPositive},
		{"negative amount", "bob", false, "-50", ErrAmountNotPositive},
		{"self transfer", "alice", false, "100", ErrSelfTransfer},
		{"bot recipient", "bot", true, "100", ErrBotRecipient},
		{"insufficient funds", "bob", false, "10k", ledger.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PrepareGift(context.Background(), "alice", tt.toID, tt.toIsBot, tt.rawAmount)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecuteGift_MovesCoins(t *testing.T) {
	l := newTestLedger(t)
	setBalance(t, l, "alice", 1000)
	svc := NewTransferService(l, nil)

	result, err := svc.ExecuteGift(context.Background(), "alice", "bob", 300)
	require.NoError(t, err)

	assert.Equal(t, int64(300), result.Amount)
	assert.Equal(t, int64(700), result.SenderBalance)
	assert.Equal(t, int64(testStartingBalance+300), result.RecipientBalance)
}

func TestExecuteGift_EmitsBalanceChanges(t *testing.T) {
	l := newTestLedger(t)
	setBalance(t, l, "alice", 1000)
	setBalance(t, l, "bob", 200)

	bus := events.NewBus()
	changes := make(chan events.BalanceChangeEvent, 2)
	bus.Subscribe(events.EventTypeBalanceChange, func(_ context.Context, e events.Event) {
		changes <- e.(events.BalanceChangeEvent)
	})
	svc := NewTransferService(l, bus)

	_, err := svc.ExecuteGift(context.Background(), "alice", "bob", 300)
	require.NoError(t, err)

	byUser := map[string]events.BalanceChangeEvent{}
	for i := 0; i < 2; i++ {
		select {
		case e := <-changes:
			byUser[e.UserID] = e
		case <-time.After(time.Second):
			t.Fatal("missing balance change event")
		}
	}

	sender := byUser["alice"]
	assert.Equal(t, int64(1000), sender.OldBalance)
	assert.Equal(t, int64(700), sender.NewBalance)
	assert.Equal(t, int64(-300), sender.ChangeAmount)
	assert.Equal(t, "gift", sender.Reason)

	recipient := byUser["bob"]
	assert.Equal(t, int64(200), recipient.OldBalance)
	assert.Equal(t, int64(500), recipient.NewBalance)
	assert.Equal(t, int64(300), recipient.ChangeAmount)
	assert.Equal(t, "gift", recipient.Reason)
}

func TestExecuteGift_InsufficientAtCommit(t *testing.T) {
	l := newTestLedger(t)
	setBalance(t, l, "alice", 100)
	svc := NewTransferService(l, nil)

	// Funds drained between preparation and execution
	_, err := svc.ExecuteGift(context.Background(), "alice", "bob", 300)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	account, err := l.Account(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(testStartingBalance), account.Balance)
}

func TestExecuteGift_SelfTransferRejected(t *testing.T) {
	l := newTestLedger(t)
	svc := NewTransferService(l, nil)

	_, err := svc.ExecuteGift(context.Background(), "alice", "alice", 100)
	assert.ErrorIs(t, err, ErrSelfTransfer)
}
