package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bililionairestory/casino-bot/amount"
	"github.com/bililionairestory/casino-bot/ledger"
	"github.com/bililionairestory/casino-bot/models"
	"github.com/bililionairestory/casino-bot/slots"
)

// riggedMachine builds a machine whose single symbol makes every spin a
// three-of-a-kind at the given multiplier; zero means every spin loses.
func riggedMachine(t *testing.T, multiplier float64) *slots.Machine {
	t.Helper()

	payouts := map[int]float64{}
	if multiplier > 0 {
		payouts[3] = multiplier
	}
	table, err := slots.NewPayoutTable([]slots.SymbolConfig{
		{Symbol: slots.Cherry, Rarity: "Common", Weight: 1, Payouts: payouts},
	})
	require.NoError(t, err)
	return slots.NewMachine(table, rand.New(rand.NewSource(1)))
}

func TestPlaySlots_Win(t *testing.T) {
	l := newTestLedger(t)
	svc := NewGamblingService(l, riggedMachine(t, 5), nil, 10)

	result, err := svc.PlaySlots(context.Background(), "alice", "100")
	require.NoError(t, err)

	assert.True(t, result.Won)
	assert.Equal(t, int64(100), result.Bet)
	assert.Equal(t, int64(500), result.Winnings)
	assert.Equal(t, int64(testStartingBalance-100+500), result.NewBalance)
	assert.Equal(t, []string{slots.Cherry, slots.Cherry, slots.Cherry}, result.Symbols)

	account, err := l.Account(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.StatInt(models.StatSlotsPlayed))
	assert.Equal(t, int64(1), account.StatInt(models.StatSlotsWon))
	assert.Equal(t, int64(500), account.StatInt(models.StatHighestWin))
}

func TestPlaySlots_Loss(t *testing.T) {
	l := newTestLedger(t)
	svc := NewGamblingService(l, riggedMachine(t, 0), nil, 10)

	result, err := svc.PlaySlots(context.Background(), "alice", "100")
	require.NoError(t, err)

	assert.False(t, result.Won)
	assert.Zero(t, result.Winnings)
	assert.Empty(t, result.Pattern)
	assert.Equal(t, int64(testStartingBalance-100), result.NewBalance)

	account, err := l.Account(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.StatInt(models.StatSlotsPlayed))
	assert.Zero(t, account.StatInt(models.StatSlotsWon))
}

func TestPlaySlots_FractionalPayoutFloors(t *testing.T) {
	l := newTestLedger(t)
	svc := NewGamblingService(l, riggedMachine(t, 0.75), nil, 10)

	result, err := svc.PlaySlots(context.Background(), "alice", "10")
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.Winnings)
}

func TestPlaySlots_EmptyBetUsesMinimum(t *testing.T) {
	l := newTestLedger(t)
	svc := NewGamblingService(l, riggedMachine(t, 0), nil, 10)

	result, err := svc.PlaySlots(context.Background(), "alice", "")
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.Bet)
}

func TestPlaySlots_SuffixedBet(t *testing.T) {
	l := newTestLedger(t)
	setBalance(t, l, "alice", 2000)
	svc := NewGamblingService(l, riggedMachine(t, 0), nil, 10)

	result, err := svc.PlaySlots(context.Background(), "alice", "1k")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.Bet)
	assert.Equal(t, int64(1000), result.NewBalance)
}

func TestPlaySlots_Rejections(t *testing.T) {
	l := newTestLedger(t)
	svc := NewGamblingService(l, riggedMachine(t, 5), nil, 10)

	tests := []struct {
		name    string
		rawBet  string
		wantErr error
	}{
		{"malformed bet", "abc", amount.ErrInvalidAmount},
		{"below minimum", "5", ErrBetTooSmall},
		{"negative bet", "-100", ErrBetTooSmall},
		{"more than balance", "10k", ledger.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PlaySlots(context.Background(), "alice", tt.rawBet)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// No rejected play touched the balance or stats
	account, err := l.Account(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(testStartingBalance), account.Balance)
	assert.Zero(t, account.StatInt(models.StatSlotsPlayed))
}

func TestPlaySlots_HighestWinOnlyIncreases(t *testing.T) {
	l := newTestLedger(t)
	setBalance(t, l, "alice", 100_000)

	big := NewGamblingService(l, riggedMachine(t, 5), nil, 10)
	_, err := big.PlaySlots(context.Background(), "alice", "100")
	require.NoError(t, err)

	small := NewGamblingService(l, riggedMachine(t, 2), nil, 10)
	_, err = small.PlaySlots(context.Background(), "alice", "10")
	require.NoError(t, err)

	account, err := l.Account(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(500), account.StatInt(models.StatHighestWin))
}
