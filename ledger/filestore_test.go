package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bililionairestory/casino-bot/models"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	accounts, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "user_data.json")
	store := NewFileStore(path)

	accounts := map[string]*models.Account{
		"100": {
			UserID:  "100",
			Balance: 12345,
			Stats: map[string]models.StatValue{
				models.StatSlotsPlayed: models.IntStat(7),
				"title":                models.StringStat("lucky"),
				"history":              models.IntListStat([]int64{3, 5}),
			},
			LastDailyClaim: 1700000000,
			ClaimedVotes:   []int64{1, 21, 42},
		},
		"200": {UserID: "200", Balance: 500},
	}

	require.NoError(t, store.Save(ctx, accounts, []string{"100", "200"}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	acct := loaded["100"]
	require.NotNil(t, acct)
	assert.Equal(t, int64(12345), acct.Balance)
	assert.Equal(t, models.IntStat(7), acct.Stats[models.StatSlotsPlayed])
	assert.Equal(t, models.StringStat("lucky"), acct.Stats["title"])
	assert.Equal(t, models.StatKindIntList, acct.Stats["history"].Kind)
	assert.Equal(t, []int64{3, 5}, acct.Stats["history"].List)
	assert.Equal(t, int64(1700000000), acct.LastDailyClaim)
	assert.Equal(t, []int64{1, 21, 42}, acct.ClaimedVotes)
	assert.Equal(t, int64(500), loaded["200"].Balance)
}

func TestFileStore_LoadsLegacyLayout(t *testing.T) {
	// A data file written by the previous implementation reloads verbatim.
	legacy := `{
  "271828": {
    "balance": 4200,
    "stats": {
      "slots_played": 12,
      "slots_won": 3,
      "highest_win": 900
    },
    "last_daily": 1699999999,
    "claimed_votes": [1, 2, 21]
  }
}`
	path := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	loaded, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	acct := loaded["271828"]
	require.NotNil(t, acct)
	assert.Equal(t, int64(4200), acct.Balance)
	assert.Equal(t, int64(12), acct.Stats[models.StatSlotsPlayed].Int)
	assert.Equal(t, int64(900), acct.Stats[models.StatHighestWin].Int)
	assert.Equal(t, int64(1699999999), acct.LastDailyClaim)
	assert.Equal(t, []int64{1, 2, 21}, acct.ClaimedVotes)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(path, []byte("balance: lots"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptStore)
}

func TestFileStore_SaveReplacesAtomically(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "user_data.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(ctx, map[string]*models.Account{
		"100": {UserID: "100", Balance: 1},
	}, nil))
	require.NoError(t, store.Save(ctx, map[string]*models.Account{
		"100": {UserID: "100", Balance: 2},
	}, nil))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user_data.json", entries[0].Name())

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded["100"].Balance)
}
