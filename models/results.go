package models

// DailyResult reports a successful daily reward claim.
type DailyResult struct {
	Reward     int64
	NewBalance int64
}

// VoteResult reports a successful vote reward claim.
type VoteResult struct {
	VoteNumber int64
	Multiplier int64
	Reward     int64
	NewBalance int64
	Milestone  bool
}

// TransferResult reports a completed coin transfer.
type TransferResult struct {
	Amount           int64
	SenderBalance    int64
	RecipientBalance int64
}

// SlotResult reports a resolved slot machine play.
type SlotResult struct {
	Symbols    []string
	Multiplier float64
	Pattern    string
	Bet        int64
	Winnings   int64
	NewBalance int64
	Won        bool
}

// LeaderboardEntry is one row of the balance leaderboard.
type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

// PublicStats is the read-only view of one account exposed to the chat and
// web query surfaces.
type PublicStats struct {
	UserID      string  `json:"user_id"`
	Balance     int64   `json:"balance"`
	SlotsPlayed int64   `json:"slots_played"`
	SlotsWon    int64   `json:"slots_won"`
	WinRate     float64 `json:"win_rate"`
	HighestWin  int64   `json:"highest_win"`
}
