package models

// Stat names tracked by the gambling commands.
const (
	StatSlotsPlayed = "slots_played"
	StatSlotsWon    = "slots_won"
	StatHighestWin  = "highest_win"
)

// Account is the durable per-user record owned by the ledger.
//
// JSON field names match the on-disk layout of the user data file so an
// existing store reloads verbatim.
type Account struct {
	UserID         string               `json:"-"`
	Balance        int64                `json:"balance"`
	Stats          map[string]StatValue `json:"stats,omitempty"`
	LastDailyClaim int64                `json:"last_daily,omitempty"` // unix seconds; zero means never claimed
	ClaimedVotes   []int64              `json:"claimed_votes,omitempty"`
}

// Clone returns a deep copy. The ledger hands out clones so callers can
// never alias the store's memory.
func (a *Account) Clone() *Account {
	c := *a
	if a.Stats != nil {
		c.Stats = make(map[string]StatValue, len(a.Stats))
		for k, v := range a.Stats {
			c.Stats[k] = v.clone()
		}
	}
	if a.ClaimedVotes != nil {
		c.ClaimedVotes = append([]int64(nil), a.ClaimedVotes...)
	}
	return &c
}

// StatInt returns the integer value of a stat, or zero when the stat is
// absent or holds a non-integer value.
func (a *Account) StatInt(name string) int64 {
	v, ok := a.Stats[name]
	if !ok || v.Kind != StatKindInt {
		return 0
	}
	return v.Int
}

// AddStat accumulates delta into an integer stat, initializing it to zero
// first. A stat currently holding a non-integer value is overwritten.
func (a *Account) AddStat(name string, delta int64) {
	if a.Stats == nil {
		a.Stats = make(map[string]StatValue)
	}
	if v, ok := a.Stats[name]; ok && v.Kind == StatKindInt {
		a.Stats[name] = IntStat(v.Int + delta)
		return
	}
	a.Stats[name] = IntStat(delta)
}

// SetStat overwrites a stat regardless of its current kind.
func (a *Account) SetStat(name string, v StatValue) {
	if a.Stats == nil {
		a.Stats = make(map[string]StatValue)
	}
	a.Stats[name] = v
}

// HasClaimedVote reports whether a vote number was already redeemed.
func (a *Account) HasClaimedVote(n int64) bool {
	for _, v := range a.ClaimedVotes {
		if v == n {
			return true
		}
	}
	return false
}
