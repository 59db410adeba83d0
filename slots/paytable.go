// Package slots implements the weighted three-reel slot machine: symbol
// selection, wild/scatter substitution and payout resolution.
package slots

import "fmt"

// Reel symbols. Wild substitutes for any symbol except Scatter when counting
// matches; Scatter counts toward its own match regardless of position.
const (
	Seven   = "7️⃣"
	Diamond = "💎"
	Wild    = "🎰"
	Scatter = "*️⃣"
	Bell    = "🔔"
	Orange  = "🍊"
	Lemon   = "🍋"
	Heart   = "❤️"
	Cherry  = "🍒"
)

// SymbolConfig describes one reel symbol: its selection weight and the
// payout multiplier per exact match count. Match counts without an entry
// pay nothing.
type SymbolConfig struct {
	Symbol  string
	Rarity  string
	Weight  int
	Payouts map[int]float64
}

// PayoutTable is the static symbol configuration a machine draws from.
// Symbols keep their configured order, which doubles as the deterministic
// tie-break order during payout resolution.
type PayoutTable struct {
	symbols     []SymbolConfig
	totalWeight int
	cumulative  []int
}

// NewPayoutTable validates the symbol configuration and precomputes the
// prefix-sum table used for weighted draws.
func NewPayoutTable(symbols []SymbolConfig) (*PayoutTable, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("payout table needs at least one symbol")
	}

	t := &PayoutTable{
		symbols:    make([]SymbolConfig, len(symbols)),
		cumulative: make([]int, len(symbols)),
	}
	seen := make(map[string]bool, len(symbols))
	for i, s := range symbols {
		if s.Weight <= 0 {
			return nil, fmt.Errorf("symbol %s has non-positive weight %d", s.Symbol, s.Weight)
		}
		if seen[s.Symbol] {
			return nil, fmt.Errorf("duplicate symbol %s", s.Symbol)
		}
		seen[s.Symbol] = true
		t.symbols[i] = s
		t.totalWeight += s.Weight
		t.cumulative[i] = t.totalWeight
	}
	return t, nil
}

// DefaultTable returns the production symbol set: nine symbols with weights
// summing 114, one Wild and one Scatter.
func DefaultTable() *PayoutTable {
	t, err := NewPayoutTable([]SymbolConfig{
		{Symbol: Seven, Rarity: "Rare", Weight: 1, Payouts: map[int]float64{2: 25, 3: 500}},
		{Symbol: Diamond, Rarity: "Uncommon", Weight: 3, Payouts: map[int]float64{2: 10, 3: 25}},
		{Symbol: Wild, Rarity: "Wild", Weight: 5, Payouts: map[int]float64{2: 3, 3: 5}},
		{Symbol: Scatter, Rarity: "Scatter", Weight: 8, Payouts: map[int]float64{2: 2, 3: 3}},
		{Symbol: Bell, Rarity: "Medium", Weight: 12, Payouts: map[int]float64{2: 1, 3: 2}},
		{Symbol: Orange, Rarity: "Common", Weight: 18, Payouts: map[int]float64{2: 1, 3: 1}},
		{Symbol: Lemon, Rarity: "Common", Weight: 20, Payouts: map[int]float64{2: 1, 3: 0.75}},
		{Symbol: Heart, Rarity: "Common", Weight: 22, Payouts: map[int]float64{2: 0.75, 3: 0.5}},
		{Symbol: Cherry, Rarity: "Common", Weight: 25, Payouts: map[int]float64{2: 0.25, 3: 0.5}},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// Symbols returns a copy of the configured symbols in table order.
func (t *PayoutTable) Symbols() []SymbolConfig {
	out := make([]SymbolConfig, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// TotalWeight returns the sum of all symbol weights.
func (t *PayoutTable) TotalWeight() int {
	return t.totalWeight
}

// Probability returns the selection probability of a symbol, or zero for an
// unknown symbol.
func (t *PayoutTable) Probability(symbol string) float64 {
	for _, s := range t.symbols {
		if s.Symbol == symbol {
			return float64(s.Weight) / float64(t.totalWeight)
		}
	}
	return 0
}

// Payout returns the multiplier for an exact match count of a symbol, or
// zero when the table has no entry for that count.
func (t *PayoutTable) Payout(symbol string, count int) float64 {
	for _, s := range t.symbols {
		if s.Symbol == symbol {
			return s.Payouts[count]
		}
	}
	return 0
}

// pick maps a value in [0, totalWeight) onto a symbol via the prefix-sum
// table.
func (t *PayoutTable) pick(n int) string {
	for i, cum := range t.cumulative {
		if n < cum {
			return t.symbols[i].Symbol
		}
	}
	// Unreachable for n in range; fall back to the last symbol.
	return t.symbols[len(t.symbols)-1].Symbol
}
