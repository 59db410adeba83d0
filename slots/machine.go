package slots

import (
	"fmt"
	"math/rand"
	"sync"
)

const reels = 3

// SpinOutcome is the transient result of one spin: the drawn symbols in
// display order, the single best payout multiplier, and a human-readable
// description of the winning pattern (empty when nothing won).
type SpinOutcome struct {
	Symbols    []string
	Multiplier float64
	Pattern    string
}

// Machine draws spins from a payout table using an injected random source,
// so outcomes are reproducible under a seeded source.
type Machine struct {
	table *PayoutTable

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMachine creates a machine over the given table. The random source is
// injected rather than taken from the global generator; concurrent spins
// are safe.
func NewMachine(table *PayoutTable, rng *rand.Rand) *Machine {
	return &Machine{table: table, rng: rng}
}

// Table returns the machine's payout table.
func (m *Machine) Table() *PayoutTable {
	return m.table
}

// Draw selects one symbol with probability proportional to its weight.
func (m *Machine) Draw() string {
	m.mu.Lock()
	n := m.rng.Intn(m.table.totalWeight)
	m.mu.Unlock()
	return m.table.pick(n)
}

// Spin draws three symbols and resolves the payout.
func (m *Machine) Spin() SpinOutcome {
	symbols := make([]string, reels)
	for i := range symbols {
		symbols[i] = m.Draw()
	}
	return m.Score(symbols)
}

// Score resolves the payout for a fixed set of drawn symbols. Exposed
// separately from Spin so the resolution rules stay deterministic and
// testable without a random source.
//
// Every non-Scatter symbol's effective count is its raw occurrences plus
// the Wild occurrences; Wild itself and Scatter count only raw occurrences.
// The outcome takes the single highest multiplier across all symbols, with
// ties broken by table order.
func (m *Machine) Score(symbols []string) SpinOutcome {
	wilds := occurrences(symbols, Wild)

	var (
		best          float64
		bestSymbol    string
		bestRaw       int
		bestWilds     int
		bestEffective int
	)

	for _, cfg := range m.table.symbols {
		raw := occurrences(symbols, cfg.Symbol)
		effective := raw
		if cfg.Symbol != Wild && cfg.Symbol != Scatter {
			effective += wilds
		}
		if effective < 2 {
			continue
		}

		payout := cfg.Payouts[effective]
		if payout > best {
			best = payout
			bestSymbol = cfg.Symbol
			bestRaw = raw
			bestWilds = effective - raw
			bestEffective = effective
		}
	}

	outcome := SpinOutcome{Symbols: symbols, Multiplier: best}
	if best > 0 {
		outcome.Pattern = describePattern(bestSymbol, bestEffective, bestRaw, bestWilds)
	}
	return outcome
}

// Winnings applies the floor-toward-zero payout policy for a bet.
func (o SpinOutcome) Winnings(bet int64) int64 {
	return int64(float64(bet) * o.Multiplier)
}

func describePattern(symbol string, effective, raw, wilds int) string {
	if wilds > 0 {
		return fmt.Sprintf("%dx %s + %dx %s (Wild)", raw, symbol, wilds, Wild)
	}
	switch symbol {
	case Wild:
		return fmt.Sprintf("%dx %s (Wild)", effective, symbol)
	case Scatter:
		return fmt.Sprintf("%dx %s (Scatter)", effective, symbol)
	}
	return fmt.Sprintf("%dx %s", effective, symbol)
}

func occurrences(symbols []string, symbol string) int {
	n := 0
	for _, s := range symbols {
		if s == symbol {
			n++
		}
	}
	return n
}
