package slots

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(seed int64) *Machine {
	return NewMachine(DefaultTable(), rand.New(rand.NewSource(seed)))
}

func TestDefaultTable_Weights(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, 114, table.TotalWeight())
	assert.Len(t, table.Symbols(), 9)
	assert.InDelta(t, float64(25)/114, table.Probability(Cherry), 1e-9)
	assert.Equal(t, 0.0, table.Probability("🃏"))
}

func TestScore_ThreeSevens(t *testing.T) {
	m := newTestMachine(1)

	outcome := m.Score([]string{Seven, Seven, Seven})

	assert.Equal(t, 500.0, outcome.Multiplier)
	assert.Equal(t, "3x "+Seven, outcome.Pattern)
}

func TestScore_WildSubstitution(t *testing.T) {
	m := newTestMachine(1)

	// Two cherries plus a wild count as three cherries.
	outcome := m.Score([]string{Cherry, Cherry, Wild})

	assert.Equal(t, 0.5, outcome.Multiplier)
	assert.Equal(t, "2x "+Cherry+" + 1x "+Wild+" (Wild)", outcome.Pattern)
}

func TestScore_WildPairBeatsSubstitutedCommon(t *testing.T) {
	m := newTestMachine(1)

	// Wild pair pays 3, substituted three-cherry only 0.5.
	outcome := m.Score([]string{Wild, Wild, Cherry})

	assert.Equal(t, 3.0, outcome.Multiplier)
	assert.Equal(t, "1x "+Cherry+" + 2x "+Wild+" (Wild)", outcome.Pattern)
}

func TestScore_ScatterIgnoresWild(t *testing.T) {
	m := newTestMachine(1)

	// Wild never substitutes for Scatter: one scatter plus one wild is no
	// scatter pair, and nothing else reaches two.
	outcome := m.Score([]string{Scatter, Wild, Seven})
	assert.Equal(t, 25.0, outcome.Multiplier) // seven + wild = pair of sevens
	assert.Equal(t, "1x "+Seven+" + 1x "+Wild+" (Wild)", outcome.Pattern)

	outcome = m.Score([]string{Scatter, Scatter, Wild})
	// Scatter pair pays 2; no symbol gets three from the single wild.
	assert.Equal(t, 2.0, outcome.Multiplier)
	assert.Equal(t, "2x "+Scatter+" (Scatter)", outcome.Pattern)
}

func TestScore_NoWin(t *testing.T) {
	m := newTestMachine(1)

	outcome := m.Score([]string{Orange, Lemon, Bell})

	assert.Equal(t, 0.0, outcome.Multiplier)
	assert.Empty(t, outcome.Pattern)
}

func TestScore_MissingPayoutEntryPaysNothing(t *testing.T) {
	table, err := NewPayoutTable([]SymbolConfig{
		{Symbol: Seven, Weight: 1, Payouts: map[int]float64{3: 10}},
		{Symbol: Bell, Weight: 1, Payouts: map[int]float64{2: 1}},
	})
	require.NoError(t, err)
	m := NewMachine(table, rand.New(rand.NewSource(1)))

	// A pair of sevens has no 2-count entry, so it pays nothing.
	outcome := m.Score([]string{Seven, Seven, Bell})
	assert.Equal(t, 0.0, outcome.Multiplier)
	assert.Empty(t, outcome.Pattern)
}

func TestWinnings_FloorsTowardZero(t *testing.T) {
	assert.Equal(t, int64(7), SpinOutcome{Multiplier: 0.75}.Winnings(10))
	assert.Equal(t, int64(2), SpinOutcome{Multiplier: 0.25}.Winnings(10))
	assert.Equal(t, int64(5000), SpinOutcome{Multiplier: 500}.Winnings(10))
	assert.Equal(t, int64(0), SpinOutcome{Multiplier: 0}.Winnings(10))
}

func TestDraw_Deterministic(t *testing.T) {
	a := newTestMachine(42)
	b := newTestMachine(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func TestDraw_FollowsWeights(t *testing.T) {
	m := newTestMachine(7)
	table := m.Table()

	const draws = 114000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		counts[m.Draw()]++
	}

	for _, cfg := range table.Symbols() {
		expected := float64(draws) * table.Probability(cfg.Symbol)
		// Seeded source, deterministic run; the tolerance just absorbs
		// sampling noise.
		assert.InDeltaf(t, expected, float64(counts[cfg.Symbol]), expected*0.15+50,
			"symbol %s drawn %d times, expected about %.0f", cfg.Symbol, counts[cfg.Symbol], expected)
	}
}

func TestSpin_ReturnsThreeKnownSymbols(t *testing.T) {
	m := newTestMachine(3)
	known := make(map[string]bool)
	for _, cfg := range m.Table().Symbols() {
		known[cfg.Symbol] = true
	}

	for i := 0; i < 1000; i++ {
		outcome := m.Spin()
		require.Len(t, outcome.Symbols, 3)
		for _, s := range outcome.Symbols {
			assert.True(t, known[s], "unknown symbol %q", s)
		}
		if outcome.Multiplier == 0 {
			assert.Empty(t, outcome.Pattern)
		} else {
			assert.NotEmpty(t, outcome.Pattern)
		}
	}
}
