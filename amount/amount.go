// Package amount parses human-entered coin amounts like "1000", "1k" or
// "2.5m" into exact integer quantities.
package amount

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned for any input that cannot be parsed into an
// integer coin amount. Callers should treat it as "reject input", not as a
// fatal condition.
var ErrInvalidAmount = errors.New("invalid amount")

// suffixScales maps magnitude suffixes to their decimal scale.
var suffixScales = map[byte]float64{
	'k': 1e3,
	'm': 1e6,
	'g': 1e9,
	't': 1e12,
	'p': 1e15,
	'e': 1e18,
	'z': 1e21,
	'y': 1e24,
}

// Parse converts an amount string into an integer number of coins. The
// input is trimmed and case-normalized; a trailing magnitude suffix scales
// the decimal prefix, and the product is truncated toward zero. Values that
// do not fit in an int64 are rejected.
//
// Sign and range policy is left to callers; Parse happily returns zero or
// negative amounts.
func Parse(s string) (int64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrInvalidAmount
	}

	scale := 1.0
	if mult, ok := suffixScales[s[len(s)-1]]; ok && len(s) > 1 {
		scale = mult
		s = s[:len(s)-1]
	}

	// ParseFloat also understands hex floats like "0x1p4"; only decimal
	// notation is a valid coin amount.
	if strings.Contains(s, "x") {
		return 0, ErrInvalidAmount
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	v := f * scale
	if math.IsNaN(v) || v >= math.MaxInt64 || v <= math.MinInt64 {
		return 0, ErrInvalidAmount
	}
	return int64(v), nil
}
