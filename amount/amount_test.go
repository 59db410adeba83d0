package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PlainNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"10", 10},
		{"0", 0},
		{"1000000", 1000000},
		{"10.9", 10}, // truncated toward zero
		{"-50", -50},
		{"  42  ", 42},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Suffixes(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1k", 1000},
		{"1K", 1000},
		{"2.5m", 2500000},
		{"0.5k", 500},
		{"1g", 1000000000},
		{"3t", 3000000000000},
		{"1p", 1000000000000000},
		{"-2k", -2000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"k",     // suffix alone
		"m",     // suffix alone
		"1.2.3",
		"one",
		"1z",     // beyond int64 range
		"5y",     // beyond int64 range
		"0x1p4",  // hex float notation
		"0X1P4",
		"0x10",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}
