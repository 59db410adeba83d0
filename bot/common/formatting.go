package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatBalance formats a coin amount with thousand separators
func FormatBalance(balance int64) string {
	str := strconv.FormatInt(balance, 10)

	negative := strings.HasPrefix(str, "-")
	if negative {
		str = str[1:]
	}

	n := len(str)
	if n <= 3 {
		if negative {
			return "-" + str
		}
		return str
	}

	var result strings.Builder
	if negative {
		result.WriteRune('-')
	}
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatDuration formats a duration in a human-readable format
// Examples: "23h 59m 10s", "45m 2s", "10s"
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}

// FormatMultiplier renders a payout multiplier without trailing zeros
// Examples: "500x", "0.75x", "2.5x"
func FormatMultiplier(m float64) string {
	s := strconv.FormatFloat(m, 'f', -1, 64)
	return s + "x"
}
