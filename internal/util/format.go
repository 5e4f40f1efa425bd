package util

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// RoundSeconds rounds a seconds value to 2 decimal places
func RoundSeconds(seconds float64) float64 {
	return math.Round(seconds*100) / 100
}

// FormatSeconds renders a seconds value with 2 decimal places for display
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(RoundSeconds(seconds), 'f', 2, 64)
}

// FormatNumber formats a count with K/M suffixes for compact display
func FormatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatDuration formats a duration as "Xh Ym" or "Ym"
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
