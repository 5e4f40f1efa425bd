package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBold   = "\033[1m"

	ClearScreen          = "\033[2J"    // Clear entire screen
	ClearLineFromCursor  = "\033[0K"    // Clear from cursor to end of line
	MoveCursorHome       = "\033[H"     // Move cursor to home position
	HideCursor           = "\033[?25l"  // Hide cursor
	ShowCursor           = "\033[?25h"  // Show cursor
	EnterAlternateScreen = "\033[?1049h"
	LeaveAlternateScreen = "\033[?1049l"
)

// GetDisplayWidth calculates the actual display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads a string to a specific display width
func PadString(s string, width int, leftAlign bool) string {
	actualWidth := GetDisplayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// TruncateString truncates a string to fit within the given display width,
// appending an ellipsis when content is cut
func TruncateString(s string, width int) string {
	if GetDisplayWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}
