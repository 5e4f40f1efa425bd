package display

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/penwyp/go-log-lens/internal/core/model"
	"github.com/penwyp/go-log-lens/internal/util"
)

// Frame is one rendering of the interactive view.
type Frame struct {
	Source       string
	Rows         []model.SessionRow
	TotalSeconds float64
	SortLabel    string
	ErrorsOnly   bool
	LastRefresh  time.Time
	Notice       string
}

// TerminalDisplay renders frames into the alternate screen buffer.
type TerminalDisplay struct {
	inAlternateScreen bool
}

// NewTerminalDisplay creates a new TerminalDisplay.
func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{}
}

// EnterAlternateScreen switches to the alternate screen buffer
func (d *TerminalDisplay) EnterAlternateScreen() {
	if !d.inAlternateScreen {
		fmt.Print(util.EnterAlternateScreen + util.HideCursor)
		d.inAlternateScreen = true
	}
}

// LeaveAlternateScreen restores the normal screen buffer
func (d *TerminalDisplay) LeaveAlternateScreen() {
	if d.inAlternateScreen {
		fmt.Print(util.ShowCursor + util.LeaveAlternateScreen)
		d.inAlternateScreen = false
	}
}

// Render draws a full frame.
func (d *TerminalDisplay) Render(frame Frame) {
	width, height := terminalSize()
	tp := util.GetTimeProvider()

	fmt.Print(util.ClearScreen + util.MoveCursorHome)

	// Header
	title := fmt.Sprintf("%sgo-log-lens%s — source: %s", util.ColorBold, util.ColorReset, frame.Source)
	status := fmt.Sprintf("sort: %s | errors only: %v | refreshed: %s",
		frame.SortLabel, frame.ErrorsOnly, tp.Format(frame.LastRefresh, "15:04:05"))
	fmt.Println(title)
	fmt.Println(status)
	if frame.Notice != "" {
		fmt.Println(util.ColorYellow + frame.Notice + util.ColorReset)
	} else {
		fmt.Println()
	}
	fmt.Println(strings.Repeat("─", width))

	// Column header
	fmt.Println(d.renderLine(
		"REQUEST ID", "TIME", "SEV", "DELTA(S)", "MESSAGE", width, false))
	fmt.Println(strings.Repeat("─", width))

	// Rows, clipped to terminal height (header 6 lines, footer 2)
	maxRows := height - 8
	if maxRows < 1 {
		maxRows = 1
	}
	rows := frame.Rows
	clipped := 0
	if len(rows) > maxRows {
		clipped = len(rows) - maxRows
		rows = rows[:maxRows]
	}

	if len(rows) == 0 {
		fmt.Println("No logs found for the selected criteria.")
	}
	for _, row := range rows {
		message := strings.ReplaceAll(row.Message, "\n", " ")
		line := d.renderLine(
			row.RequestID,
			tp.Format(row.Timestamp, "01-02 15:04:05"),
			string(row.Severity),
			util.FormatSeconds(row.TimeDeltaSeconds),
			message,
			width,
			row.Severity == model.SeverityError,
		)
		fmt.Println(line)
	}
	if clipped > 0 {
		fmt.Printf("… %d more rows\n", clipped)
	}

	// Footer
	fmt.Println(strings.Repeat("─", width))
	fmt.Printf("Total Time (sec): %s | rows: %d | keys: [q]uit [s]ort [o]rder [e]rrors [r]efresh\n",
		util.FormatSeconds(frame.TotalSeconds), len(frame.Rows))
}

// renderLine lays out one row within the terminal width. The message
// column absorbs whatever width remains.
func (d *TerminalDisplay) renderLine(requestID, timeStr, severity, delta, message string, width int, highlight bool) string {
	idCol := util.PadString(util.TruncateString(requestID, 20), 20, true)
	timeCol := util.PadString(timeStr, 14, true)
	sevCol := util.PadString(severity, 5, true)
	deltaCol := util.PadString(delta, 9, false)

	used := 20 + 14 + 5 + 9 + 8 // column gaps
	msgWidth := width - used
	if msgWidth < 10 {
		msgWidth = 10
	}
	msgCol := util.TruncateString(message, msgWidth)

	line := fmt.Sprintf("%s  %s  %s  %s  %s", idCol, timeCol, sevCol, deltaCol, msgCol)
	if highlight {
		return util.ColorRed + line + util.ColorReset
	}
	return line
}

func terminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return 100, 30
	}
	return width, height
}
