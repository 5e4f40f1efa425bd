package formatter

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-log-lens/internal/core/model"
	"github.com/penwyp/go-log-lens/internal/util"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	maxMessageWidth = 60
	maxExtraWidth   = 40
)

// TableFormatter renders the session table as a bordered text table.
type TableFormatter struct {
	headers []string
}

// NewTableFormatter creates a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"Request ID", "Time", "File", "Function",
			"Severity", "Message", "Delta (s)", "Extra Info",
		},
	}
}

// Format renders the rows and the post-filter total. An empty view
// prints a "no logs" notice instead of an empty table.
func (f *TableFormatter) Format(data ViewData) error {
	if len(data.Rows) == 0 {
		fmt.Println("No logs found for the selected criteria.")
		return nil
	}

	cells := make([][]string, 0, len(data.Rows))
	for _, row := range data.Rows {
		cells = append(cells, f.rowCells(row))
	}

	widths := f.calculateColumnWidths(cells)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")
	for _, row := range cells {
		f.printRow(row, widths)
	}
	f.printBorder(widths, "bottom")

	fmt.Printf("Total Time (sec): %s\n", util.FormatSeconds(data.TotalSeconds))
	return nil
}

// rowCells flattens one session row into display cells. Multi-line
// messages are joined for the table view only; other formats keep the
// embedded newlines verbatim.
func (f *TableFormatter) rowCells(row model.SessionRow) []string {
	tp := util.GetTimeProvider()
	message := strings.ReplaceAll(row.Message, "\n", " ")

	return []string{
		row.RequestID,
		tp.Format(row.Timestamp, timestampLayout),
		row.SourceFile,
		row.FunctionName,
		string(row.Severity),
		util.TruncateString(message, maxMessageWidth),
		util.FormatSeconds(row.TimeDeltaSeconds),
		util.TruncateString(row.ExtraInfo.String(), maxExtraWidth),
	}
}

// calculateColumnWidths determines the width for each column based on content
func (f *TableFormatter) calculateColumnWidths(cells [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	for _, row := range cells {
		for i, value := range row {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	fmt.Print(left)
	for i, width := range widths {
		fmt.Print(strings.Repeat(separator, width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			fmt.Print(middle)
		}
	}
	fmt.Println(right)
}

// printRow prints a data row; the delta column is right-aligned, the
// rest left-aligned
func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Print("│")
	for i, value := range values {
		if i == 6 {
			fmt.Printf(" %s │", util.PadString(value, widths[i], false))
		} else {
			fmt.Printf(" %s │", util.PadString(value, widths[i], true))
		}
	}
	fmt.Println()
}
