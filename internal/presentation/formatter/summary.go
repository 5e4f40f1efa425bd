package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/penwyp/go-log-lens/internal/core/model"
	"github.com/penwyp/go-log-lens/internal/util"
)

// SummaryFormatter outputs a per-request-id latency breakdown instead
// of the full row listing.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

type requestStats struct {
	events    int
	errors    int
	totalSecs float64
	first     string
	last      string
}

// Format aggregates the view per request id and prints a report.
func (f *SummaryFormatter) Format(data ViewData) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Log Summary Report: %s\n", data.Source)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	if len(data.Rows) == 0 {
		fmt.Println("No logs found for the selected criteria.")
		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		return nil
	}

	tp := util.GetTimeProvider()
	stats := make(map[string]*requestStats)
	for _, row := range data.Rows {
		stat, ok := stats[row.RequestID]
		if !ok {
			stat = &requestStats{first: tp.Format(row.Timestamp, timestampLayout)}
			stats[row.RequestID] = stat
		}
		stat.events++
		if row.Severity == model.SeverityError {
			stat.errors++
		}
		stat.totalSecs += row.TimeDeltaSeconds
		stat.last = tp.Format(row.Timestamp, timestampLayout)
	}

	var ids []string
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("Records: %d across %d request ids\n", len(data.Rows), len(ids))
	fmt.Println()

	fmt.Println("Request Breakdown:")
	fmt.Println(strings.Repeat("-", 60))
	for _, id := range ids {
		stat := stats[id]
		fmt.Printf("\n%s:\n", id)
		fmt.Printf("  Events:        %d\n", stat.events)
		fmt.Printf("  Errors:        %d\n", stat.errors)
		fmt.Printf("  First Event:   %s\n", stat.first)
		fmt.Printf("  Last Event:    %s\n", stat.last)
		fmt.Printf("  Elapsed (sec): %s\n", util.FormatSeconds(stat.totalSecs))
	}

	fmt.Println()
	fmt.Printf("Total Time (sec): %s\n", util.FormatSeconds(data.TotalSeconds))
	fmt.Println(strings.Repeat("=", 60))

	return nil
}
