package session

import (
	"sort"
	"time"

	"github.com/penwyp/go-log-lens/internal/core/model"
	"github.com/penwyp/go-log-lens/internal/util"
)

// Table is the per-query session table: all records of one source,
// ordered by timestamp, annotated with per-request-id time deltas.
// Tables are rebuilt from scratch on every query and never mutated;
// filtering produces a new view over copied rows.
type Table struct {
	rows []model.SessionRow
}

// Build assembles a table from the flat record collection of one
// source. Records are sorted ascending by timestamp; each record's
// delta is the gap in seconds to the previous record with the same
// request id, 0 for the first record of a request id.
func Build(records []model.LogRecord) *Table {
	sorted := make([]model.LogRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	rows := make([]model.SessionRow, 0, len(sorted))
	lastSeen := make(map[string]time.Time)

	for _, record := range sorted {
		delta := 0.0
		if prev, ok := lastSeen[record.RequestID]; ok {
			delta = util.RoundSeconds(record.Timestamp.Sub(prev).Seconds())
		}
		lastSeen[record.RequestID] = record.Timestamp
		rows = append(rows, model.SessionRow{
			LogRecord:        record,
			TimeDeltaSeconds: delta,
		})
	}

	return &Table{rows: rows}
}

// Rows returns the table rows in timestamp order.
func (t *Table) Rows() []model.SessionRow {
	return t.rows
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// IsEmpty reports whether the table has no rows. An empty table is a
// user-visible "nothing found" state, not an error.
func (t *Table) IsEmpty() bool {
	return len(t.rows) == 0
}

// TotalSeconds sums the time deltas of all rows, rounded to 2 decimal
// places. Called on a filtered view it yields the post-filter total.
func (t *Table) TotalSeconds() float64 {
	total := 0.0
	for _, row := range t.rows {
		total += row.TimeDeltaSeconds
	}
	return util.RoundSeconds(total)
}

// RequestIDs returns the distinct request ids in first-appearance
// (timestamp) order.
func (t *Table) RequestIDs() []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, row := range t.rows {
		if !seen[row.RequestID] {
			seen[row.RequestID] = true
			ids = append(ids, row.RequestID)
		}
	}
	return ids
}

// RequestTotals returns the summed deltas per request id, each rounded
// to 2 decimal places.
func (t *Table) RequestTotals() map[string]float64 {
	totals := make(map[string]float64)
	for _, row := range t.rows {
		totals[row.RequestID] += row.TimeDeltaSeconds
	}
	for id, total := range totals {
		totals[id] = util.RoundSeconds(total)
	}
	return totals
}
