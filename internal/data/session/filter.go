package session

import (
	"time"

	"github.com/penwyp/go-log-lens/internal/core/model"
)

// Filter selects a subset of a session table. Zero-value fields do not
// constrain; set fields compose with AND semantics. Range bounds are
// inclusive instants, normally constructed in the display timezone by
// the caller; the underlying record timestamps stay in UTC.
type Filter struct {
	From       *time.Time
	To         *time.Time
	RequestIDs []string
	Severity   *model.Severity
}

// Filter returns a view of the table containing only matching rows.
// Rows keep the deltas computed at build time; nothing is mutated.
func (t *Table) Filter(f Filter) *Table {
	idSet := make(map[string]bool, len(f.RequestIDs))
	for _, id := range f.RequestIDs {
		idSet[id] = true
	}

	rows := make([]model.SessionRow, 0, len(t.rows))
	for _, row := range t.rows {
		if f.From != nil && row.Timestamp.Before(*f.From) {
			continue
		}
		if f.To != nil && row.Timestamp.After(*f.To) {
			continue
		}
		if len(idSet) > 0 && !idSet[row.RequestID] {
			continue
		}
		if f.Severity != nil && row.Severity != *f.Severity {
			continue
		}
		rows = append(rows, row)
	}

	return &Table{rows: rows}
}
