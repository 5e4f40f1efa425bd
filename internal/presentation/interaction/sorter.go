package interaction

import (
	"sort"

	"github.com/penwyp/go-log-lens/internal/core/model"
)

// SortField represents the field to sort session rows by
type SortField int

const (
	SortByTime SortField = iota
	SortByDelta
	SortByRequestID
)

// SortOrder represents the sort order
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// RowSorter handles sorting of session rows in the interactive view
type RowSorter struct {
	field SortField
	order SortOrder
}

// NewRowSorter creates a new row sorter
func NewRowSorter() *RowSorter {
	return &RowSorter{
		field: SortByTime,
		order: SortAscending,
	}
}

// Field returns the current sort field
func (s *RowSorter) Field() SortField {
	return s.field
}

// CycleField advances to the next sort field
func (s *RowSorter) CycleField() {
	s.field = (s.field + 1) % 3
}

// ToggleOrder flips between ascending and descending
func (s *RowSorter) ToggleOrder() {
	if s.order == SortAscending {
		s.order = SortDescending
	} else {
		s.order = SortAscending
	}
}

// Sort sorts the rows based on the current settings
func (s *RowSorter) Sort(rows []model.SessionRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		var less bool

		switch s.field {
		case SortByTime:
			less = rows[i].Timestamp.Before(rows[j].Timestamp)
		case SortByDelta:
			less = rows[i].TimeDeltaSeconds < rows[j].TimeDeltaSeconds
		case SortByRequestID:
			less = rows[i].RequestID < rows[j].RequestID
		}

		if s.order == SortDescending {
			return !less
		}
		return less
	})
}

// FieldName returns the display name of the current sort field
func (s *RowSorter) FieldName() string {
	switch s.field {
	case SortByTime:
		return "time"
	case SortByDelta:
		return "delta"
	case SortByRequestID:
		return "request"
	default:
		return "unknown"
	}
}
