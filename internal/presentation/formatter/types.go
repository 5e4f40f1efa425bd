package formatter

import (
	"fmt"

	"github.com/penwyp/go-log-lens/internal/core/model"
)

// ViewData is the rendered slice of one source's session table after
// filtering.
type ViewData struct {
	Source       string             `json:"source"`
	Rows         []model.SessionRow `json:"rows"`
	TotalSeconds float64            `json:"total_seconds"`
}

// Formatter renders a filtered session table to stdout.
type Formatter interface {
	Format(data ViewData) error
}

// NewFormatter returns the formatter for the requested output format.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "table", "":
		return NewTableFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (supported: table, json, csv, summary)", format)
	}
}
