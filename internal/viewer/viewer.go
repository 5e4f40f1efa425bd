package viewer

import (
	"fmt"
	"time"

	"github.com/penwyp/go-log-lens/internal/config"
	"github.com/penwyp/go-log-lens/internal/core/model"
	"github.com/penwyp/go-log-lens/internal/data/parser"
	"github.com/penwyp/go-log-lens/internal/data/scanner"
	"github.com/penwyp/go-log-lens/internal/data/session"
	"github.com/penwyp/go-log-lens/internal/presentation/formatter"
	"github.com/penwyp/go-log-lens/internal/util"
)

// Config carries the settings of one view invocation.
type Config struct {
	Source       config.Source
	OutputFormat string
	Timezone     string
	From         string
	To           string
	RequestIDs   []string
	Severity     string
}

// Viewer runs the local pipeline for one source: scan folder, parse
// files, build the session table, filter, format. The table is rebuilt
// from disk on every run.
type Viewer struct {
	config  *Config
	scanner *scanner.FileScanner
	parser  *parser.Parser
}

// New creates a Viewer for the configured source.
func New(cfg *Config) *Viewer {
	return &Viewer{
		config:  cfg,
		scanner: scanner.NewFileScanner(cfg.Source.FolderPath),
		parser:  parser.NewParser(),
	}
}

// LoadTable scans the source folder, parses every log file, and builds
// the session table. Per-file parse failures are logged and skipped;
// they never abort the pipeline.
func (v *Viewer) LoadTable() (*session.Table, error) {
	files, err := v.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", v.config.Source.FolderPath, err)
	}

	var records []model.LogRecord
	droppedTotal := 0
	failedFiles := 0

	for _, result := range v.parser.ParseFiles(files) {
		if result.Error != nil {
			util.LogWarn(fmt.Sprintf("Skipping unreadable file %s: %v", result.File, result.Error))
			failedFiles++
			continue
		}
		records = append(records, result.Records...)
		droppedTotal += result.Dropped
	}

	util.LogInfo(fmt.Sprintf("Source %s: %d files, %d records, %d dropped blobs, %d unreadable files",
		v.config.Source.Name, len(files), len(records), droppedTotal, failedFiles))

	return session.Build(records), nil
}

// BuildFilter translates the configured flag values into a table
// filter. Range bounds are interpreted in the display timezone.
func (v *Viewer) BuildFilter() (session.Filter, error) {
	f := session.Filter{RequestIDs: v.config.RequestIDs}

	if v.config.Severity != "" {
		severity, ok := model.ParseSeverity(v.config.Severity)
		if !ok {
			return f, fmt.Errorf("invalid severity %q (expected INFO or ERROR)", v.config.Severity)
		}
		f.Severity = &severity
	}

	loc := util.GetTimeProvider().Location()

	if v.config.From != "" {
		from, _, err := parseBound(v.config.From, loc)
		if err != nil {
			return f, fmt.Errorf("invalid --from value: %w", err)
		}
		f.From = &from
	}

	if v.config.To != "" {
		to, dateOnly, err := parseBound(v.config.To, loc)
		if err != nil {
			return f, fmt.Errorf("invalid --to value: %w", err)
		}
		if dateOnly {
			// A bare date bound includes the whole day
			to = to.Add(24*time.Hour - time.Second)
		}
		f.To = &to
	}

	return f, nil
}

// Run executes the pipeline and renders the filtered table.
func (v *Viewer) Run() error {
	table, err := v.LoadTable()
	if err != nil {
		return err
	}

	filter, err := v.BuildFilter()
	if err != nil {
		return err
	}
	view := table.Filter(filter)

	out, err := formatter.NewFormatter(v.config.OutputFormat)
	if err != nil {
		return err
	}

	return out.Format(formatter.ViewData{
		Source:       v.config.Source.Name,
		Rows:         view.Rows(),
		TotalSeconds: view.TotalSeconds(),
	})
}

// parseBound parses a range bound as a timestamp or a bare date in the
// given location. The second return reports the bare-date case.
func parseBound(value string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", value, loc); err == nil {
		return t, false, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("expected 2006-01-02 or 2006-01-02 15:04:05, got %q", value)
	}
	return t, true, nil
}
