package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-log-lens/internal/config"
	"github.com/penwyp/go-log-lens/internal/util"
	"github.com/penwyp/go-log-lens/internal/viewer"
)

var (
	// Logging related
	debug bool

	// Source configuration
	configPath string
	sourceName string

	// Output related
	outputFormat string
	timezone     string

	// Filtering
	fromDate   string
	toDate     string
	requestIDs []string
	severity   string

	rootCmd = &cobra.Command{
		Use:   "go-log-lens [flags]",
		Short: "Request log viewing tool",
		Long: `go-log-lens is a command-line tool for inspecting structured request logs.

It reads .log files from a source's local folder (see the sync command for
fetching them), parses them into records, and displays a session table with
per-request-id latency deltas.

Examples:
  go-log-lens                                          # View the first configured source
  go-log-lens --source api --output json               # View a named source as JSON
  go-log-lens --from 2024-01-01 --to 2024-01-07        # Filter by date range
  go-log-lens --request-id abc --request-id def        # Filter by request ids
  go-log-lens --severity ERROR --timezone Asia/Tokyo   # Errors only, display timezone`,
		RunE: runView,
	}
)

const (
	defaultLogFile    = "~/.go-log-lens/logs/app.log"
	defaultConfigPath = "~/.go-log-lens/sources.yaml"
)

func init() {
	// Source configuration
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath,
		"Path to the sources configuration file")
	rootCmd.PersistentFlags().StringVar(&sourceName, "source", "",
		"Source name to operate on (default: first configured source)")

	// Filtering
	rootCmd.Flags().StringVar(&fromDate, "from", "",
		"Start of the time range (2006-01-02 or \"2006-01-02 15:04:05\", inclusive)")
	rootCmd.Flags().StringVar(&toDate, "to", "",
		"End of the time range (2006-01-02 or \"2006-01-02 15:04:05\", inclusive)")
	rootCmd.Flags().StringSliceVar(&requestIDs, "request-id", nil,
		"Request id to include (repeatable)")
	rootCmd.Flags().StringVar(&severity, "severity", "",
		"Severity filter (INFO or ERROR)")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "UTC",
		"Display timezone (e.g., UTC, Asia/Shanghai, Local)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runView(cmd *cobra.Command, args []string) error {
	src, err := bootstrap()
	if err != nil {
		return err
	}

	v := viewer.New(&viewer.Config{
		Source:       *src,
		OutputFormat: outputFormat,
		Timezone:     timezone,
		From:         fromDate,
		To:           toDate,
		RequestIDs:   requestIDs,
		Severity:     strings.ToUpper(severity),
	})
	return v.Run()
}

// bootstrap initializes logging and the time provider, loads the
// sources config, and resolves the selected source.
func bootstrap() (*config.Source, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	if err := util.InitializeTimeProvider(timezone); err != nil {
		return nil, err
	}

	cfg, err := config.Load(expandPath(configPath))
	if err != nil {
		return nil, err
	}

	return resolveSource(cfg)
}

// resolveSource picks the named source, or the first one when no name
// was given.
func resolveSource(cfg *config.Config) (*config.Source, error) {
	if sourceName == "" {
		src := &cfg.Sources[0]
		src.FolderPath = expandPath(src.FolderPath)
		return src, nil
	}

	src := cfg.FindSource(sourceName)
	if src == nil {
		return nil, fmt.Errorf("unknown source %q (configured: %s)", sourceName, sourceNames(cfg))
	}
	src.FolderPath = expandPath(src.FolderPath)
	return src, nil
}

func sourceNames(cfg *config.Config) string {
	names := make([]string, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
