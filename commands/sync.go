package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-log-lens/internal/config"
	"github.com/penwyp/go-log-lens/internal/sync"
	"github.com/penwyp/go-log-lens/internal/util"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download log files from configured sources",
	Long: `Fetches the file listing of each configured source and downloads every
available log file into the source's local folder. A failed download of one
file does not stop the rest; results are reported per file.

With --source only the named source is synced.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	cfg, err := config.Load(expandPath(configPath))
	if err != nil {
		return err
	}

	sources := cfg.Sources
	if sourceName != "" {
		src := cfg.FindSource(sourceName)
		if src == nil {
			return fmt.Errorf("unknown source %q (configured: %s)", sourceName, sourceNames(cfg))
		}
		sources = []config.Source{*src}
	}
	for i := range sources {
		sources[i].FolderPath = expandPath(sources[i].FolderPath)
	}

	syncer := sync.NewSyncer()
	results := syncer.SyncAll(context.Background(), sources)

	for _, result := range results {
		printSourceResult(result)
	}

	return nil
}

func printSourceResult(result sync.SourceResult) {
	if result.ListError != nil {
		fmt.Printf("%s: listing failed: %v\n", result.Source, result.ListError)
		return
	}

	if len(result.Files) == 0 {
		fmt.Printf("%s: no log files available\n", result.Source)
		return
	}

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Printf("%s: failed %s: %v\n", result.Source, file.File, file.Error)
		} else {
			fmt.Printf("%s: downloaded %s\n", result.Source, file.File)
		}
	}
	fmt.Printf("%s: %d downloaded, %d failed\n", result.Source, result.Downloaded(), result.Failed())
}
