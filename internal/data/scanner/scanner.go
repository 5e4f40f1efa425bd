package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-log-lens/internal/util"
)

// FileScanner scans a source's local folder for log files
type FileScanner struct {
	baseDir string
}

// NewFileScanner creates a new FileScanner instance
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{
		baseDir: baseDir,
	}
}

// Scan walks the source folder and returns all .log file paths. A
// missing folder is an empty result, not an error: a source that was
// never synced simply has no logs yet.
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()
	var files []string
	totalCount := 0

	util.LogDebug(fmt.Sprintf("Start scanning directory: %s", s.baseDir))

	if _, err := os.Stat(s.baseDir); os.IsNotExist(err) {
		util.LogDebug(fmt.Sprintf("Directory does not exist: %s", s.baseDir))
		return nil, nil
	}

	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			util.LogDebug(fmt.Sprintf("Skip file (error): %s - %v", path, err))
			return nil
		}

		if info.IsDir() {
			return nil
		}

		totalCount++
		if strings.HasSuffix(strings.ToLower(path), ".log") {
			files = append(files, path)
		}

		return nil
	})

	util.LogDebug(fmt.Sprintf("File scan completed: duration %v, scanned %d files, found %d log files",
		time.Since(start), totalCount, len(files)))

	return files, err
}
