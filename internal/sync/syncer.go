package sync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/penwyp/go-log-lens/internal/config"
	"github.com/penwyp/go-log-lens/internal/util"
)

// FileResult reports the outcome of downloading one file.
type FileResult struct {
	File  string
	Error error
}

// SourceResult reports the outcome of syncing one source. ListError is
// set when the listing itself failed, which is distinct from a
// successful listing that returned no files.
type SourceResult struct {
	Source    string
	ListError error
	Files     []FileResult
}

// Downloaded returns the number of files persisted successfully.
func (r SourceResult) Downloaded() int {
	n := 0
	for _, f := range r.Files {
		if f.Error == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of files that could not be downloaded.
func (r SourceResult) Failed() int {
	return len(r.Files) - r.Downloaded()
}

// Syncer downloads all available files for configured sources into
// their local folders.
type Syncer struct {
	client *Client
}

// NewSyncer creates a Syncer with a default client.
func NewSyncer() *Syncer {
	return &Syncer{client: NewClient()}
}

// SyncSource lists a source's available files and downloads each into
// the source's folder. A failed download of one file does not abort
// the rest of the batch; every outcome is reported per file.
func (s *Syncer) SyncSource(ctx context.Context, src config.Source) SourceResult {
	result := SourceResult{Source: src.Name}

	files, err := s.client.ListFiles(ctx, src.FileListURL, src.AuthKey)
	if err != nil {
		util.LogWarn(fmt.Sprintf("Listing failed for source %s: %v", src.Name, err))
		result.ListError = err
		return result
	}

	util.LogInfo(fmt.Sprintf("Source %s: %d files available", src.Name, len(files)))

	for _, filename := range files {
		err := s.downloadOne(ctx, src, filename)
		if err != nil {
			util.LogWarn(fmt.Sprintf("Download failed for %s/%s: %v", src.Name, filename, err))
		}
		result.Files = append(result.Files, FileResult{File: filename, Error: err})
	}

	return result
}

// SyncAll syncs every source sequentially. A source whose listing
// fails does not stop the remaining sources.
func (s *Syncer) SyncAll(ctx context.Context, sources []config.Source) []SourceResult {
	results := make([]SourceResult, 0, len(sources))
	for _, src := range sources {
		results = append(results, s.SyncSource(ctx, src))
	}
	return results
}

func (s *Syncer) downloadOne(ctx context.Context, src config.Source, filename string) error {
	data, err := s.client.DownloadFile(ctx, src.DownloadURL, filename, src.AuthKey)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(src.FolderPath, 0755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", src.FolderPath, err)
	}

	// Listings are untrusted input; strip any path component
	target := filepath.Join(src.FolderPath, filepath.Base(filename))
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	util.LogDebug(fmt.Sprintf("Downloaded %s to %s (%d bytes)", filename, target, len(data)))
	return nil
}
