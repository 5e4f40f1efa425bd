package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-log-lens/internal/util"
)

// FileEvent represents a file system event in a watched source folder
type FileEvent struct {
	Path      string
	Operation string
}

// FolderWatcher emits an event whenever a log file in a source folder
// changes, so the interactive view can rebuild its table from disk.
type FolderWatcher struct {
	watcher *fsnotify.Watcher
	events  chan FileEvent
}

// NewFolderWatcher watches the given folder for log file changes
func NewFolderWatcher(folder string) (*FolderWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(folder); err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FolderWatcher{
		watcher: watcher,
		events:  make(chan FileEvent, 100),
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FolderWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				close(fw.events)
				return
			}

			// Only log files trigger a refresh
			if filepath.Ext(event.Name) == ".log" {
				select {
				case fw.events <- FileEvent{Path: event.Name, Operation: event.Op.String()}:
				default:
					// Drop the event if the consumer is behind; the
					// next refresh rereads everything anyway
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				close(fw.events)
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

// Events returns the file event channel
func (fw *FolderWatcher) Events() <-chan FileEvent {
	return fw.events
}

// Close stops watching
func (fw *FolderWatcher) Close() error {
	return fw.watcher.Close()
}
