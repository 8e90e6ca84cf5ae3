package watcher

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches files for changes and triggers a debounced callback
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *log.Logger
	debounce time.Duration

	mu     sync.Mutex
	dirs   map[string]struct{}
	paths  map[string]struct{}
	timers map[string]*time.Timer

	// runMu keeps callbacks from overlapping
	runMu sync.Mutex
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, logger *log.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &FileWatcher{
		watcher:  watcher,
		logger:   logger,
		debounce: debounce,
		dirs:     make(map[string]struct{}),
		paths:    make(map[string]struct{}),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch starts watching the specified files.
// The parent directory is watched so a file replaced by rename keeps reporting changes.
func (fw *FileWatcher) Watch(files ...string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if _, err := os.Stat(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		dir := filepath.Dir(absPath)
		if _, watched := fw.dirs[dir]; !watched {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			fw.dirs[dir] = struct{}{}
		}

		fw.paths[absPath] = struct{}{}
	}

	return nil
}

// Run dispatches change events to callback until ctx is done
func (fw *FileWatcher) Run(ctx context.Context, callback func(path string)) error {
	defer fw.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}

			// A save by rename arrives as Create on the target path
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fw.handleFileChange(ctx, event.Name, callback)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Printf("watcher error: %v", err)
		}
	}
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(ctx context.Context, filePath string, callback func(string)) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, exists := fw.paths[filePath]; !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		fw.runMu.Lock()
		defer fw.runMu.Unlock()
		callback(filePath)
	})
}

func (fw *FileWatcher) stopTimers() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for path, timer := range fw.timers {
		timer.Stop()
		delete(fw.timers, path)
	}
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
