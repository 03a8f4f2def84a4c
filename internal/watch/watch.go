// Package watch re-runs wiki preparation whenever the source documentation
// tree changes, debouncing rapid bursts of filesystem events.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/wikibuilder/internal/logfields"
)

// Watcher monitors a source tree and invokes a trigger after changes settle.
type Watcher struct {
	sourceDir string
	debounce  time.Duration
	watcher   *fsnotify.Watcher
	trigger   func(context.Context)
}

// New creates a watcher over sourceDir. trigger runs once per settled burst
// of changes.
func New(sourceDir string, debounce time.Duration, trigger func(context.Context)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absPath, err := filepath.Abs(sourceDir)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve source path: %w", err)
	}

	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	return &Watcher{
		sourceDir: absPath,
		debounce:  debounce,
		watcher:   fsw,
		trigger:   trigger,
	}, nil
}

// Run blocks, dispatching trigger calls until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.addRecursive(w.sourceDir); err != nil {
		return err
	}

	slog.Info("Watching source tree", logfields.Source(w.sourceDir))

	// The timer starts disarmed; events arm it, expiry fires the trigger.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			// New directories join the watch so nested additions register.
			if event.Op&fsnotify.Create != 0 {
				if err := w.addRecursive(event.Name); err != nil {
					slog.Debug("Could not watch new path", logfields.Path(event.Name), logfields.Error(err))
				}
			}
			slog.Debug("Source change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", logfields.Error(err))

		case <-timer.C:
			w.trigger(ctx)
		}
	}
}

// addRecursive watches path and, when it is a directory, every directory
// below it. Non-directory paths are ignored without error.
func (w *Watcher) addRecursive(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// The entry may have vanished between the event and the walk.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return w.watcher.Add(p)
	})
}
