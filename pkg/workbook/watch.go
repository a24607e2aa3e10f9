package workbook

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the watched workbook changed on disk.
type Event struct {
	Path string
	At   time.Time
}

const debounceWindow = 50 * time.Millisecond

// Watch emits an Event each time the workbook at path is rewritten.
// Editors often replace files rather than write in place, so the watch
// is set on the containing directory and filtered down to path. Bursts
// of write events within the debounce window collapse into one Event.
//
// The returned channel is closed when ctx is cancelled.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan Event, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve workbook path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	events := make(chan Event, 1)
	go func() {
		defer close(events)
		defer watcher.Close()

		var timer *time.Timer
		var pending <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				name, err := filepath.Abs(ev.Name)
				if err != nil || name != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				logger.Debug("workbook event", "op", ev.Op.String(), "path", ev.Name)
				if timer == nil {
					timer = time.NewTimer(debounceWindow)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounceWindow)
				}
				pending = timer.C
			case <-pending:
				pending = nil
				select {
				case events <- Event{Path: abs, At: time.Now()}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("watch error", "error", err)
			}
		}
	}()

	return events, nil
}
