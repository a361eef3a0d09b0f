package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	defaultDebounce     = 200 * time.Millisecond
	defaultPollInterval = time.Second
)

// RunFunc receives the outcome of each pipeline run.
type RunFunc func(report *Report, err error)

// WatchOption configures Watch.
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce     time.Duration
	pollInterval time.Duration
	polling      bool
}

// WithDebounce sets how long the input must stay quiet before a re-run.
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) { o.debounce = d }
}

// WithPollInterval sets the polling period used when fsnotify is not
// available.
func WithPollInterval(d time.Duration) WatchOption {
	return func(o *watchOptions) { o.pollInterval = d }
}

// WithPolling forces polling instead of fsnotify, e.g. on network
// filesystems that do not deliver change events.
func WithPolling() WatchOption {
	return func(o *watchOptions) { o.polling = true }
}

// Watch runs the pipeline once, then again every time the input file is
// written or re-created, until ctx is cancelled. fn is called after every
// run, from the goroutine that called Watch, so runs never overlap.
//
// The config and options are validated up front and a config error is
// returned immediately. Run failures go to fn and do not stop watching.
func Watch(ctx context.Context, cfg Config, fn RunFunc, opts ...WatchOption) error {
	o := watchOptions{
		debounce:     defaultDebounce,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.pollInterval <= 0 {
		return invalid("poll interval must be positive, got %s", o.pollInterval)
	}

	plans, err := cfg.Plan()
	if err != nil {
		return err
	}
	input := plans[0].Input
	run := func() {
		fn(execute(ctx, plans, cfg.KeepIntermediate))
	}

	if !o.polling {
		// Watch the directory (more reliable than watching the file directly,
		// editors often replace it).
		watcher, err := fsnotify.NewWatcher()
		if err == nil {
			defer watcher.Close()
			err = watcher.Add(filepath.Dir(input))
		}
		if err == nil {
			run()
			return watchEvents(ctx, watcher, input, o.debounce, run)
		}
		slog.Debug("fsnotify unavailable, polling input",
			slog.String("path", input),
			slog.Any("error", err))
	}

	last := statFile(input)
	run()
	return watchPolling(ctx, input, last, o.pollInterval, run)
}

// watchEvents re-runs after writes to input, debounced.
func watchEvents(ctx context.Context, watcher *fsnotify.Watcher, input string, debounce time.Duration, run func()) error {
	name := filepath.Base(input)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			slog.Debug("input changed, re-running pipeline", slog.String("path", input))
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watch error", slog.Any("error", err))
		}
	}
}

// watchPolling re-runs when the input's size or modification time changes.
func watchPolling(ctx context.Context, input string, last fileState, interval time.Duration, run func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			cur := statFile(input)
			if cur.equal(last) {
				continue
			}
			last = cur
			if cur.exists {
				slog.Debug("input changed, re-running pipeline", slog.String("path", input))
				run()
			}
		}
	}
}

type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

func statFile(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, size: info.Size(), modTime: info.ModTime()}
}

func (s fileState) equal(other fileState) bool {
	return s.exists == other.exists && s.size == other.size && s.modTime.Equal(other.modTime)
}
