// Package watch turns filesystem notifications into signals. A Watcher is a
// foreign notification source: it fires "change" with the path of a written
// or created file and "delete" with the path of a removed or renamed one.
// Connect binder.Relay to feed those paths into another signal source.
package watch

import (
	"context"
	"log/slog"

	"github.com/delaneyj/eventsignal/signal"
	"github.com/fsnotify/fsnotify"
)

type Watcher struct {
	*signal.Instance

	paths  []string
	logger *slog.Logger
	filter func(path string) bool
}

type Option func(*Watcher)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithFilter drops events for paths the filter rejects.
func WithFilter(filter func(path string) bool) Option {
	return func(w *Watcher) {
		w.filter = filter
	}
}

func New(paths []string, opts ...Option) *Watcher {
	w := &Watcher{
		Instance: signal.New(signal.WithChannels(signal.Change, signal.Delete)),
		paths:    paths,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching and returns once the watches are in place. Events
// are delivered from a background goroutine until ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	for _, path := range w.paths {
		if err := watcher.Add(path); err != nil {
			watcher.Close()
			return err
		}
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				w.dispatch(ctx, evt)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.logger.ErrorContext(ctx, "watch: watcher error", slog.Any("error", err))
			}
		}
	}()
	return nil
}

func (w *Watcher) dispatch(ctx context.Context, evt fsnotify.Event) {
	if w.filter != nil && !w.filter(evt.Name) {
		return
	}
	var channel string
	switch {
	case evt.Op&(fsnotify.Write|fsnotify.Create) != 0:
		channel = signal.Change
	case evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		channel = signal.Delete
	default:
		return
	}
	if err := w.Fire(channel, evt.Name); err != nil {
		w.logger.ErrorContext(ctx, "watch: subscriber failed",
			slog.String("path", evt.Name),
			slog.String("channel", channel),
			slog.Any("error", err),
		)
	}
}
