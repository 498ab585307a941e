// Package relay replays signal fires by name. A producer enqueues
// (name, channel, args) events; a consumer running next to the sources looks
// the name up in a Directory and fires the channel there. How events cross
// a process boundary is left to the caller.
package relay

import (
	"context"
	"errors"
	"log/slog"
)

const defaultBuffer = 256

// Event is one fire to replay.
type Event struct {
	Name    string
	Channel string
	Args    []any
}

// Relay queues events and replays them against a Directory.
type Relay struct {
	dir    *Directory
	events chan Event
	logger *slog.Logger
}

type Option func(*Relay)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Relay) {
		r.logger = logger
	}
}

// WithBuffer sets the queue capacity.
func WithBuffer(n int) Option {
	return func(r *Relay) {
		if n > 0 {
			r.events = make(chan Event, n)
		}
	}
}

func New(dir *Directory, opts ...Option) *Relay {
	r := &Relay{
		dir:    dir,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.events == nil {
		r.events = make(chan Event, defaultBuffer)
	}
	return r
}

func (r *Relay) Directory() *Directory {
	return r.dir
}

// Fire enqueues a fire of channel on the source registered as name. It blocks
// while the queue is full, until ctx is done.
func (r *Relay) Fire(ctx context.Context, name, channel string, args ...any) error {
	return r.Enqueue(ctx, Event{Name: name, Channel: channel, Args: args})
}

func (r *Relay) Enqueue(ctx context.Context, ev Event) error {
	select {
	case r.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run replays queued events until ctx is done. Events for unknown names, and
// events without a channel, are dropped.
func (r *Relay) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case ev := <-r.events:
			r.replay(ctx, ev)
		}
	}
}

func (r *Relay) replay(ctx context.Context, ev Event) {
	if ev.Name == "" || ev.Channel == "" {
		return
	}
	target, ok := r.dir.Lookup(ev.Name)
	if !ok {
		r.logger.WarnContext(ctx, "relay: unknown signal source", slog.String("name", ev.Name), slog.String("channel", ev.Channel))
		return
	}
	if err := target.Fire(ev.Channel, ev.Args...); err != nil {
		r.logger.ErrorContext(ctx, "relay: fire failed",
			slog.String("name", ev.Name),
			slog.String("channel", ev.Channel),
			slog.Any("error", err),
		)
	}
}

// Forwarder stands in for a named source on the producing side: its Fire
// enqueues instead of calling subscribers.
type Forwarder struct {
	relay *Relay
	name  string
}

func (r *Relay) Forwarder(name string) *Forwarder {
	return &Forwarder{relay: r, name: name}
}

func (f *Forwarder) Name() string {
	return f.name
}

func (f *Forwarder) Fire(ctx context.Context, channel string, args ...any) error {
	return f.relay.Fire(ctx, f.name, channel, args...)
}
