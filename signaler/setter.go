package signaler

import (
	"sync"

	"github.com/delaneyj/eventsignal/signal"
)

// Func is the function a Setter wraps.
type Func func(args ...any) (any, error)

// Setter calls a function and fires "before_change" before it and "change"
// after it.
type Setter struct {
	*signal.Instance

	mu          sync.RWMutex
	fn          Func
	getter      func() any
	fireResults bool
}

type config struct {
	getter      func() any
	fireResults bool
	instance    []signal.Option
}

type Option func(*config)

// WithGetter makes "change" report the getter's value instead of the call
// arguments, so observers see what the setter actually stored.
func WithGetter(getter func() any) Option {
	return func(c *config) {
		c.getter = getter
	}
}

// WithFireResults makes "change" report the wrapped function's return value.
// A getter takes precedence.
func WithFireResults() Option {
	return func(c *config) {
		c.fireResults = true
	}
}

func WithName(name string) Option {
	return func(c *config) {
		c.instance = append(c.instance, signal.WithName(name))
	}
}

// New wraps fn. fn may be nil and attached later with SetFunc.
func New(fn Func, opts ...Option) *Setter {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	instOpts := append([]signal.Option{signal.WithChannels(signal.BeforeChange, signal.Change)}, cfg.instance...)
	return &Setter{
		Instance:    signal.New(instOpts...),
		fn:          fn,
		getter:      cfg.getter,
		fireResults: cfg.fireResults,
	}
}

// SetFunc attaches or replaces the wrapped function.
func (s *Setter) SetFunc(fn Func) *Setter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
	return s
}

func (s *Setter) SetGetter(getter func() any) *Setter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getter = getter
	return s
}

func (s *Setter) HasGetter() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getter != nil
}

// Call fires "before_change" with args, calls the wrapped function, fires
// "change" and returns the function's result. A failing fire stops the call;
// nothing already done is undone.
func (s *Setter) Call(args ...any) (any, error) {
	s.mu.RLock()
	fn, getter, fireResults := s.fn, s.getter, s.fireResults
	s.mu.RUnlock()
	if fn == nil {
		return nil, signal.ErrMissingFunction
	}

	if err := s.Fire(signal.BeforeChange, args...); err != nil {
		return nil, err
	}
	ret, err := fn(args...)
	if err != nil {
		return ret, err
	}

	switch {
	case getter != nil:
		err = s.Fire(signal.Change, getter())
	case fireResults:
		err = s.Fire(signal.Change, ret)
	default:
		err = s.Fire(signal.Change, args...)
	}
	return ret, err
}
