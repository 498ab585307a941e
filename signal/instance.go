package signal

import (
	"sync"

	"github.com/google/uuid"
)

// Source is anything binding can work with: it carries channels and can be
// called as a setter.
type Source interface {
	On(channel string, cb *Callback) *Callback
	Off(channel string, cb *Callback) bool
	Fire(channel string, args ...any) error
	Block(block bool, channels ...string)
	Call(args ...any) (any, error)
}

// Bindable sources remember the relays binding installed on them, and the
// partner each relay writes into, so they can be removed without touching
// other subscribers. Detach and Attach move a subscriber out of a channel and
// back into the same position.
type Bindable interface {
	Source
	PushBinding(partner any, cb *Callback)
	PopBinding() (*Callback, bool)
	BoundTo(partner any) bool
	Detach(channel string, cb *Callback) int
	Attach(channel string, i int, cb *Callback)
}

type binding struct {
	partner any
	cb      *Callback
}

// Instance is a named signal source. On its own it works as a broadcast
// channel; setters and properties embed it.
type Instance struct {
	name    string
	signals Registry

	mu       sync.Mutex
	bindings []binding
}

type Option func(*Instance)

// WithName sets the instance name used by relay directories.
func WithName(name string) Option {
	return func(s *Instance) {
		s.name = name
	}
}

// WithChannels declares channels up front so they can be fired before anyone
// subscribes.
func WithChannels(channels ...string) Option {
	return func(s *Instance) {
		s.signals.Add(channels...)
	}
}

func New(opts ...Option) *Instance {
	s := &Instance{}
	for _, opt := range opts {
		opt(s)
	}
	if s.name == "" {
		s.name = uuid.NewString()
	}
	return s
}

// Name is stable for the lifetime of the instance.
func (s *Instance) Name() string {
	return s.name
}

func (s *Instance) Signals() *Registry {
	return &s.signals
}

func (s *Instance) Get(channel string) ([]*Callback, error) {
	return s.signals.Get(channel)
}

// On connects cb to channel and returns it.
func (s *Instance) On(channel string, cb *Callback) *Callback {
	s.signals.Connect(channel, cb)
	return cb
}

// OnFunc wraps fn and connects it. Keep the result to disconnect later.
func (s *Instance) OnFunc(channel string, fn func(args ...any)) *Callback {
	return s.On(channel, Func(fn))
}

// Connector returns a function that connects its argument to channel, so a
// handler can be attached at its declaration:
//
//	onChange := src.Connector(signal.Change)
//	logger := onChange(signal.Func(func(args ...any) { ... }))
func (s *Instance) Connector(channel string) func(cb *Callback) *Callback {
	return func(cb *Callback) *Callback {
		return s.On(channel, cb)
	}
}

// Off disconnects cb, or every subscriber of channel when cb is nil.
func (s *Instance) Off(channel string, cb *Callback) bool {
	return s.signals.Disconnect(channel, cb)
}

func (s *Instance) Fire(channel string, args ...any) error {
	return s.signals.Fire(channel, args...)
}

func (s *Instance) Block(block bool, channels ...string) {
	s.signals.Block(block, channels...)
}

// Detach disconnects cb from channel and returns the position it held, or -1
// when it was not connected.
func (s *Instance) Detach(channel string, cb *Callback) int {
	return s.signals.Detach(channel, cb)
}

// Attach connects cb to channel at position i.
func (s *Instance) Attach(channel string, i int, cb *Callback) {
	s.signals.Insert(channel, i, cb)
}

// PushBinding records a relay installed on s that writes into partner.
func (s *Instance) PushBinding(partner any, cb *Callback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = append(s.bindings, binding{partner: partner, cb: cb})
}

// PopBinding removes the newest relay record.
func (s *Instance) PopBinding() (*Callback, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.bindings)
	if n == 0 {
		return nil, false
	}
	b := s.bindings[n-1]
	s.bindings = s.bindings[:n-1]
	return b.cb, true
}

// BoundTo reports whether s holds a relay writing into partner.
func (s *Instance) BoundTo(partner any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bindings {
		if b.partner == partner {
			return true
		}
	}
	return false
}
