package signal

import (
	"slices"
	"sync"
)

// Hook is a class-level subscriber. It receives the owning instance in
// addition to the channel payload.
type Hook[O any] struct {
	fn func(o O, args ...any) error
}

// Template collects class-level hooks per channel. Each owner gets its own
// copy of the hooks, bound to it, when its source is first materialized.
type Template[O any] struct {
	mu       sync.RWMutex
	channels []string
	hooks    map[string][]*Hook[O]
}

// On attaches a class-level hook to channel.
func (t *Template[O]) On(channel string, fn func(o O, args ...any)) *Hook[O] {
	return t.OnErr(channel, func(o O, args ...any) error {
		fn(o, args...)
		return nil
	})
}

func (t *Template[O]) OnErr(channel string, fn func(o O, args ...any) error) *Hook[O] {
	h := &Hook[O]{fn: fn}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.hooks == nil {
		t.hooks = map[string][]*Hook[O]{}
	}
	if _, ok := t.hooks[channel]; !ok {
		t.channels = append(t.channels, channel)
	}
	t.hooks[channel] = append(t.hooks[channel], h)
	return h
}

// Off removes a class-level hook, or every hook on channel when h is nil.
// Owners that were already materialized keep their copies.
func (t *Template[O]) Off(channel string, h *Hook[O]) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	hooks := t.hooks[channel]
	if h == nil {
		delete(t.hooks, channel)
		return len(hooks) > 0
	}
	i := slices.Index(hooks, h)
	if i < 0 {
		return false
	}
	t.hooks[channel] = slices.Delete(slices.Clone(hooks), i, i+1)
	return true
}

// Hooks returns the number of hooks attached to channel.
func (t *Template[O]) Hooks(channel string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.hooks[channel])
}

// BindTo connects a copy of every hook, bound to o, onto dst.
func (t *Template[O]) BindTo(o O, dst *Registry) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, channel := range t.channels {
		dst.Add(channel)
		for _, h := range t.hooks[channel] {
			fn := h.fn
			dst.Connect(channel, ErrFunc(func(args ...any) error {
				return fn(o, args...)
			}))
		}
	}
}
