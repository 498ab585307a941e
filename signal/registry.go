package signal

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// While a channel is blocked its subscribers live in shadow and subs stays
// empty, so Fire finds nothing to call.
type channel struct {
	subs   []*Callback
	shadow []*Callback
}

// live returns the list that holds the real subscribers.
func (c *channel) live(blocked bool) *[]*Callback {
	if blocked {
		return &c.shadow
	}
	return &c.subs
}

// Registry maps channel names to ordered subscriber lists. The zero value is
// ready to use.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]*channel
	blocked  mapset.Set[string]
}

// NewRegistry returns a registry with the given channels already declared.
func NewRegistry(channels ...string) *Registry {
	r := &Registry{}
	r.Add(channels...)
	return r
}

func (r *Registry) init() {
	if r.channels == nil {
		r.channels = map[string]*channel{}
		r.blocked = mapset.NewThreadUnsafeSet[string]()
	}
}

// Add declares channels so they can be fired before anything subscribes.
// Existing channels are left alone.
func (r *Registry) Add(channels ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	for _, name := range channels {
		if _, ok := r.channels[name]; !ok {
			r.channels[name] = &channel{}
		}
	}
}

// Has reports whether the channel exists.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.channels[name]
	return ok
}

// Channels returns the declared channel names in sorted order.
func (r *Registry) Channels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Blocked reports whether the channel is currently blocked.
func (r *Registry) Blocked(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.blocked != nil && r.blocked.Contains(name)
}

// Get returns a copy of the subscribers of a channel. A blocked channel
// reports the subscribers that will come back when it is unblocked.
func (r *Registry) Get(name string) ([]*Callback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.channels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	return slices.Clone(*ch.live(r.blocked.Contains(name))), nil
}

// Connect appends cb to the channel, creating the channel if needed.
// Connecting a callback that is already present does nothing.
func (r *Registry) Connect(name string, cb *Callback) {
	if cb == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	ch, ok := r.channels[name]
	if !ok {
		ch = &channel{}
		r.channels[name] = ch
	}
	list := ch.live(r.blocked.Contains(name))
	if !slices.Contains(*list, cb) {
		*list = append(*list, cb)
	}
}

// Disconnect removes cb from the channel, or clears the channel when cb is
// nil. It reports whether there was anything to remove.
func (r *Registry) Disconnect(name string, cb *Callback) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[name]
	if !ok {
		return false
	}
	list := ch.live(r.blocked.Contains(name))
	if cb == nil {
		existed := len(*list) > 0
		*list = nil
		return existed
	}
	i := slices.Index(*list, cb)
	if i < 0 {
		return false
	}
	*list = slices.Delete(*list, i, i+1)
	return true
}

// Detach removes cb from the channel and returns the position it held, or -1
// when it was not there.
func (r *Registry) Detach(name string, cb *Callback) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[name]
	if !ok || cb == nil {
		return -1
	}
	list := ch.live(r.blocked.Contains(name))
	i := slices.Index(*list, cb)
	if i >= 0 {
		*list = slices.Delete(*list, i, i+1)
	}
	return i
}

// Insert puts cb at position i of the channel, clamped to the list, creating
// the channel if needed. A callback already present stays where it is.
func (r *Registry) Insert(name string, i int, cb *Callback) {
	if cb == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	ch, ok := r.channels[name]
	if !ok {
		ch = &channel{}
		r.channels[name] = ch
	}
	list := ch.live(r.blocked.Contains(name))
	if slices.Contains(*list, cb) {
		return
	}
	i = max(0, min(i, len(*list)))
	*list = slices.Insert(*list, i, cb)
}

// Fire calls every subscriber of the channel in order with args. The list is
// copied first, so subscribers may connect and disconnect while it runs.
// Every subscriber is called even if an earlier one fails; the errors are
// joined.
func (r *Registry) Fire(name string, args ...any) error {
	r.mu.RLock()
	ch, ok := r.channels[name]
	var subs []*Callback
	if ok {
		subs = slices.Clone(ch.subs)
	}
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}

	var errs []error
	for _, cb := range subs {
		if err := cb.Call(args...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Block pauses (block=true) or resumes (block=false) delivery on the named
// channels, or on every channel when none are named. Blocking a blocked
// channel or unblocking an unblocked one does nothing.
func (r *Registry) Block(block bool, names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	if len(names) == 0 {
		for name := range r.channels {
			names = append(names, name)
		}
	}
	for _, name := range names {
		ch, ok := r.channels[name]
		if !ok {
			continue
		}
		switch {
		case block && !r.blocked.Contains(name):
			ch.shadow, ch.subs = ch.subs, nil
			r.blocked.Add(name)
		case !block && r.blocked.Contains(name):
			ch.subs, ch.shadow = ch.shadow, nil
			r.blocked.Remove(name)
		}
	}
}

// CopyTo appends this registry's subscribers onto dst, channel by channel,
// skipping callbacks dst already has.
func (r *Registry) CopyTo(dst *Registry) {
	r.mu.RLock()
	snapshot := make(map[string][]*Callback, len(r.channels))
	for name, ch := range r.channels {
		snapshot[name] = slices.Clone(*ch.live(r.blocked.Contains(name)))
	}
	r.mu.RUnlock()

	for name, subs := range snapshot {
		dst.Add(name)
		for _, cb := range subs {
			dst.Connect(name, cb)
		}
	}
}
