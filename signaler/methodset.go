package signaler

import (
	"fmt"
	"sort"
	"sync"

	"github.com/delaneyj/eventsignal/signal"
)

// MethodSet turns the methods an author picks into Setters, so callers can
// observe each call to them. Nothing is wrapped implicitly. A MethodSet is a
// signal.Object, which lets binding resolve names against it.
type MethodSet struct {
	mu      sync.RWMutex
	members signal.Members
}

func NewMethodSet() *MethodSet {
	return &MethodSet{members: signal.Members{}}
}

// Wrap registers fn under name and returns its Setter.
func (m *MethodSet) Wrap(name string, fn Func, opts ...Option) *Setter {
	s := New(fn, append([]Option{WithName(name)}, opts...)...)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[name] = s
	return s
}

// Getter registers a getter that binding can find next to a setter.
func (m *MethodSet) Getter(name string, fn func() any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[name] = fn
}

// Setter returns the Setter registered under name.
func (m *MethodSet) Setter(name string) (*Setter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.members[name].(*Setter)
	return s, ok
}

// Call calls the Setter registered under name.
func (m *MethodSet) Call(name string, args ...any) (any, error) {
	s, ok := m.Setter(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", signal.ErrMissingMember, name)
	}
	return s.Call(args...)
}

// Names lists the wrapped methods.
func (m *MethodSet) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var names []string
	for name, v := range m.members {
		if _, ok := v.(*Setter); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (m *MethodSet) Members() signal.Members {
	return m.members
}
