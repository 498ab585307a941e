package signaler

import (
	"github.com/delaneyj/eventsignal/signal"
)

// Method is a setter declared once for a type and used on many values. Each
// owner gets its own Setter on first use, bound to it, with a copy of the
// hooks attached to the Method so far.
type Method[O signal.Owner] struct {
	signal.Template[O]

	fn          func(o O, args ...any) (any, error)
	getter      func(o O) any
	fireResults bool
}

func NewMethod[O signal.Owner](fn func(o O, args ...any) (any, error)) *Method[O] {
	return &Method[O]{fn: fn}
}

// WithGetter sets the getter used for "change". Call it while declaring the
// method, before any owner uses it.
func (m *Method[O]) WithGetter(getter func(o O) any) *Method[O] {
	m.getter = getter
	return m
}

func (m *Method[O]) WithFireResults() *Method[O] {
	m.fireResults = true
	return m
}

// For returns the Setter belonging to o.
func (m *Method[O]) For(o O) *Setter {
	return o.SignalCache().Load(m, func() any {
		return m.materialize(o)
	}).(*Setter)
}

// Call is shorthand for m.For(o).Call(args...).
func (m *Method[O]) Call(o O, args ...any) (any, error) {
	return m.For(o).Call(args...)
}

func (m *Method[O]) materialize(o O) *Setter {
	var opts []Option
	if m.getter != nil {
		getter := m.getter
		opts = append(opts, WithGetter(func() any { return getter(o) }))
	}
	if m.fireResults {
		opts = append(opts, WithFireResults())
	}

	var fn Func
	if m.fn != nil {
		wrapped := m.fn
		fn = func(args ...any) (any, error) {
			return wrapped(o, args...)
		}
	}
	s := New(fn, opts...)
	m.BindTo(o, s.Signals())
	return s
}
