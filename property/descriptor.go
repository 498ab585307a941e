package property

import "github.com/delaneyj/eventsignal/signal"

// Descriptor declares a property once for a type. Each owner gets its own
// Property on first use, bound to it, with a copy of the hooks attached to
// the Descriptor so far.
type Descriptor[O signal.Owner, T any] struct {
	signal.Template[O]

	get  func(o O) T
	set  func(o O, value T)
	del  func(o O)
	opts []Option
}

func Declare[O signal.Owner, T any](get func(o O) T, opts ...Option) *Descriptor[O, T] {
	return &Descriptor[O, T]{get: get, opts: opts}
}

func (d *Descriptor[O, T]) Setter(set func(o O, value T)) *Descriptor[O, T] {
	d.set = set
	return d
}

func (d *Descriptor[O, T]) Deleter(del func(o O)) *Descriptor[O, T] {
	d.del = del
	return d
}

// For returns the Property belonging to o.
func (d *Descriptor[O, T]) For(o O) *Property[T] {
	return o.SignalCache().Load(d, func() any {
		return d.materialize(o)
	}).(*Property[T])
}

func (d *Descriptor[O, T]) Get(o O) (T, error) {
	return d.For(o).Value()
}

func (d *Descriptor[O, T]) Set(o O, value T) error {
	return d.For(o).Set(value)
}

func (d *Descriptor[O, T]) Delete(o O) error {
	return d.For(o).Delete()
}

func (d *Descriptor[O, T]) materialize(o O) *Property[T] {
	var acc Accessors[T]
	if d.get != nil {
		get := d.get
		acc.Get = func() T { return get(o) }
	}
	if d.set != nil {
		set := d.set
		acc.Set = func(value T) { set(o, value) }
	}
	if d.del != nil {
		del := d.del
		acc.Delete = func() { del(o) }
	}
	p := New(acc, d.opts...)
	d.BindTo(o, p.Signals())
	return p
}
