// Package property provides observable properties: a getter, setter and
// deleter that fire "before_change", "change", "before_delete" and "delete".
package property

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/delaneyj/eventsignal/signal"
)

// Accessors are the functions behind a property. Any of them may be nil.
type Accessors[T any] struct {
	Get    func() T
	Set    func(value T)
	Delete func()
}

// Property is an observable property.
type Property[T any] struct {
	*signal.Instance

	mu          sync.RWMutex
	acc         Accessors[T]
	checkChange bool
}

type options struct {
	checkChange bool
	instance    []signal.Option
}

type Option func(*options)

// WithoutChangeCheck makes Set fire and write even when the value is
// unchanged.
func WithoutChangeCheck() Option {
	return func(o *options) {
		o.checkChange = false
	}
}

func WithName(name string) Option {
	return func(o *options) {
		o.instance = append(o.instance, signal.WithName(name))
	}
}

func New[T any](acc Accessors[T], opts ...Option) *Property[T] {
	o := &options{checkChange: true}
	for _, opt := range opts {
		opt(o)
	}
	instOpts := append([]signal.Option{
		signal.WithChannels(signal.BeforeDelete, signal.Delete, signal.BeforeChange, signal.Change),
	}, o.instance...)
	return &Property[T]{
		Instance:    signal.New(instOpts...),
		acc:         acc,
		checkChange: o.checkChange,
	}
}

func (p *Property[T]) accessors() Accessors[T] {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.acc
}

// SetAccessors replaces the functions behind the property.
func (p *Property[T]) SetAccessors(acc Accessors[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acc = acc
}

func (p *Property[T]) Value() (T, error) {
	acc := p.accessors()
	if acc.Get == nil {
		var zero T
		return zero, signal.ErrRead
	}
	return acc.Get(), nil
}

// Set writes value. When change checking is on and the getter already
// returns an equal value nothing happens. Otherwise "before_change" fires
// with value, the setter runs, and "change" fires with the value read back
// through the getter, or value itself when there is no getter.
func (p *Property[T]) Set(value T) error {
	acc := p.accessors()
	if acc.Set == nil {
		return signal.ErrWrite
	}
	if p.checkChange && acc.Get != nil && reflect.DeepEqual(acc.Get(), value) {
		return nil
	}

	if err := p.Fire(signal.BeforeChange, value); err != nil {
		return err
	}
	acc.Set(value)

	current := value
	if acc.Get != nil {
		current = acc.Get()
	}
	return p.Fire(signal.Change, current)
}

func (p *Property[T]) Delete() error {
	acc := p.accessors()
	if acc.Delete == nil {
		return signal.ErrDelete
	}
	if err := p.Fire(signal.BeforeDelete); err != nil {
		return err
	}
	acc.Delete()
	return p.Fire(signal.Delete)
}

// Call sets the property from the first argument, so a property can sit on
// either side of a binding.
func (p *Property[T]) Call(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: property set needs a value", signal.ErrBadArguments)
	}
	var value T
	if args[0] != nil {
		v, ok := args[0].(T)
		if !ok {
			return nil, fmt.Errorf("%w: got %T, want %T", signal.ErrBadArguments, args[0], value)
		}
		value = v
	}
	return nil, p.Set(value)
}
