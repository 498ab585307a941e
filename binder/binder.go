// Package binder keeps two signal sources in step. Binding subscribes each
// side's "change" channel to a relay that writes into the other side, and
// each relay detaches the opposite relay while it writes, so a change crosses
// the binding once in each direction and stops.
package binder

import (
	"fmt"

	"github.com/delaneyj/eventsignal/signal"
)

// Bind resolves name1 on obj1 and name2 on obj2 and binds them. An empty
// name2 means name1.
func Bind(obj1 any, name1 string, obj2 any, name2 string) error {
	if name2 == "" {
		name2 = name1
	}
	src1, err := ResolveSource(obj1, name1)
	if err != nil {
		return fmt.Errorf("bind %q: %w", name1, err)
	}
	src2, err := ResolveSource(obj2, name2)
	if err != nil {
		return fmt.Errorf("bind %q: %w", name2, err)
	}
	return BindSignals(src1, src2)
}

// Unbind removes the bindings installed on the resolved sources. obj2 may be
// nil to unbind only obj1's side.
func Unbind(obj1 any, name1 string, obj2 any, name2 string) error {
	src1, err := ResolveSource(obj1, name1)
	if err != nil {
		return fmt.Errorf("unbind %q: %w", name1, err)
	}
	if obj2 == nil {
		return UnbindSignals(src1, nil)
	}
	if name2 == "" {
		name2 = name1
	}
	src2, err := ResolveSource(obj2, name2)
	if err != nil {
		return fmt.Errorf("unbind %q: %w", name2, err)
	}
	return UnbindSignals(src1, src2)
}

// BindSignals binds two sources so a value written to either is written to
// the other. A source cannot be bound to itself, and a pair can be bound only
// once until both sides are unbound.
func BindSignals(a, b any) error {
	srcA, err := bindable(a)
	if err != nil {
		return err
	}
	srcB, err := bindable(b)
	if err != nil {
		return err
	}
	if srcA == srcB {
		return fmt.Errorf("%w: %T bound to itself", signal.ErrAlreadyBound, a)
	}
	if srcA.BoundTo(srcB) || srcB.BoundTo(srcA) {
		return fmt.Errorf("%w: %T and %T", signal.ErrAlreadyBound, a, b)
	}

	var toA, toB *signal.Callback
	toB = signal.ErrFunc(func(args ...any) error {
		return relay(srcB, toA, args)
	})
	toA = signal.ErrFunc(func(args ...any) error {
		return relay(srcA, toB, args)
	})

	srcA.On(signal.Change, toB)
	srcA.PushBinding(srcB, toB)
	srcB.On(signal.Change, toA)
	srcB.PushBinding(srcA, toA)
	return nil
}

// relay writes args into target with back detached from target's "change"
// channel for the duration of the write. back returns to the position it
// held, so target's subscribers keep their order.
func relay(target signal.Bindable, back *signal.Callback, args []any) error {
	i := target.Detach(signal.Change, back)
	_, err := target.Call(args...)
	if i >= 0 {
		target.Attach(signal.Change, i, back)
	}
	return err
}

// UnbindSignals removes every relay binding installed on a, and on b when b
// is not nil, newest first. Other subscribers stay connected.
func UnbindSignals(a, b any) error {
	srcA, err := bindable(a)
	if err != nil {
		return err
	}
	unbindAll(srcA)
	if b == nil {
		return nil
	}
	srcB, err := bindable(b)
	if err != nil {
		return err
	}
	unbindAll(srcB)
	return nil
}

func unbindAll(src signal.Bindable) {
	for {
		cb, ok := src.PopBinding()
		if !ok {
			return
		}
		src.Off(signal.Change, cb)
	}
}

func bindable(v any) (signal.Bindable, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil", signal.ErrNotASignalSource)
	}
	src, ok := v.(signal.Bindable)
	if !ok {
		return nil, fmt.Errorf("%w: %T cannot connect and disconnect callbacks", signal.ErrNotASignalSource, v)
	}
	return src, nil
}

// Relay returns a callback that writes its arguments into target. Connect it
// to a foreign notification source to feed that source's changes into a
// signal source.
func Relay(target signal.Source) *signal.Callback {
	return signal.ErrFunc(func(args ...any) error {
		_, err := target.Call(args...)
		return err
	})
}

// Set writes args through the source resolved for name on obj, so promoted
// members fire their signals.
func Set(obj any, name string, args ...any) (any, error) {
	src, err := ResolveSource(obj, name)
	if err != nil {
		return nil, err
	}
	return src.Call(args...)
}
