package binder

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/delaneyj/eventsignal/property"
	"github.com/delaneyj/eventsignal/signal"
	"github.com/delaneyj/eventsignal/signaler"
)

var (
	// GetterPrefixes are tried in order when looking for a getter to pair
	// with a promoted setter.
	GetterPrefixes = []string{"get_", "get", "is_", "is", "has_", "has"}
	SetterPrefixes = []string{"set_", "set"}
)

// ResolveSource returns obj itself when it is already a signal source.
// Otherwise name is resolved against obj's member table; see Resolve.
func ResolveSource(obj any, name string) (signal.Source, error) {
	if src, ok := obj.(signal.Source); ok {
		return src, nil
	}
	o, ok := obj.(signal.Object)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no member %q", signal.ErrMissingMember, obj, name)
	}
	return Resolve(o.Members(), name)
}

// Resolve finds the signal source for name in members. A property found
// under name wins; a plain Accessor is promoted to an observable property.
// Otherwise the first of "set_"+name, "set"+name, "set"+Name and name that
// exists must be a setter; a plain function is promoted to a Setter, paired
// with the first getter found under GetterPrefixes. Promoted sources replace
// the original member, so resolving the same name again returns the same
// source.
func Resolve(members signal.Members, name string) (signal.Source, error) {
	switch m := members[name].(type) {
	case signal.Source:
		return m, nil
	case signal.Accessor:
		p := promoteAccessor(m)
		members[name] = p
		return p, nil
	case *signal.Accessor:
		if m == nil {
			return nil, fmt.Errorf("%w: %q is a nil accessor", signal.ErrMissingMember, name)
		}
		p := promoteAccessor(*m)
		members[name] = p
		return p, nil
	}

	for _, setterName := range setterNames(name) {
		m, ok := members[setterName]
		if !ok {
			continue
		}
		if src, ok := m.(signal.Source); ok {
			return src, nil
		}
		fn, ok := asFunc(m)
		if !ok {
			return nil, fmt.Errorf("%w: %q is %T, not a property or setter", signal.ErrMissingMember, setterName, m)
		}
		var opts []signaler.Option
		if getter, ok := findGetter(members, name); ok {
			opts = append(opts, signaler.WithGetter(getter))
		}
		s := signaler.New(fn, append(opts, signaler.WithName(setterName))...)
		members[setterName] = s
		return s, nil
	}
	return nil, fmt.Errorf("%w: no property, setter or signal source for %q", signal.ErrMissingMember, name)
}

func promoteAccessor(a signal.Accessor) *property.Property[any] {
	return property.New(property.Accessors[any]{
		Get:    a.Get,
		Set:    a.Set,
		Delete: a.Delete,
	})
}

func setterNames(name string) []string {
	names := make([]string, 0, len(SetterPrefixes)+2)
	for _, prefix := range SetterPrefixes {
		names = append(names, prefix+name)
	}
	if upper := upperFirst(name); upper != name {
		names = append(names, "set"+upper)
	}
	return append(names, name)
}

func findGetter(members signal.Members, name string) (func() any, bool) {
	candidates := []string{name}
	if upper := upperFirst(name); upper != name {
		candidates = append(candidates, upper)
	}
	for _, prefix := range GetterPrefixes {
		for _, c := range candidates {
			if getter, ok := members[prefix+c].(func() any); ok {
				return getter, true
			}
		}
	}
	return nil, false
}

// asFunc accepts the setter shapes a member table may hold.
func asFunc(m any) (signaler.Func, bool) {
	switch fn := m.(type) {
	case signaler.Func:
		return fn, true
	case func(args ...any) (any, error):
		return fn, true
	case func(args ...any) error:
		return func(args ...any) (any, error) {
			return nil, fn(args...)
		}, true
	case func(args ...any):
		return func(args ...any) (any, error) {
			fn(args...)
			return nil, nil
		}, true
	case func(value any):
		return func(args ...any) (any, error) {
			value, err := signaler.Arg[any](args, 0)
			if err != nil {
				return nil, err
			}
			fn(value)
			return nil, nil
		}, true
	case func(value any) error:
		return func(args ...any) (any, error) {
			value, err := signaler.Arg[any](args, 0)
			if err != nil {
				return nil, err
			}
			return nil, fn(value)
		}, true
	}
	return nil, false
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
