package property_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/eventsignal/property"
	"github.com/delaneyj/eventsignal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type events struct {
	names []string
	args  [][]any
}

func (e *events) watch(p signal.Source, channels ...string) {
	for _, ch := range channels {
		p.On(ch, signal.Func(func(args ...any) {
			e.names = append(e.names, ch)
			e.args = append(e.args, args)
		}))
	}
}

func intProperty(v *int) *property.Property[int] {
	return property.New(property.Accessors[int]{
		Get: func() int { return *v },
		Set: func(n int) { *v = n },
	})
}

func TestPropertyChangeSuppressed(t *testing.T) {
	x := 3
	p := intProperty(&x)
	var ev events
	ev.watch(p, signal.BeforeChange, signal.Change)

	require.NoError(t, p.Set(3))
	assert.Empty(t, ev.names)

	require.NoError(t, p.Set(4))
	assert.Equal(t, []string{signal.BeforeChange, signal.Change}, ev.names)
	assert.Equal(t, [][]any{{4}, {4}}, ev.args)
	assert.Equal(t, 4, x)
}

func TestPropertyWithoutChangeCheck(t *testing.T) {
	x := 3
	writes := 0
	p := property.New(property.Accessors[int]{
		Get: func() int { return x },
		Set: func(n int) { writes++; x = n },
	}, property.WithoutChangeCheck())
	var ev events
	ev.watch(p, signal.Change)

	require.NoError(t, p.Set(3))
	assert.Equal(t, 1, writes)
	assert.Equal(t, []string{signal.Change}, ev.names)
}

func TestPropertyChangeReportsStoredValue(t *testing.T) {
	x := 0
	p := property.New(property.Accessors[int]{
		Get: func() int { return x },
		Set: func(n int) { x = min(n, 10) },
	})
	var ev events
	ev.watch(p, signal.BeforeChange, signal.Change)

	require.NoError(t, p.Set(50))
	assert.Equal(t, [][]any{{50}, {10}}, ev.args)
}

func TestPropertyWriteOnly(t *testing.T) {
	var stored string
	p := property.New(property.Accessors[string]{
		Set: func(s string) { stored = s },
	})
	var ev events
	ev.watch(p, signal.Change)

	require.NoError(t, p.Set("a"))
	require.NoError(t, p.Set("a"))
	assert.Equal(t, "a", stored)
	assert.Len(t, ev.names, 2)

	_, err := p.Value()
	assert.ErrorIs(t, err, signal.ErrRead)
}

func TestPropertyMissingAccessors(t *testing.T) {
	p := property.New(property.Accessors[int]{})
	var ev events
	ev.watch(p, signal.BeforeChange, signal.BeforeDelete)

	assert.ErrorIs(t, p.Set(1), signal.ErrWrite)
	assert.ErrorIs(t, p.Delete(), signal.ErrDelete)
	_, err := p.Value()
	assert.ErrorIs(t, err, signal.ErrRead)
	assert.Empty(t, ev.names)
}

func TestPropertyDelete(t *testing.T) {
	x, present := 1, true
	var order []string
	p := property.New(property.Accessors[int]{
		Get: func() int { return x },
		Delete: func() {
			order = append(order, "delete-fn")
			present = false
		},
	})
	p.OnFunc(signal.BeforeDelete, func(args ...any) {
		assert.Empty(t, args)
		order = append(order, signal.BeforeDelete)
	})
	p.OnFunc(signal.Delete, func(args ...any) {
		order = append(order, signal.Delete)
	})

	require.NoError(t, p.Delete())
	assert.False(t, present)
	assert.Equal(t, []string{signal.BeforeDelete, "delete-fn", signal.Delete}, order)
}

func TestPropertyCall(t *testing.T) {
	x := 0
	p := intProperty(&x)

	_, err := p.Call(5)
	require.NoError(t, err)
	assert.Equal(t, 5, x)

	_, err = p.Call("five")
	assert.ErrorIs(t, err, signal.ErrBadArguments)
	_, err = p.Call()
	assert.ErrorIs(t, err, signal.ErrBadArguments)

	_, err = p.Call(nil)
	require.NoError(t, err)
	assert.Zero(t, x)
}

func TestPropertyVeto(t *testing.T) {
	x := 0
	p := intProperty(&x)
	veto := errors.New("veto")
	p.On(signal.BeforeChange, signal.ErrFunc(func(args ...any) error {
		if args[0].(int) < 0 {
			return veto
		}
		return nil
	}))

	assert.ErrorIs(t, p.Set(-1), veto)
	assert.Zero(t, x)
	require.NoError(t, p.Set(1))
	assert.Equal(t, 1, x)
}

func TestPropertySetAccessors(t *testing.T) {
	p := property.New(property.Accessors[int]{})
	assert.ErrorIs(t, p.Set(1), signal.ErrWrite)

	x := 0
	p.SetAccessors(property.Accessors[int]{
		Get: func() int { return x },
		Set: func(n int) { x = n },
	})
	require.NoError(t, p.Set(2))
	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
