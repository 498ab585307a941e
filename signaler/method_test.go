package signaler_test

import (
	"testing"

	"github.com/delaneyj/eventsignal/signal"
	"github.com/delaneyj/eventsignal/signaler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var setPointX = signaler.NewMethod(signaler.TypedMethod1(func(p *point, x int) {
	p.x = x
})).WithGetter(func(p *point) any { return p.x })

func TestMethodPerInstance(t *testing.T) {
	a, b := &point{}, &point{}

	var seen []any
	setPointX.For(a).OnFunc(signal.Change, func(args ...any) { seen = append(seen, args...) })

	_, err := setPointX.Call(a, 1)
	require.NoError(t, err)
	_, err = setPointX.Call(b, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, a.x)
	assert.Equal(t, 2, b.x)
	assert.Equal(t, []any{1}, seen)
	assert.Same(t, setPointX.For(a), setPointX.For(a))
	assert.NotSame(t, setPointX.For(a), setPointX.For(b))
}

func TestMethodHooksCopiedOnFirstUse(t *testing.T) {
	m := signaler.NewMethod(signaler.TypedMethod1(func(p *point, x int) {
		p.x = x
	}))
	var owners []*point
	hook := m.On(signal.Change, func(p *point, args ...any) {
		owners = append(owners, p)
	})

	a := &point{}
	_, err := m.Call(a, 1)
	require.NoError(t, err)

	// a keeps its copy after the class-level hook is removed.
	assert.True(t, m.Off(signal.Change, hook))
	assert.Zero(t, m.Hooks(signal.Change))

	b := &point{}
	_, err = m.Call(b, 2)
	require.NoError(t, err)
	_, err = m.Call(a, 3)
	require.NoError(t, err)

	assert.Equal(t, []*point{a, a}, owners)
}

func TestMethodFireResults(t *testing.T) {
	m := signaler.NewMethod(func(p *point, args ...any) (any, error) {
		p.x++
		return p.x, nil
	}).WithFireResults()

	p := &point{}
	var seen []any
	m.For(p).OnFunc(signal.Change, func(args ...any) { seen = append(seen, args...) })
	for range 3 {
		_, err := m.Call(p)
		require.NoError(t, err)
	}
	assert.Equal(t, []any{1, 2, 3}, seen)
}

func TestMethodBlockThroughOwner(t *testing.T) {
	p := &point{}
	fired := 0
	setPointX.For(p).OnFunc(signal.Change, func(args ...any) { fired++ })

	signal.Block(p, true)
	_, err := setPointX.Call(p, 5)
	require.NoError(t, err)
	assert.Zero(t, fired)

	signal.Block(p, false)
	_, err = setPointX.Call(p, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

type shape struct {
	*signaler.MethodSet
	x, y int
}

func newShape() *shape {
	s := &shape{MethodSet: signaler.NewMethodSet()}
	s.Wrap("set_x", signaler.Typed1(func(x int) { s.x = x }))
	s.Wrap("set_y", signaler.Typed1(func(y int) { s.y = y }))
	s.Wrap("move", signaler.Typed2(func(dx, dy int) {
		s.Call("set_x", s.x+dx)
		s.Call("set_y", s.y+dy)
	}))
	s.Getter("get_x", func() any { return s.x })
	return s
}

func TestMethodSetMove(t *testing.T) {
	s := newShape()
	var calls []string
	for _, name := range s.Names() {
		setter, ok := s.Setter(name)
		require.True(t, ok)
		setter.OnFunc(signal.Change, func(args ...any) { calls = append(calls, name) })
	}

	_, err := s.Call("move", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, s.x)
	assert.Equal(t, 3, s.y)
	assert.Equal(t, []string{"set_x", "set_y", "move"}, calls)
}

func TestMethodSetNames(t *testing.T) {
	s := newShape()
	assert.Equal(t, []string{"move", "set_x", "set_y"}, s.Names())

	setter, ok := s.Setter("set_x")
	require.True(t, ok)
	assert.Equal(t, "set_x", setter.Name())

	_, ok = s.Setter("get_x")
	assert.False(t, ok)

	_, err := s.Call("rotate", 90)
	assert.ErrorIs(t, err, signal.ErrMissingMember)
}
