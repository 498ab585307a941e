package signal_test

import (
	"testing"

	"github.com/delaneyj/eventsignal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceNames(t *testing.T) {
	a := signal.New()
	b := signal.New()
	assert.NotEmpty(t, a.Name())
	assert.NotEqual(t, a.Name(), b.Name())
	assert.Equal(t, a.Name(), a.Name())

	named := signal.New(signal.WithName("model.x"))
	assert.Equal(t, "model.x", named.Name())
}

func TestInstanceBroadcast(t *testing.T) {
	s := signal.New(signal.WithChannels("tick"))
	require.NoError(t, s.Fire("tick"), "declared channels fire with no subscribers")

	var got []any
	cb := s.OnFunc("tick", func(args ...any) {
		got = append(got, args...)
	})
	require.NoError(t, s.Fire("tick", 1))
	require.NoError(t, s.Fire("tick", 2))
	assert.Equal(t, []any{1, 2}, got)

	assert.True(t, s.Off("tick", cb))
	require.NoError(t, s.Fire("tick", 3))
	assert.Equal(t, []any{1, 2}, got)
}

func TestInstanceConnector(t *testing.T) {
	s := signal.New()
	onChange := s.Connector(signal.Change)

	count := 0
	cb := onChange(signal.Func(func(args ...any) { count++ }))
	require.NotNil(t, cb)

	subs, err := s.Get(signal.Change)
	require.NoError(t, err)
	assert.Equal(t, []*signal.Callback{cb}, subs)

	require.NoError(t, s.Fire(signal.Change))
	assert.Equal(t, 1, count)
}

func TestInstanceBlock(t *testing.T) {
	s := signal.New()
	var calls []string
	s.On("a", recorder(&calls, "a"))
	s.On("b", recorder(&calls, "b"))

	s.Block(true, "a")
	require.NoError(t, s.Fire("a"))
	require.NoError(t, s.Fire("b"))
	s.Block(false, "a")
	require.NoError(t, s.Fire("a"))
	assert.Equal(t, []string{"b", "a"}, calls)
}

func TestInstanceBindings(t *testing.T) {
	s := signal.New()
	_, ok := s.PopBinding()
	assert.False(t, ok)

	first := signal.Func(func(args ...any) {})
	second := signal.Func(func(args ...any) {})
	partner := signal.New()
	s.PushBinding(partner, first)
	s.PushBinding(partner, second)
	assert.True(t, s.BoundTo(partner))
	assert.False(t, s.BoundTo(signal.New()))

	cb, ok := s.PopBinding()
	require.True(t, ok)
	assert.Same(t, second, cb)
	cb, ok = s.PopBinding()
	require.True(t, ok)
	assert.Same(t, first, cb)
	_, ok = s.PopBinding()
	assert.False(t, ok)
	assert.False(t, s.BoundTo(partner))
}

func TestInstanceDetachAttach(t *testing.T) {
	s := signal.New()
	var calls []string
	a := s.OnFunc("tick", func(args ...any) { calls = append(calls, "a") })
	b := s.OnFunc("tick", func(args ...any) { calls = append(calls, "b") })
	s.OnFunc("tick", func(args ...any) { calls = append(calls, "c") })

	i := s.Detach("tick", b)
	assert.Equal(t, 1, i)
	assert.Equal(t, -1, s.Detach("tick", b))
	assert.Equal(t, -1, s.Detach("missing", b))

	s.Attach("tick", i, b)
	s.Attach("tick", 5, a)
	require.NoError(t, s.Fire("tick"))
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}
