package signal_test

import (
	"testing"

	"github.com/delaneyj/eventsignal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	signal.Host
	label string
}

func TestHostChannels(t *testing.T) {
	w := &widget{}

	_, err := signal.Get(w, "custom_notifier")
	assert.ErrorIs(t, err, signal.ErrUnknownChannel)
	assert.ErrorIs(t, signal.Fire(w, "custom_notifier"), signal.ErrUnknownChannel)

	var got []any
	cb := signal.On(w, "custom_notifier", signal.Func(func(args ...any) {
		got = args
	}))
	require.NoError(t, signal.Fire(w, "custom_notifier", "Hello World!"))
	assert.Equal(t, []any{"Hello World!"}, got)

	subs, err := signal.Get(w, "custom_notifier")
	require.NoError(t, err)
	assert.Equal(t, []*signal.Callback{cb}, subs)

	assert.True(t, signal.Off(w, "custom_notifier", cb))
	assert.False(t, signal.Off(w, "custom_notifier", cb))
}

func TestHostCache(t *testing.T) {
	w := &widget{}
	key := new(int)
	created := 0
	create := func() any {
		created++
		return signal.New()
	}

	first := w.SignalCache().Load(key, create)
	second := w.SignalCache().Load(key, create)
	assert.Same(t, first, second)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, w.SignalCache().Len())

	v, ok := w.SignalCache().Lookup(key)
	require.True(t, ok)
	assert.Same(t, first, v)

	other := &widget{}
	_, ok = other.SignalCache().Lookup(key)
	assert.False(t, ok)
}

func TestBlockOwnerSources(t *testing.T) {
	w := &widget{}
	owned := signal.New()
	w.SignalCache().Load("owned", func() any { return ownedSource{owned} })

	var calls []string
	signal.On(w, "host", recorder(&calls, "host"))
	owned.On("inner", recorder(&calls, "inner"))

	signal.Block(w, true)
	require.NoError(t, signal.Fire(w, "host"))
	require.NoError(t, owned.Fire("inner"))
	assert.Empty(t, calls)

	signal.Block(w, false)
	require.NoError(t, signal.Fire(w, "host"))
	require.NoError(t, owned.Fire("inner"))
	assert.Equal(t, []string{"host", "inner"}, calls)
}

// ownedSource gives a bare Instance the Call method of a Source.
type ownedSource struct {
	*signal.Instance
}

func (o ownedSource) Call(args ...any) (any, error) {
	return nil, o.Fire(signal.Change, args...)
}

func TestTemplateBindTo(t *testing.T) {
	var tmpl signal.Template[*widget]
	var seen []string
	tmpl.On(signal.Change, func(w *widget, args ...any) {
		seen = append(seen, w.label)
	})
	removed := tmpl.On(signal.Change, func(w *widget, args ...any) {
		seen = append(seen, "removed")
	})
	assert.Equal(t, 2, tmpl.Hooks(signal.Change))
	assert.True(t, tmpl.Off(signal.Change, removed))
	assert.False(t, tmpl.Off(signal.Change, removed))

	a := &widget{label: "a"}
	b := &widget{label: "b"}
	regA := &signal.Registry{}
	regB := &signal.Registry{}
	tmpl.BindTo(a, regA)
	tmpl.BindTo(b, regB)

	require.NoError(t, regB.Fire(signal.Change))
	require.NoError(t, regA.Fire(signal.Change))
	assert.Equal(t, []string{"b", "a"}, seen)
}
