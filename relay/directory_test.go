package relay_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/eventsignal/relay"
	"github.com/delaneyj/eventsignal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryFirstWins(t *testing.T) {
	d := relay.NewDirectory()
	first := signal.New(signal.WithName("a"))
	second := signal.New(signal.WithName("a"))

	assert.True(t, d.Add(first))
	assert.False(t, d.Add(second))

	got, ok := d.Lookup("a")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestDirectoryRemove(t *testing.T) {
	d := relay.NewDirectory()
	d.Register("a", signal.New())
	d.Remove("a")
	d.Remove("missing")

	_, ok := d.Lookup("a")
	assert.False(t, ok)
	assert.True(t, d.Register("a", signal.New()))
}

func TestDirectoryNames(t *testing.T) {
	d := relay.NewDirectory()
	var want []string
	for i := range 40 {
		name := fmt.Sprintf("src-%02d", i)
		want = append(want, name)
		d.Register(name, signal.New())
	}
	assert.Equal(t, want, d.Names())
}
