package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/delaneyj/eventsignal/binder"
	"github.com/delaneyj/eventsignal/property"
	"github.com/delaneyj/eventsignal/signal"
	"github.com/delaneyj/eventsignal/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFiresChangeAndDelete(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scenario.yaml")

	w := watch.New([]string{dir}, watch.WithFilter(func(path string) bool {
		return filepath.Base(path) == "scenario.yaml"
	}))
	var mu sync.Mutex
	var changed, deleted []string
	w.OnFunc(signal.Change, func(args ...any) {
		mu.Lock()
		defer mu.Unlock()
		changed = append(changed, args[0].(string))
	})
	w.OnFunc(signal.Delete, func(args ...any) {
		mu.Lock()
		defer mu.Unlock()
		deleted = append(deleted, args[0].(string))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("steps: []"), 0o644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(target))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(deleted) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, p := range changed {
		assert.Equal(t, target, p)
	}
	assert.Equal(t, target, deleted[0])
}

func TestWatcherRelaysIntoProperty(t *testing.T) {
	dir := t.TempDir()
	var mu sync.Mutex
	last := ""
	p := property.New(property.Accessors[string]{
		Get: func() string { mu.Lock(); defer mu.Unlock(); return last },
		Set: func(s string) { mu.Lock(); defer mu.Unlock(); last = s },
	})

	w := watch.New([]string{dir})
	w.On(signal.Change, binder.Relay(p))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	target := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(target, []byte("a"), 0o644))
	require.Eventually(t, func() bool {
		v, err := p.Value()
		return err == nil && v == target
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherMissingPath(t *testing.T) {
	w := watch.New([]string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, w.Start(context.Background()))
}
