package relay

import (
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const shardCount = 16

// Target is what a directory entry must be able to do: fire a channel.
type Target interface {
	Fire(channel string, args ...any) error
}

// Directory maps names to signal sources for a process. Entries stay until
// Remove is called.
type Directory struct {
	shards [shardCount]shard
}

type shard struct {
	mu      sync.RWMutex
	targets map[string]Target
}

func NewDirectory() *Directory {
	d := &Directory{}
	for i := range d.shards {
		d.shards[i].targets = map[string]Target{}
	}
	return d
}

func (d *Directory) shard(name string) *shard {
	return &d.shards[xxhash.Sum64String(name)%shardCount]
}

// Register stores target under name. The first registration for a name wins;
// Register reports whether target was stored.
func (d *Directory) Register(name string, target Target) bool {
	s := d.shard(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.targets[name]; ok {
		return false
	}
	s.targets[name] = target
	return true
}

// Named is a target that knows its own name, like signal.Instance.
type Named interface {
	Target
	Name() string
}

// Add registers target under its own name.
func (d *Directory) Add(target Named) bool {
	return d.Register(target.Name(), target)
}

func (d *Directory) Lookup(name string) (Target, bool) {
	s := d.shard(name)
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.targets[name]
	return t, ok
}

func (d *Directory) Remove(name string) {
	s := d.shard(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.targets, name)
}

func (d *Directory) Names() []string {
	var names []string
	for i := range d.shards {
		s := &d.shards[i]
		s.mu.RLock()
		for name := range s.targets {
			names = append(names, name)
		}
		s.mu.RUnlock()
	}
	sort.Strings(names)
	return names
}
