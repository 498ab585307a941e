package signal

import "sync"

// Carrier is implemented by objects that own a registry of channels.
type Carrier interface {
	Signals() *Registry
}

// Owner is implemented by objects that keep per-instance signal sources
// created from class-level descriptors.
type Owner interface {
	SignalCache() *Cache
}

// Cache holds the sources materialized for one owner, keyed by the
// descriptor that created them.
type Cache struct {
	mu    sync.Mutex
	items map[any]any
}

// Load returns the value stored under key, calling create to build it on the
// first access.
func (c *Cache) Load(key any, create func() any) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.items[key]; ok {
		return v
	}
	if c.items == nil {
		c.items = map[any]any{}
	}
	v := create()
	c.items[key] = v
	return v
}

func (c *Cache) Lookup(key any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Host is embedded by types that carry their own channels and per-instance
// signal sources. A Host must not be copied after first use.
type Host struct {
	signals Registry
	cache   Cache
}

func (h *Host) Signals() *Registry {
	return &h.signals
}

func (h *Host) SignalCache() *Cache {
	return &h.cache
}

func (c *Cache) each(fn func(v any)) {
	c.mu.Lock()
	values := make([]any, 0, len(c.items))
	for _, v := range c.items {
		values = append(values, v)
	}
	c.mu.Unlock()
	for _, v := range values {
		fn(v)
	}
}
