// Package memo wraps pure computations with named, bounded LRU caches.
package memo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/verte-zerg/readgrade/internal/errs"
)

// DefaultCapacity is used when a capacity below one is requested.
const DefaultCapacity = 256

// Stats reports cache effectiveness.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Size     int
	Capacity int
}

// Cache is the name-addressable view of a memoized function.
type Cache interface {
	Name() string
	Stats() Stats
	Clear()
}

// Func memoizes compute by a canonical string key. It is not safe for
// concurrent use beyond what the underlying LRU guards.
type Func[A, V any] struct {
	name     string
	capacity int
	key      func(A) string
	compute  func(A) (V, error)
	cache    *lru.Cache[string, V]
	hits     uint64
	misses   uint64
}

// New builds a memoized function.
func New[A, V any](name string, capacity int, key func(A) string, compute func(A) (V, error)) (*Func[A, V], error) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, V](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache %s: %w", name, err)
	}
	return &Func[A, V]{name: name, capacity: capacity, key: key, compute: compute, cache: cache}, nil
}

// Call returns the cached value for arg, computing it on a miss.
// Failed computations are not stored.
func (f *Func[A, V]) Call(arg A) (V, error) {
	k := f.key(arg)
	if v, ok := f.cache.Get(k); ok {
		f.hits++
		return v, nil
	}
	f.misses++
	v, err := f.compute(arg)
	if err != nil {
		return v, err
	}
	f.cache.Add(k, v)
	return v, nil
}

// Name returns the cache name.
func (f *Func[A, V]) Name() string {
	return f.name
}

// Stats returns a snapshot of the counters.
func (f *Func[A, V]) Stats() Stats {
	return Stats{Hits: f.hits, Misses: f.misses, Size: f.cache.Len(), Capacity: f.capacity}
}

// Clear drops every entry and zeroes the counters.
func (f *Func[A, V]) Clear() {
	f.cache.Purge()
	f.hits = 0
	f.misses = 0
}

// Registry enumerates caches in registration order.
type Registry struct {
	caches []Cache
	byName map[string]Cache
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Cache{}}
}

// Add registers c. Names must be unique.
func (r *Registry) Add(c Cache) error {
	if _, ok := r.byName[c.Name()]; ok {
		return errs.Invalid("cache", c.Name(), "duplicate cache name", nil)
	}
	r.caches = append(r.caches, c)
	r.byName[c.Name()] = c
	return nil
}

// Register builds a memoized function and adds it to r.
func Register[A, V any](r *Registry, name string, capacity int, key func(A) string, compute func(A) (V, error)) (*Func[A, V], error) {
	f, err := New(name, capacity, key, compute)
	if err != nil {
		return nil, err
	}
	if err := r.Add(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Names lists cache names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.caches))
	for i, c := range r.caches {
		names[i] = c.Name()
	}
	return names
}

// Lookup returns the cache registered under name.
func (r *Registry) Lookup(name string) (Cache, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, &errs.NotFoundError{Resource: "cache", ID: name}
	}
	return c, nil
}

// Stats returns per-cache statistics keyed by name.
func (r *Registry) Stats() map[string]Stats {
	out := make(map[string]Stats, len(r.caches))
	for _, c := range r.caches {
		out[c.Name()] = c.Stats()
	}
	return out
}

// ClearAll clears every registered cache.
func (r *Registry) ClearAll() {
	for _, c := range r.caches {
		c.Clear()
	}
}
