// Package resolve tracks which compilation units have already been type resolved.
//
// A Cache is meant to be created once per analysis process and shared by every rule,
// entries are never evicted.
package resolve

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Cache is a concurrency safe, append-only set of resolved keys
type Cache struct {
	entries sync.Map
	size    int64
}

type entry struct {
	once sync.Once
	err  error
}

// ShouldResolve claims the key, it returns true only for the first caller of a key
func (c *Cache) ShouldResolve(key Key) bool {
	claimed := &entry{}
	claimed.once.Do(func() {})
	_, loaded := c.entries.LoadOrStore(key, claimed)
	if !loaded {
		atomic.AddInt64(&c.size, 1)
	}
	return !loaded
}

// Do runs fn at most once per key. Callers racing on the same key wait for the
// winning call and get its error, so the winner's writes are visible to all of them.
// A panicking fn is recorded as the key error before the panic propagates.
// The returned flag reports whether this caller ran fn.
func (c *Cache) Do(key Key, fn func() error) (bool, error) {
	value, ok := c.entries.Load(key)
	if !ok {
		var loaded bool
		if value, loaded = c.entries.LoadOrStore(key, &entry{}); !loaded {
			atomic.AddInt64(&c.size, 1)
		}
	}
	anEntry := value.(*entry)
	ran := false
	anEntry.once.Do(func() {
		ran = true
		defer func() {
			if r := recover(); r != nil {
				anEntry.err = fmt.Errorf("resolver panic: %v", r)
				panic(r)
			}
		}()
		anEntry.err = fn()
	})
	return ran, anEntry.err
}

// Len returns number of claimed keys
func (c *Cache) Len() int {
	return int(atomic.LoadInt64(&c.size))
}

// NewCache creates a cache
func NewCache() *Cache {
	return &Cache{}
}
