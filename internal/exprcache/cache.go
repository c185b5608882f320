// Package exprcache implements the hash-consing cache: a sharded,
// concurrent table mapping a structural hash to a weak reference to the
// live Expression that hash was last published for. The cache never
// extends an Expression's lifetime; it only remembers where to find one
// while something else keeps it alive.
package exprcache

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"weak"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"clarigo/internal/expr"
	"clarigo/internal/hashkey"
)

// Cache is a sharded weak-reference table. The zero value is not usable;
// construct with New.
type Cache struct {
	shards []shard
	mask   uint64
	sf     singleflight.Group
}

type shard struct {
	mu sync.RWMutex
	m  map[hashkey.Hash]weak.Pointer[expr.Expression]
}

// New constructs a Cache with shardCount shards. shardCount is rounded up
// to the next power of two so that shard selection can use a bitmask
// instead of a modulo.
func New(shardCount int) *Cache {
	if shardCount < 1 {
		shardCount = 1
	}
	n := 1
	for n < shardCount {
		n <<= 1
	}
	c := &Cache{shards: make([]shard, n), mask: uint64(n - 1)}
	for i := range c.shards {
		c.shards[i].m = make(map[hashkey.Hash]weak.Pointer[expr.Expression])
	}
	return c
}

func (c *Cache) shardFor(h hashkey.Hash) *shard {
	return &c.shards[uint64(h)&c.mask]
}

// FindOrInsert implements spec §4.5's four-step protocol: probe for a
// live entry under a shared lock; if absent or dead, run build (at most
// once per live generation of h even under concurrent callers, via a
// singleflight group) and publish the result. build is never called if a
// live entry is already present.
func (c *Cache) FindOrInsert(h hashkey.Hash, build func() (*expr.Expression, error)) (*expr.Expression, error) {
	s := c.shardFor(h)

	s.mu.RLock()
	if wp, ok := s.m[h]; ok {
		if e := wp.Value(); e != nil {
			s.mu.RUnlock()
			return e, nil
		}
	}
	s.mu.RUnlock()

	key := fmt.Sprintf("%d", uint64(h))
	v, err, _ := c.sf.Do(key, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if wp, ok := s.m[h]; ok {
			if e := wp.Value(); e != nil {
				return e, nil
			}
			delete(s.m, h) // dead entry, scrub before replacing
		}

		e, err := build()
		if err != nil {
			return nil, err
		}

		s.m[h] = weak.Make(e)
		runtime.AddCleanup(e, c.onFinalized, h)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*expr.Expression), nil
}

// onFinalized runs when the runtime determines an Expression published
// under h is no longer reachable from any strong reference. It removes
// the shard's own entry if it is still the dead one, so live entries are
// never touched and GC never needs to run to reclaim the common case.
func (c *Cache) onFinalized(h hashkey.Hash) {
	s := c.shardFor(h)
	s.mu.Lock()
	defer s.mu.Unlock()
	if wp, ok := s.m[h]; ok && wp.Value() == nil {
		delete(s.m, h)
	}
}

// UnsafeFind is a test-only probe: it returns nil when the entry is dead,
// scrubbing the dead entry as a side effect, exactly per spec §4.5.
func (c *Cache) UnsafeFind(h hashkey.Hash) *expr.Expression {
	s := c.shardFor(h)
	s.mu.Lock()
	defer s.mu.Unlock()
	wp, ok := s.m[h]
	if !ok {
		return nil
	}
	if e := wp.Value(); e != nil {
		return e
	}
	delete(s.m, h)
	return nil
}

// GC sweeps every shard concurrently, removing entries whose weak
// reference no longer resolves. GC never removes a live entry: a entry is
// only deleted after its weak pointer has failed to upgrade under that
// shard's own lock.
func (c *Cache) GC(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	for i := range c.shards {
		s := &c.shards[i]
		g.Go(func() error {
			s.mu.Lock()
			defer s.mu.Unlock()
			for h, wp := range s.m {
				if wp.Value() == nil {
					delete(s.m, h)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Len reports the number of entries across all shards, including dead
// entries that no cleanup, UnsafeFind or GC has scrubbed yet. Best-effort:
// under concurrent mutation the count may be stale by the time it is
// read, which is acceptable for its sole intended use (tests).
func (c *Cache) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		total += len(s.m)
		s.mu.RUnlock()
	}
	return total
}

// DebugKey formats e the way the source's CacheKey::repr did: "<Key Type
// Repr>". Used by tests and diagnostics, never by the find/insert path.
func DebugKey(e *expr.Expression) string {
	return fmt.Sprintf("<Key %s %s>", e.TypeName(), e.String())
}
