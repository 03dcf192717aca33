package track

import (
	"context"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
)

const maxCached = 1024

// Source is anything that resolves track metadata.
type Source interface {
	Resolve(ctx context.Context, rawURL string) (*Metadata, error)
}

type cacheEntry struct {
	meta      *Metadata
	expiresAt time.Time
}

// Cache remembers resolved metadata by fingerprint so the same track is
// fetched once per ttl however it was typed. Failures are not cached.
type Cache struct {
	src Source
	ttl time.Duration

	mu      sync.Mutex
	entries *lru.Cache
}

// NewCache wraps src.
func NewCache(src Source, ttl time.Duration) *Cache {
	return &Cache{
		src:     src,
		ttl:     ttl,
		entries: lru.New(maxCached),
	}
}

func (c *Cache) Resolve(ctx context.Context, rawURL string) (*Metadata, error) {
	key := Fingerprint(rawURL)
	if m, ok := c.get(key); ok {
		return m, nil
	}

	m, err := c.src.Resolve(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries.Add(key, cacheEntry{meta: m, expiresAt: time.Now().Add(c.ttl)})
	c.mu.Unlock()
	return m, nil
}

func (c *Cache) get(key uint64) (*Metadata, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	e := v.(cacheEntry)
	if time.Now().After(e.expiresAt) {
		c.entries.Remove(key)
		return nil, false
	}
	return e.meta, true
}

// Len is the number of entries held.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
