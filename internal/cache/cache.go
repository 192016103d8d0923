// Package cache holds the most recent portfolio snapshot behind a
// time-based expiry, so that every dashboard refresh within the TTL reuses
// one database read.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/ganot/portico/internal/domain/portfolio"
)

// DefaultTTL matches the tracker dashboard's refresh interval.
const DefaultTTL = 60 * time.Second

// LoadFunc produces a fresh snapshot.
type LoadFunc func(ctx context.Context) portfolio.Snapshot

// SnapshotCache caches the last snapshot and reloads it when the TTL
// lapses or after an explicit Invalidate. Safe for concurrent use.
type SnapshotCache struct {
	load LoadFunc
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	snapshot portfolio.Snapshot
	loadedAt time.Time
	valid    bool
}

// New creates a snapshot cache. A non-positive ttl falls back to
// DefaultTTL.
func New(load LoadFunc, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SnapshotCache{load: load, ttl: ttl, now: time.Now}
}

// GetOrLoad returns the cached snapshot, reloading through the load
// function when the cache is empty or stale. An unavailable snapshot is
// cached like any other: the host refresh cycle is the retry policy.
func (c *SnapshotCache) GetOrLoad(ctx context.Context) portfolio.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.loadedAt) <= c.ttl {
		return c.snapshot
	}

	c.snapshot = c.load(ctx)
	c.loadedAt = c.now()
	c.valid = true

	return c.snapshot
}

// Invalidate drops the cached snapshot so the next GetOrLoad reloads.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.snapshot = portfolio.Snapshot{}
	c.mu.Unlock()
}
