package server

import (
	"sync"
	"time"

	"github.com/mj1618/a11y-bridge/internal/a11y"
)

// cacheEntry holds a snapshot with the structure epoch it was taken at.
type cacheEntry struct {
	tree      *a11y.Tree
	epoch     uint64
	timestamp time.Time
}

// TreeCache keeps recent snapshots per depth. An entry is reused only while
// it is younger than the TTL and the bridge's structure epoch is unchanged.
type TreeCache struct {
	mu      sync.Mutex
	entries map[int]cacheEntry
	ttl     time.Duration
}

// NewTreeCache creates a new cache. A ttl of 0 disables caching.
func NewTreeCache(ttl time.Duration) *TreeCache {
	return &TreeCache{
		entries: make(map[int]cacheEntry),
		ttl:     ttl,
	}
}

// Snapshot returns a cached tree if still fresh, otherwise takes a new one.
// The caller must hold the server loop mutex.
func (c *TreeCache) Snapshot(b *a11y.Bridge, depth int) (*a11y.Tree, error) {
	snap := func() (*a11y.Tree, error) {
		return b.Snapshot(nil, a11y.SnapshotOptions{Depth: depth, Refs: true})
	}
	if c.ttl == 0 {
		return snap()
	}

	c.mu.Lock()
	if entry, ok := c.entries[depth]; ok && entry.epoch == b.Epoch() && time.Since(entry.timestamp) < c.ttl {
		c.mu.Unlock()
		return entry.tree, nil
	}
	c.mu.Unlock()

	tree, err := snap()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[depth] = cacheEntry{tree: tree, epoch: b.Epoch(), timestamp: time.Now()}
	c.mu.Unlock()

	return tree, nil
}

// InvalidateAll clears the entire cache.
func (c *TreeCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[int]cacheEntry)
}
