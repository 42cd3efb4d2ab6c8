package reconcile

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// DiffCache holds diffs keyed by lobby id.
//
// Entries expire after the TTL and the least recently used entry is evicted once the
// cache holds size diffs. Concurrent misses for the same lobby share one build.
type DiffCache struct {
	entries *expirable.LRU[string, *LobbyDiff]
	sf      singleflight.Group

	// generation changes on every invalidation so that builds started before an
	// invalidation are not stored.
	generation atomic.Uint64
}

// NewDiffCache creates a cache. A size of zero means unbounded; a TTL of zero means
// entries never expire.
func NewDiffCache(size int, ttl time.Duration) *DiffCache {
	if size < 0 {
		size = 0
	}
	return &DiffCache{
		entries: expirable.NewLRU[string, *LobbyDiff](size, nil, ttl),
	}
}

// Get returns the cached diff for a lobby.
func (c *DiffCache) Get(lobbyID string) (*LobbyDiff, bool) {
	return c.entries.Get(lobbyID)
}

// GetOrBuild returns the cached diff for a lobby or builds and stores it.
// Failed builds are not cached.
func (c *DiffCache) GetOrBuild(lobbyID string, build func() (*LobbyDiff, error)) (*LobbyDiff, error) {
	// Fast path
	if diff, ok := c.entries.Get(lobbyID); ok {
		return diff, nil
	}

	result, err, _ := c.sf.Do(lobbyID, func() (interface{}, error) {
		if diff, ok := c.entries.Get(lobbyID); ok {
			return diff, nil
		}

		generation := c.generation.Load()
		diff, err := build()
		if err != nil {
			return nil, err
		}

		if c.generation.Load() == generation {
			c.entries.Add(lobbyID, diff)
		}
		return diff, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*LobbyDiff), nil
}

// Invalidate removes the diff of one lobby, e.g. after its metadata changed.
func (c *DiffCache) Invalidate(lobbyID string) {
	c.generation.Add(1)
	c.entries.Remove(lobbyID)
}

// Purge removes every diff, e.g. after the local registry changed.
func (c *DiffCache) Purge() {
	c.generation.Add(1)
	c.entries.Purge()
}

// Len returns the number of cached diffs.
func (c *DiffCache) Len() int {
	return c.entries.Len()
}
