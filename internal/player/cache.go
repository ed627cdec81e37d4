package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/eon-online/eon-server/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// cachedPlayerEntry wraps a player with version metadata for cache invalidation
type cachedPlayerEntry struct {
	Version  string         `json:"version"`
	Player   *domain.Player `json:"player"`
	CachedAt time.Time      `json:"cached_at"`
}

// playerCache provides an in-memory LRU cache for player lookups with
// time-based expiration and version-based invalidation.
type playerCache struct {
	lru *expirable.LRU[string, *cachedPlayerEntry]
}

// newPlayerCache creates a new player cache with the specified size and TTL
func newPlayerCache(size int, ttl time.Duration) *playerCache {
	return &playerCache{
		lru: expirable.NewLRU[string, *cachedPlayerEntry](size, nil, ttl),
	}
}

// Get retrieves a player from the cache. Returns (nil, false) when missing,
// expired, or written by an older schema version.
func (c *playerCache) Get(playerID string) (*domain.Player, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}

	return entry.Player, true
}

// Set stores a player in the cache with the current schema version
func (c *playerCache) Set(player *domain.Player) {
	c.lru.Add(player.ID, &cachedPlayerEntry{
		Version:  CacheSchemaVersion,
		Player:   player,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a player from the cache after a mutation
func (c *playerCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

// Clear removes all entries from the cache
func (c *playerCache) Clear() {
	c.lru.Purge()
}
