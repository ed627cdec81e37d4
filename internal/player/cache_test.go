package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eon-online/eon-server/internal/domain"
)

func TestPlayerCache_SetGet(t *testing.T) {
	cache := newPlayerCache(10, time.Minute)
	p := &domain.Player{ID: "p1", Username: "Aldric"}

	cache.Set(p)
	got, ok := cache.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, "Aldric", got.Username)

	_, ok = cache.Get("p2")
	assert.False(t, ok)
}

func TestPlayerCache_Invalidate(t *testing.T) {
	cache := newPlayerCache(10, time.Minute)
	cache.Set(&domain.Player{ID: "p1"})

	cache.Invalidate("p1")
	_, ok := cache.Get("p1")
	assert.False(t, ok)
}

func TestPlayerCache_VersionMismatchEvicts(t *testing.T) {
	cache := newPlayerCache(10, time.Minute)
	cache.lru.Add("p1", &cachedPlayerEntry{
		Version: "0.0",
		Player:  &domain.Player{ID: "p1"},
	})

	_, ok := cache.Get("p1")
	assert.False(t, ok)

	// the stale entry is gone entirely, not just skipped
	_, found := cache.lru.Get("p1")
	assert.False(t, found)
}

func TestPlayerCache_Expiry(t *testing.T) {
	cache := newPlayerCache(10, 10*time.Millisecond)
	cache.Set(&domain.Player{ID: "p1"})

	time.Sleep(25 * time.Millisecond)
	_, ok := cache.Get("p1")
	assert.False(t, ok)
}

func TestPlayerCache_Clear(t *testing.T) {
	cache := newPlayerCache(10, time.Minute)
	cache.Set(&domain.Player{ID: "p1"})
	cache.Set(&domain.Player{ID: "p2"})

	cache.Clear()
	_, ok := cache.Get("p1")
	assert.False(t, ok)
	_, ok = cache.Get("p2")
	assert.False(t, ok)
}
