package viewcache

import (
	"time"

	"atrium/config"
	"atrium/internal/domain/service"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultTTL             = 5 * time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

// memoryViewCache implements the service.ViewCache interface on top of an
// in-process expiring cache.
type memoryViewCache struct {
	cache *gocache.Cache
}

// NewMemoryViewCache is the constructor for memoryViewCache.
func NewMemoryViewCache(cfg *config.Config) service.ViewCache {
	ttl := defaultTTL
	cleanup := defaultCleanupInterval
	if cfg != nil && cfg.ViewCache != nil {
		if cfg.ViewCache.TTL > 0 {
			ttl = cfg.ViewCache.TTL
		}
		if cfg.ViewCache.CleanupInterval > 0 {
			cleanup = cfg.ViewCache.CleanupInterval
		}
	}

	return &memoryViewCache{
		cache: gocache.New(ttl, cleanup),
	}
}

// Get returns the cached payload for a path, if present.
func (m *memoryViewCache) Get(path string) (any, bool) {
	return m.cache.Get(path)
}

// Set stores a payload for a path with the default TTL.
func (m *memoryViewCache) Set(path string, payload any) {
	m.cache.Set(path, payload, gocache.DefaultExpiration)
}

// Invalidate drops the cached payloads for the given paths. Unknown paths
// are ignored.
func (m *memoryViewCache) Invalidate(paths ...string) {
	for _, path := range paths {
		m.cache.Delete(path)
	}
}
