package cache

import (
	"context"
	"sync"
	"time"

	"github.com/quiverlens/backend/internal/domain"
)

// cacheItem holds one cached scan result with its expiration
type cacheItem struct {
	matches    []domain.DuplicateMatch
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory scan-result cache with TTL support
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup loop
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Remove expired entries every 10 minutes
	go c.cleanupExpired()

	return c
}

// Get retrieves cached matches for a scan key
func (c *MemoryCache) Get(ctx context.Context, key string) ([]domain.DuplicateMatch, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	// Copy so callers can't mutate the cached slice in place
	matches := make([]domain.DuplicateMatch, len(item.matches))
	copy(matches, item.matches)
	return matches, nil
}

// Set stores scan matches under a key with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, matches []domain.DuplicateMatch, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	stored := make([]domain.DuplicateMatch, len(matches))
	copy(stored, matches)

	c.data[key] = cacheItem{
		matches:    stored,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a cached scan result
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of cached scans (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all cached scans
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
