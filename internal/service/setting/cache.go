package setting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
)

// Cache memoizes the single active WaktuAbsensiSetting row in process
// memory. Every submission handler reads the configuration through it, so
// a request never pays a database round trip while a cached copy is fresh.
//
// Staleness is bounded two ways: entries expire after ttl, and every write
// path to the settings table calls Invalidate before reporting success, so
// reads after a mutation always hit the fetch-fresh path. A read-through
// race between concurrent misses is fine; both fetch the same active row
// and the last store wins.
type Cache struct {
	repo setting.SettingRepository
	ttl  time.Duration

	mu        sync.RWMutex
	setting   *setting.WaktuAbsensiSetting
	expiresAt time.Time
}

func NewCache(repo setting.SettingRepository, ttl time.Duration) *Cache {
	return &Cache{
		repo: repo,
		ttl:  ttl,
	}
}

// GetActive returns the active configuration, serving the cached copy when
// present and unexpired, otherwise fetching from the store and re-caching.
// Returns setting.ErrNotConfigured when no active row exists.
func (c *Cache) GetActive(ctx context.Context) (setting.WaktuAbsensiSetting, error) {
	c.mu.RLock()
	if c.setting != nil && time.Now().Before(c.expiresAt) {
		cached := *c.setting
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	fetched, err := c.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.WaktuAbsensiSetting{}, setting.ErrNotConfigured
		}
		return setting.WaktuAbsensiSetting{}, fmt.Errorf("failed to fetch active attendance setting: %w", err)
	}

	c.mu.Lock()
	c.setting = &fetched
	c.expiresAt = time.Now().Add(c.ttl)
	c.mu.Unlock()

	return fetched, nil
}

// Invalidate unconditionally clears the cached entry. Idempotent. Every
// code path that writes the settings table must call this before returning
// success, so "invalidate-then-visible" holds across the process.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.setting = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}

// CleanExpired clears the entry only when its expiry has passed. Safe to
// call speculatively on any maintenance tick; a still-valid entry is left
// untouched.
func (c *Cache) CleanExpired() {
	c.mu.Lock()
	if c.setting != nil && !time.Now().Before(c.expiresAt) {
		c.setting = nil
		c.expiresAt = time.Time{}
	}
	c.mu.Unlock()
}

// Stats reports the cache state without ever triggering a fetch.
func (c *Cache) Stats() setting.CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.setting == nil {
		return setting.CacheStats{}
	}

	expiresAt := c.expiresAt
	cached := *c.setting
	return setting.CacheStats{
		Cached:    true,
		ExpiresAt: &expiresAt,
		Setting:   &cached,
	}
}
