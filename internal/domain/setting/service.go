package setting

import "context"

// SettingService defines business logic for the attendance window
// configuration and its cache.
type SettingService interface {
	// GetActive returns the active configuration, served through the cache.
	GetActive(ctx context.Context) (SettingResponse, error)

	// Update validates and persists new windows with optimistic locking,
	// then invalidates the cache before returning.
	Update(ctx context.Context, req UpdateSettingRequest) (SettingResponse, error)

	// EnsureDefault seeds a default configuration when none exists.
	// Idempotent: returns the existing active row when there is one.
	EnsureDefault(ctx context.Context) (SettingResponse, error)

	// CacheStats reports the cache state without triggering a fetch.
	CacheStats() CacheStatsResponse
}
