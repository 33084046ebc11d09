package setting

import (
	"time"
)

// WaktuAbsensiSetting is the attendance window configuration. Exactly one
// row is active at any time; every check-in/check-out decision in the
// system is evaluated against that row. The four jam fields are wall-clock
// times of day (the calendar date part is meaningless). Version increments
// on every update and backs optimistic locking at the store.
type WaktuAbsensiSetting struct {
	ID               string
	JamMasukMulai    time.Time
	JamMasukSelesai  time.Time
	JamPulangMulai   time.Time
	JamPulangSelesai time.Time
	IsActive         bool
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CacheStats is a read-only snapshot of the settings cache, for diagnostics.
// ExpiresAt and Setting are nil whenever Cached is false.
type CacheStats struct {
	Cached    bool
	ExpiresAt *time.Time
	Setting   *WaktuAbsensiSetting
}
