package setting

import (
	"context"
	"time"
)

// SettingRepository defines data access for the attendance window
// configuration. The table holds at most one active row.
type SettingRepository interface {
	// FindActive retrieves the row with is_active = true. Returns
	// pgx.ErrNoRows when no active configuration exists.
	FindActive(ctx context.Context) (WaktuAbsensiSetting, error)

	// Create inserts a new configuration row.
	Create(ctx context.Context, s WaktuAbsensiSetting) (WaktuAbsensiSetting, error)

	// Update writes the four windows with compare-and-swap on version:
	// the row is only written when its stored version equals
	// expectedVersion, and the write bumps version by one. Returns
	// ErrVersionConflict when the CAS fails.
	Update(ctx context.Context, id string, masukMulai, masukSelesai, pulangMulai, pulangSelesai time.Time, expectedVersion int) (WaktuAbsensiSetting, error)
}
