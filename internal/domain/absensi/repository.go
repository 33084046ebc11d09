package absensi

import (
	"context"
	"time"
)

// AbsensiRepository defines data access for attendance records. Dates are
// passed as YYYY-MM-DD strings already rendered in the business timezone,
// so the store never re-derives "today".
type AbsensiRepository interface {
	// Create inserts a new attendance record.
	Create(ctx context.Context, a Absensi) (Absensi, error)

	// GetBySiswaAndDate retrieves a student's record for one day. Used to
	// prevent double check-in. Returns pgx.ErrNoRows when absent.
	GetBySiswaAndDate(ctx context.Context, siswaID string, tanggal string) (Absensi, error)

	// Update rewrites waktu_pulang and status for an existing record.
	Update(ctx context.Context, a Absensi) error

	// ListBySiswa retrieves one student's history, newest first.
	ListBySiswa(ctx context.Context, siswaID string, filter ListFilter) ([]Absensi, int64, error)

	// List retrieves records across students with filters (guru/admin).
	List(ctx context.Context, filter ListFilter) ([]Absensi, int64, error)

	// BulkMarkAbsent inserts ABSEN rows for every active student without a
	// record on tanggal, returning how many were written.
	BulkMarkAbsent(ctx context.Context, tanggal string, markedAt time.Time) (int64, error)
}
