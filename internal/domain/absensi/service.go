package absensi

import (
	"context"
)

// AbsensiService defines business logic for attendance submissions.
type AbsensiService interface {
	// CheckIn records a masuk submission for the authenticated student,
	// gated by the active attendance window.
	CheckIn(ctx context.Context, req CheckInRequest) (AbsensiResponse, error)

	// CheckOut records a pulang submission for the authenticated student.
	CheckOut(ctx context.Context, req CheckOutRequest) (AbsensiResponse, error)

	// TodayStatus reports the open window and today's record for the
	// authenticated student.
	TodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// GetMyAbsensi retrieves the authenticated student's history.
	GetMyAbsensi(ctx context.Context, filter ListFilter) (ListAbsensiResponse, error)

	// ListAbsensi retrieves records across students (guru/admin).
	ListAbsensi(ctx context.Context, filter ListFilter) (ListAbsensiResponse, error)
}
