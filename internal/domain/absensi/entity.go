package absensi

import (
	"time"
)

// Attendance statuses. TERLAMBAT is a check-in inside the masuk window but
// past the lateness tolerance; ABSEN rows are written by the nightly job
// for students who never checked in.
const (
	StatusHadir     = "HADIR"
	StatusTerlambat = "TERLAMBAT"
	StatusAbsen     = "ABSEN"
)

// Absensi is one student's attendance record for one school day.
type Absensi struct {
	ID             string
	SiswaID        string
	Tanggal        time.Time
	WaktuMasuk     *time.Time
	WaktuPulang    *time.Time
	Status         string
	MenitTerlambat *int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / join
	SiswaName *string
	SiswaNIS  *string
}
