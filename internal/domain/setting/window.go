package setting

import "time"

// AttendancePeriod is the window a given instant falls into.
type AttendancePeriod string

const (
	PeriodMasuk  AttendancePeriod = "MASUK"
	PeriodPulang AttendancePeriod = "PULANG"
	PeriodTutup  AttendancePeriod = "TUTUP"
)

// Label returns the Indonesian display name used in user-facing messages.
func (p AttendancePeriod) Label() string {
	switch p {
	case PeriodMasuk:
		return "absen masuk"
	case PeriodPulang:
		return "absen pulang"
	default:
		return "tutup"
	}
}

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// CurrentPeriod classifies now against the configured windows. Window starts
// are inclusive, ends exclusive, so a boundary instant belongs to exactly
// one period. Comparison is on time of day only; the windows repeat daily.
// The masuk window is checked first, which is the tie-break if an admin
// manages to configure overlapping windows.
func CurrentPeriod(now time.Time, s WaktuAbsensiSetting) AttendancePeriod {
	tod := secondsOfDay(now)

	if tod >= secondsOfDay(s.JamMasukMulai) && tod < secondsOfDay(s.JamMasukSelesai) {
		return PeriodMasuk
	}
	if tod >= secondsOfDay(s.JamPulangMulai) && tod < secondsOfDay(s.JamPulangSelesai) {
		return PeriodPulang
	}
	return PeriodTutup
}

// IsSubmissionAllowed reports whether an attendance submission of the given
// type is permitted at now. A PULANG submission during the MASUK window is
// rejected, and vice versa.
func IsSubmissionAllowed(attempted AttendancePeriod, now time.Time, s WaktuAbsensiSetting) bool {
	return CurrentPeriod(now, s) == attempted
}
