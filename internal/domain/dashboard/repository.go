package dashboard

import "context"

// DashboardRepository defines the aggregation queries behind the admin
// dashboard. Dates are YYYY-MM-DD strings in the business timezone.
type DashboardRepository interface {
	// CountAbsensiByStatus tallies attendance records on one day per status.
	CountAbsensiByStatus(ctx context.Context, tanggal string) (hadir, terlambat, absen int64, err error)

	// CountJurnalOnDate counts journal entries written for one day.
	CountJurnalOnDate(ctx context.Context, tanggal string) (int64, error)

	// AttendanceTrend returns daily tallies for an inclusive date range.
	AttendanceTrend(ctx context.Context, startDate, endDate string) ([]DailyCount, error)
}
