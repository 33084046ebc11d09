package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/dashboard"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountAbsensiByStatus implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAbsensiByStatus(ctx context.Context, tanggal string) (hadir, terlambat, absen int64, err error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'HADIR'),
			COUNT(*) FILTER (WHERE status = 'TERLAMBAT'),
			COUNT(*) FILTER (WHERE status = 'ABSEN')
		FROM absensi
		WHERE tanggal = $1
	`

	if err = q.QueryRow(ctx, query, tanggal).Scan(&hadir, &terlambat, &absen); err != nil {
		err = fmt.Errorf("failed to count attendance by status: %w", err)
	}
	return
}

// CountJurnalOnDate implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountJurnalOnDate(ctx context.Context, tanggal string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM jurnal WHERE tanggal = $1`, tanggal).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

// AttendanceTrend implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) AttendanceTrend(ctx context.Context, startDate, endDate string) ([]dashboard.DailyCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tanggal::date,
			   COUNT(*) FILTER (WHERE status = 'HADIR'),
			   COUNT(*) FILTER (WHERE status = 'TERLAMBAT'),
			   COUNT(*) FILTER (WHERE status = 'ABSEN')
		FROM absensi
		WHERE tanggal BETWEEN $1 AND $2
		GROUP BY tanggal::date
		ORDER BY tanggal::date ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance trend: %w", err)
	}
	defer rows.Close()

	var result []dashboard.DailyCount
	for rows.Next() {
		var day dashboard.DailyCount
		var tanggal time.Time
		if err := rows.Scan(&tanggal, &day.Hadir, &day.Terlambat, &day.Absen); err != nil {
			return nil, fmt.Errorf("failed to scan attendance trend row: %w", err)
		}
		day.Tanggal = tanggal.Format("2006-01-02")
		result = append(result, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance trend rows: %w", err)
	}

	return result, nil
}
