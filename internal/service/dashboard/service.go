package dashboard

import (
	"context"
	"fmt"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/dashboard"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/user"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/timezone"
)

const trendDays = 7

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	userRepo      user.UserRepository
	clock         timezone.Clock
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	userRepo user.UserRepository,
	clock timezone.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		userRepo:      userRepo,
		clock:         clock,
	}
}

// AdminStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) AdminStats(ctx context.Context) (dashboard.AdminStatsResponse, error) {
	now := s.clock.Now()
	today := now.Format("2006-01-02")

	totalSiswa, err := s.userRepo.CountSiswa(ctx)
	if err != nil {
		return dashboard.AdminStatsResponse{}, fmt.Errorf("failed to count students: %w", err)
	}

	hadir, terlambat, absen, err := s.dashboardRepo.CountAbsensiByStatus(ctx, today)
	if err != nil {
		return dashboard.AdminStatsResponse{}, fmt.Errorf("failed to count attendance: %w", err)
	}

	jurnalCount, err := s.dashboardRepo.CountJurnalOnDate(ctx, today)
	if err != nil {
		return dashboard.AdminStatsResponse{}, fmt.Errorf("failed to count journal entries: %w", err)
	}

	startDate := now.AddDate(0, 0, -(trendDays - 1)).Format("2006-01-02")
	trend, err := s.dashboardRepo.AttendanceTrend(ctx, startDate, today)
	if err != nil {
		return dashboard.AdminStatsResponse{}, fmt.Errorf("failed to load attendance trend: %w", err)
	}

	belumAbsen := totalSiswa - hadir - terlambat - absen
	if belumAbsen < 0 {
		belumAbsen = 0
	}

	return dashboard.AdminStatsResponse{
		TotalSiswa:       totalSiswa,
		HadirHariIni:     hadir,
		TerlambatHariIni: terlambat,
		AbsenHariIni:     absen,
		BelumAbsen:       belumAbsen,
		JurnalHariIni:    jurnalCount,
		TrenKehadiran:    trend,
	}, nil
}
