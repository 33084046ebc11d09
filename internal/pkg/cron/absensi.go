package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/absensi"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/timezone"
	settingService "github.com/pkl-smk/pkl-backend-go/internal/service/setting"
)

type AbsensiJobs struct {
	absensiRepo  absensi.AbsensiRepository
	settingCache *settingService.Cache
	clock        timezone.Clock
}

func NewAbsensiJobs(
	absensiRepo absensi.AbsensiRepository,
	settingCache *settingService.Cache,
	clock timezone.Clock,
) *AbsensiJobs {
	return &AbsensiJobs{
		absensiRepo:  absensiRepo,
		settingCache: settingCache,
		clock:        clock,
	}
}

func (j *AbsensiJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("clean_expired_setting_cache", 1*time.Minute, j.CleanExpiredSettingCache)
	scheduler.AddJob("mark_absent_students", 1*time.Hour, j.MarkAbsentStudents)
}

// CleanExpiredSettingCache sweeps the attendance-window cache. The cache
// also drops expired entries on read; this tick just keeps diagnostics
// honest during quiet hours.
func (j *AbsensiJobs) CleanExpiredSettingCache(ctx context.Context) error {
	j.settingCache.CleanExpired()
	return nil
}

// MarkAbsentStudents writes ABSEN rows for every student without an
// attendance record for yesterday.
func (j *AbsensiJobs) MarkAbsentStudents(ctx context.Context) error {
	nowLocal := j.clock.Now()

	// Only run in the first hour after local midnight
	if nowLocal.Hour() != 0 {
		return nil
	}

	yesterday := nowLocal.AddDate(0, 0, -1).Format("2006-01-02")

	slog.Info("Cron: Starting mark absent students job", "tanggal", yesterday)

	marked, err := j.absensiRepo.BulkMarkAbsent(ctx, yesterday, nowLocal)
	if err != nil {
		return fmt.Errorf("failed to bulk mark absent students: %w", err)
	}

	slog.Info("Cron: Marked absent students", "tanggal", yesterday, "count", marked)
	return nil
}
