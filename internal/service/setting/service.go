package setting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	repo  setting.SettingRepository
	cache *Cache
}

func NewSettingService(repo setting.SettingRepository, cache *Cache) setting.SettingService {
	return &SettingServiceImpl{
		repo:  repo,
		cache: cache,
	}
}

// GetActive implements setting.SettingService.
func (s *SettingServiceImpl) GetActive(ctx context.Context) (setting.SettingResponse, error) {
	active, err := s.cache.GetActive(ctx)
	if err != nil {
		return setting.SettingResponse{}, err
	}
	return setting.ToResponse(active), nil
}

// Update implements setting.SettingService. The cache is invalidated
// synchronously after a successful write, before the response is returned,
// so no later read in this process can observe the pre-update windows.
func (s *SettingServiceImpl) Update(ctx context.Context, req setting.UpdateSettingRequest) (setting.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.SettingResponse{}, err
	}

	masukMulai, masukSelesai, pulangMulai, pulangSelesai, err := req.Windows()
	if err != nil {
		return setting.SettingResponse{}, err
	}

	active, err := s.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.SettingResponse{}, setting.ErrNotConfigured
		}
		return setting.SettingResponse{}, fmt.Errorf("failed to find active setting: %w", err)
	}

	updated, err := s.repo.Update(ctx, active.ID, masukMulai, masukSelesai, pulangMulai, pulangSelesai, req.Version)
	if err != nil {
		return setting.SettingResponse{}, err
	}

	s.cache.Invalidate()
	slog.Info("Attendance windows updated",
		"setting_id", updated.ID,
		"version", updated.Version)

	return setting.ToResponse(updated), nil
}

// EnsureDefault implements setting.SettingService. Seeds the configuration
// with the standard school windows when the table has no active row.
func (s *SettingServiceImpl) EnsureDefault(ctx context.Context) (setting.SettingResponse, error) {
	active, err := s.repo.FindActive(ctx)
	if err == nil {
		return setting.ToResponse(active), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return setting.SettingResponse{}, fmt.Errorf("failed to find active setting: %w", err)
	}

	seeded, err := s.repo.Create(ctx, setting.WaktuAbsensiSetting{
		JamMasukMulai:    timeOfDay(7, 0, 0),
		JamMasukSelesai:  timeOfDay(10, 0, 0),
		JamPulangMulai:   timeOfDay(13, 0, 0),
		JamPulangSelesai: timeOfDay(17, 0, 0),
		IsActive:         true,
	})
	if err != nil {
		return setting.SettingResponse{}, fmt.Errorf("failed to seed default setting: %w", err)
	}

	s.cache.Invalidate()
	slog.Info("Seeded default attendance windows", "setting_id", seeded.ID)

	return setting.ToResponse(seeded), nil
}

// CacheStats implements setting.SettingService.
func (s *SettingServiceImpl) CacheStats() setting.CacheStatsResponse {
	return setting.StatsToResponse(s.cache.Stats())
}

func timeOfDay(hour, min, sec int) time.Time {
	return time.Date(0, 1, 1, hour, min, sec, 0, time.UTC)
}
