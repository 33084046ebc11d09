package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/database"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepositoryImpl{db: db}
}

// FindActive implements setting.SettingRepository.
func (r *settingRepositoryImpl) FindActive(ctx context.Context) (setting.WaktuAbsensiSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, jam_masuk_mulai, jam_masuk_selesai, jam_pulang_mulai,
			   jam_pulang_selesai, is_active, version, created_at, updated_at
		FROM waktu_absensi_settings
		WHERE is_active = TRUE
	`

	var s setting.WaktuAbsensiSetting
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.JamMasukMulai, &s.JamMasukSelesai, &s.JamPulangMulai,
		&s.JamPulangSelesai, &s.IsActive, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.WaktuAbsensiSetting{}, err
		}
		return setting.WaktuAbsensiSetting{}, fmt.Errorf("failed to find active attendance setting: %w", err)
	}

	return s, nil
}

// Create implements setting.SettingRepository.
func (r *settingRepositoryImpl) Create(ctx context.Context, s setting.WaktuAbsensiSetting) (setting.WaktuAbsensiSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO waktu_absensi_settings (
			id, jam_masuk_mulai, jam_masuk_selesai, jam_pulang_mulai,
			jam_pulang_selesai, is_active, version, created_at, updated_at
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, 1, NOW(), NOW())
		RETURNING id, jam_masuk_mulai, jam_masuk_selesai, jam_pulang_mulai,
				  jam_pulang_selesai, is_active, version, created_at, updated_at
	`

	var created setting.WaktuAbsensiSetting
	err := q.QueryRow(ctx, query,
		s.JamMasukMulai, s.JamMasukSelesai, s.JamPulangMulai, s.JamPulangSelesai, s.IsActive,
	).Scan(
		&created.ID, &created.JamMasukMulai, &created.JamMasukSelesai, &created.JamPulangMulai,
		&created.JamPulangSelesai, &created.IsActive, &created.Version, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return setting.WaktuAbsensiSetting{}, fmt.Errorf("failed to create attendance setting: %w", err)
	}

	return created, nil
}

// Update implements setting.SettingRepository. The WHERE clause carries the
// compare-and-swap: no row matches when another admin's write bumped the
// version first, and that no-row result maps to ErrVersionConflict.
func (r *settingRepositoryImpl) Update(ctx context.Context, id string, masukMulai, masukSelesai, pulangMulai, pulangSelesai time.Time, expectedVersion int) (setting.WaktuAbsensiSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE waktu_absensi_settings
		SET jam_masuk_mulai = $1, jam_masuk_selesai = $2, jam_pulang_mulai = $3,
			jam_pulang_selesai = $4, version = version + 1, updated_at = NOW()
		WHERE id = $5 AND version = $6
		RETURNING id, jam_masuk_mulai, jam_masuk_selesai, jam_pulang_mulai,
				  jam_pulang_selesai, is_active, version, created_at, updated_at
	`

	var updated setting.WaktuAbsensiSetting
	err := q.QueryRow(ctx, query,
		masukMulai, masukSelesai, pulangMulai, pulangSelesai, id, expectedVersion,
	).Scan(
		&updated.ID, &updated.JamMasukMulai, &updated.JamMasukSelesai, &updated.JamPulangMulai,
		&updated.JamPulangSelesai, &updated.IsActive, &updated.Version, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.WaktuAbsensiSetting{}, setting.ErrVersionConflict
		}
		return setting.WaktuAbsensiSetting{}, fmt.Errorf("failed to update attendance setting: %w", err)
	}

	return updated, nil
}
