package setting

import (
	"time"

	"github.com/pkl-smk/pkl-backend-go/internal/pkg/validator"
)

// timeOfDayLayout is the wire format for the four jam fields.
const timeOfDayLayout = "15:04:05"

// UpdateSettingRequest carries an admin's change to the attendance windows.
// Version must equal the version the admin last read; the store rejects the
// write otherwise.
type UpdateSettingRequest struct {
	JamMasukMulai    string `json:"jam_masuk_mulai"`
	JamMasukSelesai  string `json:"jam_masuk_selesai"`
	JamPulangMulai   string `json:"jam_pulang_mulai"`
	JamPulangSelesai string `json:"jam_pulang_selesai"`
	Version          int    `json:"version"`
}

func (r *UpdateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	fields := []struct {
		name  string
		value string
	}{
		{"jam_masuk_mulai", r.JamMasukMulai},
		{"jam_masuk_selesai", r.JamMasukSelesai},
		{"jam_pulang_mulai", r.JamPulangMulai},
		{"jam_pulang_selesai", r.JamPulangSelesai},
	}

	for _, f := range fields {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " is required",
			})
			continue
		}
		if _, ok := validator.ParseTimeOfDay(f.value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: "must be a valid time in HH:mm:ss format",
			})
		}
	}

	if r.Version < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "version",
			Message: "version must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Windows parses the four jam fields. Validate must have passed. Returns
// ErrInvalidWindow when either window has start >= end; the windows are
// deliberately not cross-checked for overlap (the evaluator's first-match
// rule handles that case).
func (r *UpdateSettingRequest) Windows() (masukMulai, masukSelesai, pulangMulai, pulangSelesai time.Time, err error) {
	masukMulai, _ = validator.ParseTimeOfDay(r.JamMasukMulai)
	masukSelesai, _ = validator.ParseTimeOfDay(r.JamMasukSelesai)
	pulangMulai, _ = validator.ParseTimeOfDay(r.JamPulangMulai)
	pulangSelesai, _ = validator.ParseTimeOfDay(r.JamPulangSelesai)

	if !masukMulai.Before(masukSelesai) || !pulangMulai.Before(pulangSelesai) {
		err = ErrInvalidWindow
		return
	}
	return
}

// SettingResponse is the API shape of the active configuration.
type SettingResponse struct {
	ID               string `json:"id"`
	JamMasukMulai    string `json:"jam_masuk_mulai"`
	JamMasukSelesai  string `json:"jam_masuk_selesai"`
	JamPulangMulai   string `json:"jam_pulang_mulai"`
	JamPulangSelesai string `json:"jam_pulang_selesai"`
	IsActive         bool   `json:"is_active"`
	Version          int    `json:"version"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// ToResponse converts the entity to its API shape.
func ToResponse(s WaktuAbsensiSetting) SettingResponse {
	return SettingResponse{
		ID:               s.ID,
		JamMasukMulai:    s.JamMasukMulai.Format(timeOfDayLayout),
		JamMasukSelesai:  s.JamMasukSelesai.Format(timeOfDayLayout),
		JamPulangMulai:   s.JamPulangMulai.Format(timeOfDayLayout),
		JamPulangSelesai: s.JamPulangSelesai.Format(timeOfDayLayout),
		IsActive:         s.IsActive,
		Version:          s.Version,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
}

// CacheStatsResponse is the diagnostics shape returned by the admin
// cache-stats endpoint.
type CacheStatsResponse struct {
	Cached    bool             `json:"cached"`
	ExpiresAt *string          `json:"expires_at"`
	Setting   *SettingResponse `json:"setting"`
}

// StatsToResponse converts a cache snapshot to its API shape.
func StatsToResponse(stats CacheStats) CacheStatsResponse {
	resp := CacheStatsResponse{Cached: stats.Cached}
	if stats.ExpiresAt != nil {
		formatted := stats.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &formatted
	}
	if stats.Setting != nil {
		converted := ToResponse(*stats.Setting)
		resp.Setting = &converted
	}
	return resp
}
