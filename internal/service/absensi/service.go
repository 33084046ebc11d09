package absensi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/absensi"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/timezone"
	settingService "github.com/pkl-smk/pkl-backend-go/internal/service/setting"
)

// toleransiTerlambat is how far into the masuk window a student may check
// in before the record is marked TERLAMBAT.
const toleransiTerlambat = 15 * time.Minute

type AbsensiServiceImpl struct {
	absensi.AbsensiRepository
	settingCache *settingService.Cache
	clock        timezone.Clock
}

func NewAbsensiService(
	absensiRepo absensi.AbsensiRepository,
	settingCache *settingService.Cache,
	clock timezone.Clock,
) absensi.AbsensiService {
	return &AbsensiServiceImpl{
		AbsensiRepository: absensiRepo,
		settingCache:      settingCache,
		clock:             clock,
	}
}

func siswaIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	siswaID, ok := claims["user_id"].(string)
	if !ok || siswaID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return siswaID, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("15:04:05")
	return &format
}

func toResponse(a absensi.Absensi) absensi.AbsensiResponse {
	return absensi.AbsensiResponse{
		ID:             a.ID,
		SiswaID:        a.SiswaID,
		SiswaName:      a.SiswaName,
		SiswaNIS:       a.SiswaNIS,
		Tanggal:        a.Tanggal.Format("2006-01-02"),
		WaktuMasuk:     timePtrToString(a.WaktuMasuk),
		WaktuPulang:    timePtrToString(a.WaktuPulang),
		Status:         a.Status,
		MenitTerlambat: a.MenitTerlambat,
	}
}

// CheckIn implements absensi.AbsensiService.
func (s *AbsensiServiceImpl) CheckIn(ctx context.Context, req absensi.CheckInRequest) (absensi.AbsensiResponse, error) {
	siswaID, err := siswaIDFromContext(ctx)
	if err != nil {
		return absensi.AbsensiResponse{}, err
	}

	active, err := s.settingCache.GetActive(ctx)
	if err != nil {
		return absensi.AbsensiResponse{}, err
	}

	nowLocal := s.clock.Now()
	if !setting.IsSubmissionAllowed(setting.PeriodMasuk, nowLocal, active) {
		return absensi.AbsensiResponse{}, &absensi.OutsideWindowError{
			Attempted: setting.PeriodMasuk,
			Current:   setting.CurrentPeriod(nowLocal, active),
		}
	}

	tanggal := nowLocal.Format("2006-01-02")
	_, err = s.AbsensiRepository.GetBySiswaAndDate(ctx, siswaID, tanggal)
	if err == nil {
		return absensi.AbsensiResponse{}, absensi.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return absensi.AbsensiResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	// TERLAMBAT past the tolerance, measured from window open
	windowOpen := time.Date(
		nowLocal.Year(), nowLocal.Month(), nowLocal.Day(),
		active.JamMasukMulai.Hour(), active.JamMasukMulai.Minute(), active.JamMasukMulai.Second(), 0,
		nowLocal.Location(),
	)

	status := absensi.StatusHadir
	var menitTerlambat *int
	if nowLocal.After(windowOpen.Add(toleransiTerlambat)) {
		status = absensi.StatusTerlambat
		late := int(math.Floor(nowLocal.Sub(windowOpen).Minutes()))
		menitTerlambat = &late
	}

	created, err := s.AbsensiRepository.Create(ctx, absensi.Absensi{
		SiswaID:        siswaID,
		Tanggal:        time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, nowLocal.Location()),
		WaktuMasuk:     &nowLocal,
		Status:         status,
		MenitTerlambat: menitTerlambat,
	})
	if err != nil {
		return absensi.AbsensiResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return toResponse(created), nil
}

// CheckOut implements absensi.AbsensiService.
func (s *AbsensiServiceImpl) CheckOut(ctx context.Context, req absensi.CheckOutRequest) (absensi.AbsensiResponse, error) {
	siswaID, err := siswaIDFromContext(ctx)
	if err != nil {
		return absensi.AbsensiResponse{}, err
	}

	active, err := s.settingCache.GetActive(ctx)
	if err != nil {
		return absensi.AbsensiResponse{}, err
	}

	nowLocal := s.clock.Now()
	if !setting.IsSubmissionAllowed(setting.PeriodPulang, nowLocal, active) {
		return absensi.AbsensiResponse{}, &absensi.OutsideWindowError{
			Attempted: setting.PeriodPulang,
			Current:   setting.CurrentPeriod(nowLocal, active),
		}
	}

	tanggal := nowLocal.Format("2006-01-02")
	record, err := s.AbsensiRepository.GetBySiswaAndDate(ctx, siswaID, tanggal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absensi.AbsensiResponse{}, absensi.ErrNotCheckedIn
		}
		return absensi.AbsensiResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if record.WaktuMasuk == nil {
		return absensi.AbsensiResponse{}, absensi.ErrNotCheckedIn
	}
	if record.WaktuPulang != nil {
		return absensi.AbsensiResponse{}, absensi.ErrAlreadyCheckedOut
	}

	record.WaktuPulang = &nowLocal
	if err := s.AbsensiRepository.Update(ctx, record); err != nil {
		return absensi.AbsensiResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toResponse(record), nil
}

// TodayStatus implements absensi.AbsensiService.
func (s *AbsensiServiceImpl) TodayStatus(ctx context.Context) (absensi.TodayStatusResponse, error) {
	siswaID, err := siswaIDFromContext(ctx)
	if err != nil {
		return absensi.TodayStatusResponse{}, err
	}

	active, err := s.settingCache.GetActive(ctx)
	if err != nil {
		return absensi.TodayStatusResponse{}, err
	}

	nowLocal := s.clock.Now()
	period := setting.CurrentPeriod(nowLocal, active)

	resp := absensi.TodayStatusResponse{
		Period:     string(period),
		CanMasuk:   period == setting.PeriodMasuk,
		CanPulang:  period == setting.PeriodPulang,
		ServerTime: nowLocal.Format(time.RFC3339),
		JamMasuk:   fmt.Sprintf("%s - %s", active.JamMasukMulai.Format("15:04:05"), active.JamMasukSelesai.Format("15:04:05")),
		JamPulang:  fmt.Sprintf("%s - %s", active.JamPulangMulai.Format("15:04:05"), active.JamPulangSelesai.Format("15:04:05")),
	}

	record, err := s.AbsensiRepository.GetBySiswaAndDate(ctx, siswaID, nowLocal.Format("2006-01-02"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resp, nil
		}
		return absensi.TodayStatusResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	converted := toResponse(record)
	resp.Absensi = &converted

	// Can't submit again for a window already used today.
	if record.WaktuMasuk != nil {
		resp.CanMasuk = false
	}
	if record.WaktuPulang != nil {
		resp.CanPulang = false
	}

	return resp, nil
}

// GetMyAbsensi implements absensi.AbsensiService.
func (s *AbsensiServiceImpl) GetMyAbsensi(ctx context.Context, filter absensi.ListFilter) (absensi.ListAbsensiResponse, error) {
	siswaID, err := siswaIDFromContext(ctx)
	if err != nil {
		return absensi.ListAbsensiResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return absensi.ListAbsensiResponse{}, err
	}

	items, total, err := s.AbsensiRepository.ListBySiswa(ctx, siswaID, filter)
	if err != nil {
		return absensi.ListAbsensiResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return buildListResponse(items, total, filter), nil
}

// ListAbsensi implements absensi.AbsensiService.
func (s *AbsensiServiceImpl) ListAbsensi(ctx context.Context, filter absensi.ListFilter) (absensi.ListAbsensiResponse, error) {
	if err := filter.Validate(); err != nil {
		return absensi.ListAbsensiResponse{}, err
	}

	items, total, err := s.AbsensiRepository.List(ctx, filter)
	if err != nil {
		return absensi.ListAbsensiResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return buildListResponse(items, total, filter), nil
}

func buildListResponse(items []absensi.Absensi, total int64, filter absensi.ListFilter) absensi.ListAbsensiResponse {
	resp := absensi.ListAbsensiResponse{
		Items:      make([]absensi.AbsensiResponse, 0, len(items)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, a := range items {
		resp.Items = append(resp.Items, toResponse(a))
	}
	return resp
}
