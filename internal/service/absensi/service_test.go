package absensi

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/absensi"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/timezone"
	settingService "github.com/pkl-smk/pkl-backend-go/internal/service/setting"
)

var wib = time.FixedZone("WIB", 7*3600)

func tod(h, m, s int) time.Time {
	return time.Date(2000, time.January, 1, h, m, s, 0, time.UTC)
}

func activeSetting() setting.WaktuAbsensiSetting {
	return setting.WaktuAbsensiSetting{
		ID:               "setting-1",
		JamMasukMulai:    tod(7, 0, 0),
		JamMasukSelesai:  tod(10, 0, 0),
		JamPulangMulai:   tod(13, 0, 0),
		JamPulangSelesai: tod(17, 0, 0),
		IsActive:         true,
		Version:          1,
	}
}

type fakeSettingRepo struct {
	active *setting.WaktuAbsensiSetting
}

func (r *fakeSettingRepo) FindActive(ctx context.Context) (setting.WaktuAbsensiSetting, error) {
	if r.active == nil {
		return setting.WaktuAbsensiSetting{}, pgx.ErrNoRows
	}
	return *r.active, nil
}

func (r *fakeSettingRepo) Create(ctx context.Context, s setting.WaktuAbsensiSetting) (setting.WaktuAbsensiSetting, error) {
	r.active = &s
	return s, nil
}

func (r *fakeSettingRepo) Update(ctx context.Context, id string, masukMulai, masukSelesai, pulangMulai, pulangSelesai time.Time, expectedVersion int) (setting.WaktuAbsensiSetting, error) {
	return *r.active, nil
}

type fakeAbsensiRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]absensi.Absensi
}

func newFakeAbsensiRepo() *fakeAbsensiRepo {
	return &fakeAbsensiRepo{records: make(map[string]absensi.Absensi)}
}

func (r *fakeAbsensiRepo) key(siswaID, tanggal string) string {
	return siswaID + "|" + tanggal
}

func (r *fakeAbsensiRepo) Create(ctx context.Context, a absensi.Absensi) (absensi.Absensi, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	a.ID = fmt.Sprintf("absensi-%d", r.seq)
	r.records[r.key(a.SiswaID, a.Tanggal.Format("2006-01-02"))] = a
	return a, nil
}

func (r *fakeAbsensiRepo) GetBySiswaAndDate(ctx context.Context, siswaID string, tanggal string) (absensi.Absensi, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.records[r.key(siswaID, tanggal)]
	if !ok {
		return absensi.Absensi{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *fakeAbsensiRepo) Update(ctx context.Context, a absensi.Absensi) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[r.key(a.SiswaID, a.Tanggal.Format("2006-01-02"))] = a
	return nil
}

func (r *fakeAbsensiRepo) ListBySiswa(ctx context.Context, siswaID string, filter absensi.ListFilter) ([]absensi.Absensi, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []absensi.Absensi
	for _, a := range r.records {
		if a.SiswaID == siswaID {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeAbsensiRepo) List(ctx context.Context, filter absensi.ListFilter) ([]absensi.Absensi, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []absensi.Absensi
	for _, a := range r.records {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAbsensiRepo) BulkMarkAbsent(ctx context.Context, tanggal string, markedAt time.Time) (int64, error) {
	return 0, nil
}

func authedContext(t *testing.T, siswaID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": siswaID,
		"role":    "STUDENT",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *fakeAbsensiRepo, at time.Time) absensi.AbsensiService {
	active := activeSetting()
	cache := settingService.NewCache(&fakeSettingRepo{active: &active}, 5*time.Minute)
	return NewAbsensiService(repo, cache, timezone.FixedClock{Time: at})
}

func TestCheckInWithinWindow(t *testing.T) {
	t.Parallel()

	repo := newFakeAbsensiRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 7, 5, 0, 0, wib))

	resp, err := svc.CheckIn(authedContext(t, "siswa-1"), absensi.CheckInRequest{})
	require.NoError(t, err)

	assert.Equal(t, absensi.StatusHadir, resp.Status)
	assert.Equal(t, "siswa-1", resp.SiswaID)
	assert.Equal(t, "2026-03-02", resp.Tanggal)
	require.NotNil(t, resp.WaktuMasuk)
	assert.Equal(t, "07:05:00", *resp.WaktuMasuk)
	assert.Nil(t, resp.MenitTerlambat)
}

func TestCheckInLateIsTerlambat(t *testing.T) {
	t.Parallel()

	repo := newFakeAbsensiRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 7, 40, 0, 0, wib))

	resp, err := svc.CheckIn(authedContext(t, "siswa-1"), absensi.CheckInRequest{})
	require.NoError(t, err)

	assert.Equal(t, absensi.StatusTerlambat, resp.Status)
	require.NotNil(t, resp.MenitTerlambat)
	assert.Equal(t, 40, *resp.MenitTerlambat)
}

func TestCheckInOutsideWindow(t *testing.T) {
	t.Parallel()

	repo := newFakeAbsensiRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 11, 30, 0, 0, wib))

	_, err := svc.CheckIn(authedContext(t, "siswa-1"), absensi.CheckInRequest{})

	var windowErr *absensi.OutsideWindowError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, setting.PeriodMasuk, windowErr.Attempted)
	assert.Equal(t, setting.PeriodTutup, windowErr.Current)
	assert.Empty(t, repo.records)
}

func TestCheckInTwiceRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeAbsensiRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 8, 0, 0, 0, wib))
	ctx := authedContext(t, "siswa-1")

	_, err := svc.CheckIn(ctx, absensi.CheckInRequest{})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, absensi.CheckInRequest{})
	assert.ErrorIs(t, err, absensi.ErrAlreadyCheckedIn)
}

func TestCheckOutRequiresCheckIn(t *testing.T) {
	t.Parallel()

	repo := newFakeAbsensiRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 13, 30, 0, 0, wib))

	_, err := svc.CheckOut(authedContext(t, "siswa-1"), absensi.CheckOutRequest{})
	assert.ErrorIs(t, err, absensi.ErrNotCheckedIn)
}

func TestCheckOutFlow(t *testing.T) {
	t.Parallel()

	repo := newFakeAbsensiRepo()
	morning := newTestService(repo, time.Date(2026, 3, 2, 8, 0, 0, 0, wib))
	afternoon := newTestService(repo, time.Date(2026, 3, 2, 16, 0, 0, 0, wib))
	ctx := authedContext(t, "siswa-1")

	_, err := morning.CheckIn(ctx, absensi.CheckInRequest{})
	require.NoError(t, err)

	resp, err := afternoon.CheckOut(ctx, absensi.CheckOutRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.WaktuPulang)
	assert.Equal(t, "16:00:00", *resp.WaktuPulang)

	_, err = afternoon.CheckOut(ctx, absensi.CheckOutRequest{})
	assert.ErrorIs(t, err, absensi.ErrAlreadyCheckedOut)
}

func TestCheckOutOutsideWindow(t *testing.T) {
	t.Parallel()

	repo := newFakeAbsensiRepo()
	morning := newTestService(repo, time.Date(2026, 3, 2, 8, 0, 0, 0, wib))
	evening := newTestService(repo, time.Date(2026, 3, 2, 18, 0, 0, 0, wib))
	ctx := authedContext(t, "siswa-1")

	_, err := morning.CheckIn(ctx, absensi.CheckInRequest{})
	require.NoError(t, err)

	_, err = evening.CheckOut(ctx, absensi.CheckOutRequest{})

	var windowErr *absensi.OutsideWindowError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, setting.PeriodPulang, windowErr.Attempted)
}

func TestTodayStatusReflectsSubmissions(t *testing.T) {
	t.Parallel()

	repo := newFakeAbsensiRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 8, 0, 0, 0, wib))
	ctx := authedContext(t, "siswa-1")

	status, err := svc.TodayStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(setting.PeriodMasuk), status.Period)
	assert.True(t, status.CanMasuk)
	assert.False(t, status.CanPulang)
	assert.Nil(t, status.Absensi)

	_, err = svc.CheckIn(ctx, absensi.CheckInRequest{})
	require.NoError(t, err)

	status, err = svc.TodayStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.CanMasuk, "window already used today")
	require.NotNil(t, status.Absensi)
	assert.Equal(t, absensi.StatusHadir, status.Absensi.Status)
}

func TestCheckInWithoutConfiguration(t *testing.T) {
	t.Parallel()

	cache := settingService.NewCache(&fakeSettingRepo{}, 5*time.Minute)
	svc := NewAbsensiService(newFakeAbsensiRepo(), cache, timezone.FixedClock{Time: time.Date(2026, 3, 2, 8, 0, 0, 0, wib)})

	_, err := svc.CheckIn(authedContext(t, "siswa-1"), absensi.CheckInRequest{})
	assert.ErrorIs(t, err, setting.ErrNotConfigured)
}

func TestCheckInWithoutClaims(t *testing.T) {
	t.Parallel()

	repo := newFakeAbsensiRepo()
	svc := newTestService(repo, time.Date(2026, 3, 2, 8, 0, 0, 0, wib))

	_, err := svc.CheckIn(context.Background(), absensi.CheckInRequest{})
	assert.Error(t, err)
}
