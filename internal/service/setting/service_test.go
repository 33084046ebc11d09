package setting

import (
	"context"
	"testing"
	"time"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(repo *fakeSettingRepo) (setting.SettingService, *Cache) {
	cache := NewCache(repo, 5*time.Minute)
	return NewSettingService(repo, cache), cache
}

func TestSettingService_Update_Success_InvalidatesCache(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	svc, cache := newTestService(repo)
	ctx := context.Background()

	// Warm the cache first.
	_, err := cache.GetActive(ctx)
	require.NoError(t, err)
	require.True(t, cache.Stats().Cached)

	updated, err := svc.Update(ctx, setting.UpdateSettingRequest{
		JamMasukMulai:    "06:30:00",
		JamMasukSelesai:  "09:00:00",
		JamPulangMulai:   "14:00:00",
		JamPulangSelesai: "16:30:00",
		Version:          3,
	})
	require.NoError(t, err)

	assert.Equal(t, "06:30:00", updated.JamMasukMulai)
	assert.Equal(t, 4, updated.Version)

	// Invalidation happened before Update returned.
	assert.False(t, cache.Stats().Cached)

	// The next read observes the new windows.
	fresh, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "06:30:00", fresh.JamMasukMulai)
	assert.Equal(t, 4, fresh.Version)
}

func TestSettingService_Update_MalformedTime(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	svc, _ := newTestService(repo)

	_, err := svc.Update(context.Background(), setting.UpdateSettingRequest{
		JamMasukMulai:    "seven",
		JamMasukSelesai:  "09:00:00",
		JamPulangMulai:   "14:00:00",
		JamPulangSelesai: "16:30:00",
		Version:          3,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "jam_masuk_mulai")
}

func TestSettingService_Update_InvalidWindow(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	svc, _ := newTestService(repo)

	// masuk start after masuk end
	_, err := svc.Update(context.Background(), setting.UpdateSettingRequest{
		JamMasukMulai:    "10:00:00",
		JamMasukSelesai:  "07:00:00",
		JamPulangMulai:   "14:00:00",
		JamPulangSelesai: "16:30:00",
		Version:          3,
	})
	assert.ErrorIs(t, err, setting.ErrInvalidWindow)

	// degenerate zero-length pulang window
	_, err = svc.Update(context.Background(), setting.UpdateSettingRequest{
		JamMasukMulai:    "07:00:00",
		JamMasukSelesai:  "10:00:00",
		JamPulangMulai:   "14:00:00",
		JamPulangSelesai: "14:00:00",
		Version:          3,
	})
	assert.ErrorIs(t, err, setting.ErrInvalidWindow)
}

func TestSettingService_Update_VersionConflict(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()} // stored version is 3
	svc, cache := newTestService(repo)
	ctx := context.Background()

	_, err := cache.GetActive(ctx)
	require.NoError(t, err)

	_, err = svc.Update(ctx, setting.UpdateSettingRequest{
		JamMasukMulai:    "06:30:00",
		JamMasukSelesai:  "09:00:00",
		JamPulangMulai:   "14:00:00",
		JamPulangSelesai: "16:30:00",
		Version:          2, // stale
	})
	assert.ErrorIs(t, err, setting.ErrVersionConflict)

	// A failed write does not clear the cache.
	assert.True(t, cache.Stats().Cached)
}

func TestSettingService_Update_NotConfigured(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{}
	svc, _ := newTestService(repo)

	_, err := svc.Update(context.Background(), setting.UpdateSettingRequest{
		JamMasukMulai:    "06:30:00",
		JamMasukSelesai:  "09:00:00",
		JamPulangMulai:   "14:00:00",
		JamPulangSelesai: "16:30:00",
		Version:          0,
	})
	assert.ErrorIs(t, err, setting.ErrNotConfigured)
}

func TestSettingService_EnsureDefault_SeedsOnce(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{}
	svc, _ := newTestService(repo)
	ctx := context.Background()

	seeded, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, "07:00:00", seeded.JamMasukMulai)
	assert.True(t, seeded.IsActive)

	// Second call returns the existing row untouched.
	again, err := svc.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, again.ID)
	assert.Equal(t, seeded.Version, again.Version)
}

func TestSettingService_CacheStats_Shape(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	svc, cache := newTestService(repo)

	stats := svc.CacheStats()
	assert.False(t, stats.Cached)
	assert.Nil(t, stats.ExpiresAt)
	assert.Nil(t, stats.Setting)

	_, err := cache.GetActive(context.Background())
	require.NoError(t, err)

	stats = svc.CacheStats()
	assert.True(t, stats.Cached)
	require.NotNil(t, stats.ExpiresAt)
	require.NotNil(t, stats.Setting)
	assert.Equal(t, "setting-1", stats.Setting.ID)
	assert.Equal(t, "07:00:00", stats.Setting.JamMasukMulai)
}
