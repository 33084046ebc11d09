package setting

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSettingRepo serves a fixed active row and counts fetches.
type fakeSettingRepo struct {
	mu         sync.Mutex
	active     *setting.WaktuAbsensiSetting
	findErr    error
	findCalls  atomic.Int64
	updateErr  error
	lastUpdate struct {
		id              string
		expectedVersion int
	}
}

func (f *fakeSettingRepo) FindActive(ctx context.Context) (setting.WaktuAbsensiSetting, error) {
	f.findCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return setting.WaktuAbsensiSetting{}, f.findErr
	}
	if f.active == nil {
		return setting.WaktuAbsensiSetting{}, pgx.ErrNoRows
	}
	return *f.active, nil
}

func (f *fakeSettingRepo) Create(ctx context.Context, s setting.WaktuAbsensiSetting) (setting.WaktuAbsensiSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = "seeded"
	s.Version = 1
	f.active = &s
	return s, nil
}

func (f *fakeSettingRepo) Update(ctx context.Context, id string, masukMulai, masukSelesai, pulangMulai, pulangSelesai time.Time, expectedVersion int) (setting.WaktuAbsensiSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdate.id = id
	f.lastUpdate.expectedVersion = expectedVersion
	if f.updateErr != nil {
		return setting.WaktuAbsensiSetting{}, f.updateErr
	}
	if f.active == nil || f.active.Version != expectedVersion {
		return setting.WaktuAbsensiSetting{}, setting.ErrVersionConflict
	}
	updated := *f.active
	updated.JamMasukMulai = masukMulai
	updated.JamMasukSelesai = masukSelesai
	updated.JamPulangMulai = pulangMulai
	updated.JamPulangSelesai = pulangSelesai
	updated.Version++
	updated.UpdatedAt = time.Now()
	f.active = &updated
	return updated, nil
}

func activeFixture() *setting.WaktuAbsensiSetting {
	return &setting.WaktuAbsensiSetting{
		ID:               "setting-1",
		JamMasukMulai:    timeOfDay(7, 0, 0),
		JamMasukSelesai:  timeOfDay(10, 0, 0),
		JamPulangMulai:   timeOfDay(13, 0, 0),
		JamPulangSelesai: timeOfDay(17, 0, 0),
		IsActive:         true,
		Version:          3,
	}
}

func TestCache_ReadThrough_FetchesOnce(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	cache := NewCache(repo, 5*time.Minute)
	ctx := context.Background()

	first, err := cache.GetActive(ctx)
	require.NoError(t, err)

	second, err := cache.GetActive(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), repo.findCalls.Load())
}

func TestCache_ExpiredEntry_TriggersRefetch(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	cache := NewCache(repo, 5*time.Minute)
	ctx := context.Background()

	_, err := cache.GetActive(ctx)
	require.NoError(t, err)

	// Force the entry past its expiry.
	cache.mu.Lock()
	cache.expiresAt = time.Now().Add(-time.Second)
	cache.mu.Unlock()

	_, err = cache.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), repo.findCalls.Load())
}

func TestCache_Invalidate_ClearsAllStates(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	cache := NewCache(repo, 5*time.Minute)
	ctx := context.Background()

	// Already empty: idempotent.
	cache.Invalidate()
	stats := cache.Stats()
	assert.False(t, stats.Cached)
	assert.Nil(t, stats.ExpiresAt)
	assert.Nil(t, stats.Setting)

	// Populated.
	_, err := cache.GetActive(ctx)
	require.NoError(t, err)
	require.True(t, cache.Stats().Cached)

	cache.Invalidate()
	stats = cache.Stats()
	assert.False(t, stats.Cached)
	assert.Nil(t, stats.ExpiresAt)
	assert.Nil(t, stats.Setting)

	// Next read goes to the store again.
	_, err = cache.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), repo.findCalls.Load())
}

func TestCache_CleanExpired(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	cache := NewCache(repo, 5*time.Minute)
	ctx := context.Background()

	_, err := cache.GetActive(ctx)
	require.NoError(t, err)

	// Entry still valid: CleanExpired leaves it alone.
	cache.CleanExpired()
	assert.True(t, cache.Stats().Cached)

	// Entry past expiry: CleanExpired clears it.
	cache.mu.Lock()
	cache.expiresAt = time.Now().Add(-time.Second)
	cache.mu.Unlock()

	cache.CleanExpired()
	stats := cache.Stats()
	assert.False(t, stats.Cached)
	assert.Nil(t, stats.ExpiresAt)
	assert.Nil(t, stats.Setting)

	// Empty cache: no-op.
	cache.CleanExpired()
	assert.False(t, cache.Stats().Cached)
}

func TestCache_Stats_NeverFetches(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	cache := NewCache(repo, 5*time.Minute)

	stats := cache.Stats()
	assert.False(t, stats.Cached)
	assert.Equal(t, int64(0), repo.findCalls.Load())
}

func TestCache_NotConfigured(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{}
	cache := NewCache(repo, 5*time.Minute)

	_, err := cache.GetActive(context.Background())
	assert.ErrorIs(t, err, setting.ErrNotConfigured)
	assert.False(t, cache.Stats().Cached)
}

func TestCache_StoreErrorPropagates(t *testing.T) {
	t.Parallel()
	storeErr := errors.New("connection refused")
	repo := &fakeSettingRepo{findErr: storeErr}
	cache := NewCache(repo, 5*time.Minute)

	_, err := cache.GetActive(context.Background())
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, cache.Stats().Cached)
}

func TestCache_ConcurrentReads(t *testing.T) {
	t.Parallel()
	repo := &fakeSettingRepo{active: activeFixture()}
	cache := NewCache(repo, 5*time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := cache.GetActive(ctx)
			assert.NoError(t, err)
			assert.Equal(t, "setting-1", got.ID)
		}()
	}
	wg.Wait()

	assert.True(t, cache.Stats().Cached)
}
