package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Default(t *testing.T) {
	t.Setenv(EnvOverride, "")

	assert.Equal(t, DefaultZone, Resolve())
}

func TestResolve_EnvOverride(t *testing.T) {
	t.Setenv(EnvOverride, "Asia/Makassar")

	assert.Equal(t, "Asia/Makassar", Resolve())
}

func TestLocation_Caches(t *testing.T) {
	first, err := Location("Asia/Jakarta")
	require.NoError(t, err)

	second, err := Location("Asia/Jakarta")
	require.NoError(t, err)

	// Same pointer after the first load.
	assert.Same(t, first, second)
}

func TestLocation_Invalid(t *testing.T) {
	_, err := Location("Not/AZone")
	assert.Error(t, err)
}

func TestNewClock_ReportsInZone(t *testing.T) {
	clock, err := NewClock("Asia/Jakarta")
	require.NoError(t, err)

	now := clock.Now()
	assert.Equal(t, "Asia/Jakarta", now.Location().String())
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	clock := FixedClock{Time: instant}

	assert.Equal(t, instant, clock.Now())
	assert.Equal(t, instant, clock.Now())
}
