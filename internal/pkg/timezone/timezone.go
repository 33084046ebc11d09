// Package timezone is the single source of truth for the business-local
// clock. All attendance window decisions compare against time in the zone
// this package resolves, never against the host machine zone.
package timezone

import (
	"fmt"
	"os"
	"sync"
	"time"
)

const (
	// DefaultZone is Western Indonesian Time (WIB), the school's timezone.
	DefaultZone = "Asia/Jakarta"

	// EnvOverride names the environment variable that overrides the
	// default zone, e.g. for deployments outside Java.
	EnvOverride = "ATTENDANCE_TIMEZONE"
)

// locationCache stores loaded zone data so repeated lookups are cheap.
var locationCache sync.Map

// Resolve returns the active business timezone identifier: the environment
// override when set and non-empty, otherwise DefaultZone.
func Resolve() string {
	if zone := os.Getenv(EnvOverride); zone != "" {
		return zone
	}
	return DefaultZone
}

// Location returns the *time.Location for a zone identifier, caching zone
// data across calls.
func Location(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// Clock yields the current wall-clock time in the business timezone. It is
// the only seam through which "now" enters window evaluation, so tests can
// substitute a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewClock builds a Clock for the given zone identifier.
func NewClock(zone string) (Clock, error) {
	loc, err := Location(zone)
	if err != nil {
		return nil, err
	}
	return &systemClock{loc: loc}, nil
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always reports the same instant. Test helper.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}
