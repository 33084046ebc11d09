package setting

import "errors"

// Setting domain errors
var (
	// ErrNotConfigured means no active attendance window row exists. Not
	// retryable; an administrator has to create one.
	ErrNotConfigured = errors.New("attendance window is not configured")

	// ErrInvalidWindow is a write-time validation failure: a window whose
	// start is not before its end. Rejected before persistence.
	ErrInvalidWindow = errors.New("window start time must be before end time")

	// ErrVersionConflict means the caller's expected version no longer
	// matches the stored row (lost update detected by the CAS write).
	ErrVersionConflict = errors.New("setting was modified by another admin, reload and retry")

	ErrSettingNotFound = errors.New("attendance window setting not found")
)
