package response

import (
	"errors"
	"net/http"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/absensi"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/auth"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/jurnal"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/user"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A submission outside its window carries the open period, surface it
	var windowErr *absensi.OutsideWindowError
	if errors.As(err, &windowErr) {
		BadRequest(w, windowErr.Error(), map[string]string{
			"current_period": string(windowErr.Current),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthEmailUnknown):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, err.Error(), nil)

	// Setting domain errors
	case errors.Is(err, setting.ErrNotConfigured):
		NotFound(w, err.Error())
	case errors.Is(err, setting.ErrInvalidWindow):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, setting.ErrVersionConflict):
		Conflict(w, err.Error())
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, err.Error())

	// Absensi domain errors
	case errors.Is(err, absensi.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, absensi.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, absensi.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, absensi.ErrAbsensiNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, absensi.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Jurnal domain errors
	case errors.Is(err, jurnal.ErrJurnalNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, jurnal.ErrJurnalExistsForDate):
		Conflict(w, err.Error())
	case errors.Is(err, jurnal.ErrNotOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, jurnal.ErrNotSupervisor):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrGuruAccessRequired),
		errors.Is(err, user.ErrSiswaAccessRequired):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
