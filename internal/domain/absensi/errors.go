package absensi

import (
	"errors"
	"fmt"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/setting"
)

// Absensi domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrAbsensiNotFound   = errors.New("attendance record not found")
	ErrUnauthorized      = errors.New("unauthorized to access this attendance record")
)

// OutsideWindowError rejects a submission made outside its window and
// carries the period that is actually open right now, so the handler can
// tell the student what is (or is not) possible at the moment.
type OutsideWindowError struct {
	Attempted setting.AttendancePeriod
	Current   setting.AttendancePeriod
}

func (e *OutsideWindowError) Error() string {
	if e.Current == setting.PeriodTutup {
		return fmt.Sprintf("%s is not open right now, attendance is closed", e.Attempted.Label())
	}
	return fmt.Sprintf("%s is not open right now, current period is %s", e.Attempted.Label(), e.Current.Label())
}
