package absensi

import (
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/validator"
)

// ========================================
// ABSENSI DTOs
// ========================================

// CheckInRequest and CheckOutRequest carry no body fields today; the
// student identity comes from the JWT claims and the timestamp from the
// business clock. Kept as structs so location or photo proof can be added
// without breaking the handler contract.
type CheckInRequest struct{}

type CheckOutRequest struct{}

type ListFilter struct {
	SiswaID   string
	Status    string
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{StatusHadir, StatusTerlambat, StatusAbsen}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of HADIR, TERLAMBAT, ABSEN",
		})
	}

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AbsensiResponse struct {
	ID             string  `json:"id"`
	SiswaID        string  `json:"siswa_id"`
	SiswaName      *string `json:"siswa_name,omitempty"`
	SiswaNIS       *string `json:"siswa_nis,omitempty"`
	Tanggal        string  `json:"tanggal"`
	WaktuMasuk     *string `json:"waktu_masuk"`
	WaktuPulang    *string `json:"waktu_pulang"`
	Status         string  `json:"status"`
	MenitTerlambat *int    `json:"menit_terlambat,omitempty"`
}

type ListAbsensiResponse struct {
	Items      []AbsensiResponse `json:"items"`
	TotalItems int64             `json:"total_items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// TodayStatusResponse tells a student which window is open right now and
// whether they already submitted.
type TodayStatusResponse struct {
	Period     string           `json:"period"`
	CanMasuk   bool             `json:"can_masuk"`
	CanPulang  bool             `json:"can_pulang"`
	Absensi    *AbsensiResponse `json:"absensi"`
	ServerTime string           `json:"server_time"`
	JamMasuk   string           `json:"jam_masuk"`
	JamPulang  string           `json:"jam_pulang"`
}
