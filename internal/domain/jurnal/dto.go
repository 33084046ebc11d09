package jurnal

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/pkl-smk/pkl-backend-go/internal/pkg/validator"
)

// ========================================
// JURNAL DTOs
// ========================================

type CreateJurnalRequest struct {
	Tanggal  string `json:"tanggal"`
	Kegiatan string `json:"kegiatan"`

	// Optional documentation photo, attached by the handler.
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateJurnalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Tanggal) {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal",
			Message: "tanggal is required",
		})
	} else if _, ok := validator.IsValidDate(r.Tanggal); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal",
			Message: "tanggal must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Kegiatan) {
		errs = append(errs, validator.ValidationError{
			Field:   "kegiatan",
			Message: "kegiatan is required",
		})
	} else if len(r.Kegiatan) < 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "kegiatan",
			Message: "kegiatan must be at least 10 characters",
		})
	}

	if r.FileHeader != nil {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "documentation photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJurnalRequest struct {
	ID       string `json:"-"`
	Kegiatan string `json:"kegiatan"`
}

func (r *UpdateJurnalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Kegiatan) {
		errs = append(errs, validator.ValidationError{
			Field:   "kegiatan",
			Message: "kegiatan is required",
		})
	} else if len(r.Kegiatan) < 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "kegiatan",
			Message: "kegiatan must be at least 10 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CommentRequest struct {
	JurnalID string `json:"-"`
	Isi      string `json:"isi"`
}

func (r *CommentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Isi) {
		errs = append(errs, validator.ValidationError{
			Field:   "isi",
			Message: "isi is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	SiswaID   string
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

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

type KomentarResponse struct {
	ID        string  `json:"id"`
	GuruID    string  `json:"guru_id"`
	GuruName  *string `json:"guru_name,omitempty"`
	Isi       string  `json:"isi"`
	CreatedAt string  `json:"created_at"`
}

type JurnalResponse struct {
	ID             string             `json:"id"`
	SiswaID        string             `json:"siswa_id"`
	SiswaName      *string            `json:"siswa_name,omitempty"`
	Tanggal        string             `json:"tanggal"`
	Kegiatan       string             `json:"kegiatan"`
	DokumentasiURL *string            `json:"dokumentasi_url"`
	Komentar       []KomentarResponse `json:"komentar,omitempty"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

type ListJurnalResponse struct {
	Items      []JurnalResponse `json:"items"`
	TotalItems int64            `json:"total_items"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// ToResponse converts the entity to its API shape.
func ToResponse(j Jurnal) JurnalResponse {
	resp := JurnalResponse{
		ID:             j.ID,
		SiswaID:        j.SiswaID,
		SiswaName:      j.SiswaName,
		Tanggal:        j.Tanggal.Format("2006-01-02"),
		Kegiatan:       j.Kegiatan,
		DokumentasiURL: j.DokumentasiURL,
		CreatedAt:      j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      j.UpdatedAt.Format(time.RFC3339),
	}
	for _, k := range j.Komentar {
		resp.Komentar = append(resp.Komentar, KomentarResponse{
			ID:        k.ID,
			GuruID:    k.GuruID,
			GuruName:  k.GuruName,
			Isi:       k.Isi,
			CreatedAt: k.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
