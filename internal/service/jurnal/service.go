package jurnal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/jurnal"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/user"
	"github.com/pkl-smk/pkl-backend-go/internal/service/file"
)

type JurnalServiceImpl struct {
	jurnal.JurnalRepository
	userRepo    user.UserRepository
	fileService file.FileService
}

func NewJurnalService(
	jurnalRepo jurnal.JurnalRepository,
	userRepo user.UserRepository,
	fileService file.FileService,
) jurnal.JurnalService {
	return &JurnalServiceImpl{
		JurnalRepository: jurnalRepo,
		userRepo:         userRepo,
		fileService:      fileService,
	}
}

func claimsFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)
	return userID, user.Role(roleStr), nil
}

// Create implements jurnal.JurnalService.
func (s *JurnalServiceImpl) Create(ctx context.Context, req jurnal.CreateJurnalRequest) (jurnal.JurnalResponse, error) {
	siswaID, _, err := claimsFromContext(ctx)
	if err != nil {
		return jurnal.JurnalResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return jurnal.JurnalResponse{}, err
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to parse tanggal: %w", err)
	}

	// One entry per student per day.
	_, err = s.JurnalRepository.GetBySiswaAndDate(ctx, siswaID, req.Tanggal)
	if err == nil {
		return jurnal.JurnalResponse{}, jurnal.ErrJurnalExistsForDate
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to check existing journal entry: %w", err)
	}

	var dokumentasiURL *string
	if req.File != nil && req.FileHeader != nil {
		url, err := s.fileService.UploadJurnalDokumentasi(ctx, req.File, req.FileHeader)
		if err != nil {
			return jurnal.JurnalResponse{}, err
		}
		dokumentasiURL = &url
	}

	created, err := s.JurnalRepository.Create(ctx, jurnal.Jurnal{
		SiswaID:        siswaID,
		Tanggal:        tanggal,
		Kegiatan:       req.Kegiatan,
		DokumentasiURL: dokumentasiURL,
	})
	if err != nil {
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to create journal entry: %w", err)
	}

	return jurnal.ToResponse(created), nil
}

// Update implements jurnal.JurnalService.
func (s *JurnalServiceImpl) Update(ctx context.Context, req jurnal.UpdateJurnalRequest) (jurnal.JurnalResponse, error) {
	siswaID, _, err := claimsFromContext(ctx)
	if err != nil {
		return jurnal.JurnalResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return jurnal.JurnalResponse{}, err
	}

	entry, err := s.JurnalRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jurnal.JurnalResponse{}, jurnal.ErrJurnalNotFound
		}
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to get journal entry: %w", err)
	}

	if entry.SiswaID != siswaID {
		return jurnal.JurnalResponse{}, jurnal.ErrNotOwner
	}

	entry.Kegiatan = req.Kegiatan
	if err := s.JurnalRepository.Update(ctx, entry); err != nil {
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to update journal entry: %w", err)
	}

	updated, err := s.JurnalRepository.GetByID(ctx, req.ID)
	if err != nil {
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to reload journal entry: %w", err)
	}
	return jurnal.ToResponse(updated), nil
}

// Get implements jurnal.JurnalService.
func (s *JurnalServiceImpl) Get(ctx context.Context, id string) (jurnal.JurnalResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return jurnal.JurnalResponse{}, err
	}

	entry, err := s.JurnalRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jurnal.JurnalResponse{}, jurnal.ErrJurnalNotFound
		}
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to get journal entry: %w", err)
	}

	switch role {
	case user.RoleAdmin:
	case user.RoleSiswa:
		if entry.SiswaID != userID {
			return jurnal.JurnalResponse{}, jurnal.ErrNotOwner
		}
	case user.RoleGuru:
		if err := s.ensureSupervises(ctx, userID, entry.SiswaID); err != nil {
			return jurnal.JurnalResponse{}, err
		}
	default:
		return jurnal.JurnalResponse{}, jurnal.ErrNotOwner
	}

	return jurnal.ToResponse(entry), nil
}

// GetMyJurnal implements jurnal.JurnalService.
func (s *JurnalServiceImpl) GetMyJurnal(ctx context.Context, filter jurnal.ListFilter) (jurnal.ListJurnalResponse, error) {
	siswaID, _, err := claimsFromContext(ctx)
	if err != nil {
		return jurnal.ListJurnalResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return jurnal.ListJurnalResponse{}, err
	}

	items, total, err := s.JurnalRepository.ListBySiswa(ctx, siswaID, filter)
	if err != nil {
		return jurnal.ListJurnalResponse{}, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return buildListResponse(items, total, filter), nil
}

// ListSupervised implements jurnal.JurnalService.
func (s *JurnalServiceImpl) ListSupervised(ctx context.Context, filter jurnal.ListFilter) (jurnal.ListJurnalResponse, error) {
	guruID, _, err := claimsFromContext(ctx)
	if err != nil {
		return jurnal.ListJurnalResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return jurnal.ListJurnalResponse{}, err
	}

	items, total, err := s.JurnalRepository.ListByGuru(ctx, guruID, filter)
	if err != nil {
		return jurnal.ListJurnalResponse{}, fmt.Errorf("failed to list supervised journal entries: %w", err)
	}

	return buildListResponse(items, total, filter), nil
}

// Comment implements jurnal.JurnalService.
func (s *JurnalServiceImpl) Comment(ctx context.Context, req jurnal.CommentRequest) (jurnal.JurnalResponse, error) {
	guruID, _, err := claimsFromContext(ctx)
	if err != nil {
		return jurnal.JurnalResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return jurnal.JurnalResponse{}, err
	}

	entry, err := s.JurnalRepository.GetByID(ctx, req.JurnalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jurnal.JurnalResponse{}, jurnal.ErrJurnalNotFound
		}
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to get journal entry: %w", err)
	}

	if err := s.ensureSupervises(ctx, guruID, entry.SiswaID); err != nil {
		return jurnal.JurnalResponse{}, err
	}

	if _, err := s.JurnalRepository.AddComment(ctx, jurnal.Komentar{
		JurnalID: req.JurnalID,
		GuruID:   guruID,
		Isi:      req.Isi,
	}); err != nil {
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to add comment: %w", err)
	}

	updated, err := s.JurnalRepository.GetByID(ctx, req.JurnalID)
	if err != nil {
		return jurnal.JurnalResponse{}, fmt.Errorf("failed to reload journal entry: %w", err)
	}
	return jurnal.ToResponse(updated), nil
}

func (s *JurnalServiceImpl) ensureSupervises(ctx context.Context, guruID, siswaID string) error {
	siswa, err := s.userRepo.GetByID(ctx, siswaID)
	if err != nil {
		return fmt.Errorf("failed to get student account: %w", err)
	}
	if siswa.GuruID == nil || *siswa.GuruID != guruID {
		return jurnal.ErrNotSupervisor
	}
	return nil
}

func buildListResponse(items []jurnal.Jurnal, total int64, filter jurnal.ListFilter) jurnal.ListJurnalResponse {
	resp := jurnal.ListJurnalResponse{
		Items:      make([]jurnal.JurnalResponse, 0, len(items)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, j := range items {
		resp.Items = append(resp.Items, jurnal.ToResponse(j))
	}
	return resp
}
