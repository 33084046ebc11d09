package file

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/storage"
)

// FileService stores uploaded documents and hands back servable URLs.
type FileService interface {
	// UploadJurnalDokumentasi stores a journal documentation photo and
	// returns its public URL.
	UploadJurnalDokumentasi(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
}

type FileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) FileService {
	return &FileServiceImpl{storage: fileStorage}
}

func (s *FileServiceImpl) UploadJurnalDokumentasi(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("jurnal/%s%s", uuid.New().String(), ext)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path, err := s.storage.Upload(ctx, file, key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload documentation photo: %w", err)
	}

	url, err := s.storage.GetURL(ctx, path, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to build documentation URL: %w", err)
	}
	return url, nil
}
