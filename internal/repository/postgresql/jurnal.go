package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/jurnal"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/database"
)

type jurnalRepositoryImpl struct {
	db *database.DB
}

func NewJurnalRepository(db *database.DB) jurnal.JurnalRepository {
	return &jurnalRepositoryImpl{db: db}
}

// Create implements jurnal.JurnalRepository.
func (r *jurnalRepositoryImpl) Create(ctx context.Context, j jurnal.Jurnal) (jurnal.Jurnal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jurnal (id, siswa_id, tanggal, kegiatan, dokumentasi_url, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, siswa_id, tanggal, kegiatan, dokumentasi_url, created_at, updated_at
	`

	var created jurnal.Jurnal
	err := q.QueryRow(ctx, query, j.SiswaID, j.Tanggal, j.Kegiatan, j.DokumentasiURL).Scan(
		&created.ID, &created.SiswaID, &created.Tanggal, &created.Kegiatan,
		&created.DokumentasiURL, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return jurnal.Jurnal{}, fmt.Errorf("failed to create journal entry: %w", err)
	}

	return created, nil
}

// GetByID implements jurnal.JurnalRepository.
func (r *jurnalRepositoryImpl) GetByID(ctx context.Context, id string) (jurnal.Jurnal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.siswa_id, j.tanggal, j.kegiatan, j.dokumentasi_url,
			   j.created_at, j.updated_at, u.name
		FROM jurnal j
		JOIN users u ON u.id = j.siswa_id
		WHERE j.id = $1
	`

	var j jurnal.Jurnal
	err := q.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.SiswaID, &j.Tanggal, &j.Kegiatan, &j.DokumentasiURL,
		&j.CreatedAt, &j.UpdatedAt, &j.SiswaName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jurnal.Jurnal{}, err
		}
		return jurnal.Jurnal{}, fmt.Errorf("failed to get journal entry: %w", err)
	}

	comments, err := r.listComments(ctx, id)
	if err != nil {
		return jurnal.Jurnal{}, err
	}
	j.Komentar = comments

	return j, nil
}

func (r *jurnalRepositoryImpl) listComments(ctx context.Context, jurnalID string) ([]jurnal.Komentar, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT k.id, k.jurnal_id, k.guru_id, k.isi, k.created_at, u.name
		FROM jurnal_komentar k
		JOIN users u ON u.id = k.guru_id
		WHERE k.jurnal_id = $1
		ORDER BY k.created_at ASC
	`

	rows, err := q.Query(ctx, query, jurnalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal comments: %w", err)
	}
	defer rows.Close()

	var comments []jurnal.Komentar
	for rows.Next() {
		var k jurnal.Komentar
		if err := rows.Scan(&k.ID, &k.JurnalID, &k.GuruID, &k.Isi, &k.CreatedAt, &k.GuruName); err != nil {
			return nil, fmt.Errorf("failed to scan journal comment: %w", err)
		}
		comments = append(comments, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal comments: %w", err)
	}

	return comments, nil
}

// GetBySiswaAndDate implements jurnal.JurnalRepository.
func (r *jurnalRepositoryImpl) GetBySiswaAndDate(ctx context.Context, siswaID string, tanggal string) (jurnal.Jurnal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, siswa_id, tanggal, kegiatan, dokumentasi_url, created_at, updated_at
		FROM jurnal
		WHERE siswa_id = $1 AND tanggal = $2
	`

	var j jurnal.Jurnal
	err := q.QueryRow(ctx, query, siswaID, tanggal).Scan(
		&j.ID, &j.SiswaID, &j.Tanggal, &j.Kegiatan, &j.DokumentasiURL, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jurnal.Jurnal{}, err
		}
		return jurnal.Jurnal{}, fmt.Errorf("failed to get journal entry by date: %w", err)
	}

	return j, nil
}

// Update implements jurnal.JurnalRepository.
func (r *jurnalRepositoryImpl) Update(ctx context.Context, j jurnal.Jurnal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jurnal
		SET kegiatan = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, j.Kegiatan, j.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jurnal.ErrJurnalNotFound
		}
		return fmt.Errorf("failed to update journal entry: %w", err)
	}

	return nil
}

// ListBySiswa implements jurnal.JurnalRepository.
func (r *jurnalRepositoryImpl) ListBySiswa(ctx context.Context, siswaID string, filter jurnal.ListFilter) ([]jurnal.Jurnal, int64, error) {
	return r.list(ctx, "j.siswa_id = $1", siswaID, filter)
}

// ListByGuru implements jurnal.JurnalRepository.
func (r *jurnalRepositoryImpl) ListByGuru(ctx context.Context, guruID string, filter jurnal.ListFilter) ([]jurnal.Jurnal, int64, error) {
	return r.list(ctx, "u.guru_id = $1", guruID, filter)
}

func (r *jurnalRepositoryImpl) list(ctx context.Context, scope string, scopeArg string, filter jurnal.ListFilter) ([]jurnal.Jurnal, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{scope}
	args := []interface{}{scopeArg}
	argIdx := 2

	if filter.SiswaID != "" {
		conditions = append(conditions, fmt.Sprintf("j.siswa_id = $%d", argIdx))
		args = append(args, filter.SiswaID)
		argIdx++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("j.tanggal >= $%d", argIdx))
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("j.tanggal <= $%d", argIdx))
		args = append(args, filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `
		SELECT COUNT(*)
		FROM jurnal j
		JOIN users u ON u.id = j.siswa_id
		WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count journal entries: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT j.id, j.siswa_id, j.tanggal, j.kegiatan, j.dokumentasi_url,
			   j.created_at, j.updated_at, u.name
		FROM jurnal j
		JOIN users u ON u.id = j.siswa_id
		WHERE %s
		ORDER BY j.tanggal DESC, u.name ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var result []jurnal.Jurnal
	for rows.Next() {
		var j jurnal.Jurnal
		if err := rows.Scan(
			&j.ID, &j.SiswaID, &j.Tanggal, &j.Kegiatan, &j.DokumentasiURL,
			&j.CreatedAt, &j.UpdatedAt, &j.SiswaName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		result = append(result, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate journal entries: %w", err)
	}

	return result, total, nil
}

// AddComment implements jurnal.JurnalRepository.
func (r *jurnalRepositoryImpl) AddComment(ctx context.Context, k jurnal.Komentar) (jurnal.Komentar, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jurnal_komentar (id, jurnal_id, guru_id, isi, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW())
		RETURNING id, jurnal_id, guru_id, isi, created_at
	`

	var created jurnal.Komentar
	err := q.QueryRow(ctx, query, k.JurnalID, k.GuruID, k.Isi).Scan(
		&created.ID, &created.JurnalID, &created.GuruID, &created.Isi, &created.CreatedAt,
	)
	if err != nil {
		return jurnal.Komentar{}, fmt.Errorf("failed to add journal comment: %w", err)
	}

	return created, nil
}
