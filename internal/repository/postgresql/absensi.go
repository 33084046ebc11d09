package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/absensi"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/database"
)

type absensiRepositoryImpl struct {
	db *database.DB
}

func NewAbsensiRepository(db *database.DB) absensi.AbsensiRepository {
	return &absensiRepositoryImpl{db: db}
}

const absensiColumns = `
	a.id, a.siswa_id, a.tanggal, a.waktu_masuk, a.waktu_pulang,
	a.status, a.menit_terlambat, a.created_at, a.updated_at,
	u.name, u.nis
`

func scanAbsensi(row pgx.Row) (absensi.Absensi, error) {
	var a absensi.Absensi
	err := row.Scan(
		&a.ID, &a.SiswaID, &a.Tanggal, &a.WaktuMasuk, &a.WaktuPulang,
		&a.Status, &a.MenitTerlambat, &a.CreatedAt, &a.UpdatedAt,
		&a.SiswaName, &a.SiswaNIS,
	)
	return a, err
}

// Create implements absensi.AbsensiRepository.
func (r *absensiRepositoryImpl) Create(ctx context.Context, a absensi.Absensi) (absensi.Absensi, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absensi (
			id, siswa_id, tanggal, waktu_masuk, waktu_pulang,
			status, menit_terlambat, created_at, updated_at
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, siswa_id, tanggal, waktu_masuk, waktu_pulang,
				  status, menit_terlambat, created_at, updated_at
	`

	var created absensi.Absensi
	err := q.QueryRow(ctx, query,
		a.SiswaID, a.Tanggal, a.WaktuMasuk, a.WaktuPulang, a.Status, a.MenitTerlambat,
	).Scan(
		&created.ID, &created.SiswaID, &created.Tanggal, &created.WaktuMasuk, &created.WaktuPulang,
		&created.Status, &created.MenitTerlambat, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return absensi.Absensi{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// GetBySiswaAndDate implements absensi.AbsensiRepository.
func (r *absensiRepositoryImpl) GetBySiswaAndDate(ctx context.Context, siswaID string, tanggal string) (absensi.Absensi, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absensiColumns + `
		FROM absensi a
		JOIN users u ON u.id = a.siswa_id
		WHERE a.siswa_id = $1 AND a.tanggal = $2
	`

	a, err := scanAbsensi(q.QueryRow(ctx, query, siswaID, tanggal))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absensi.Absensi{}, err
		}
		return absensi.Absensi{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a, nil
}

// Update implements absensi.AbsensiRepository.
func (r *absensiRepositoryImpl) Update(ctx context.Context, a absensi.Absensi) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absensi
		SET waktu_pulang = $1, status = $2, menit_terlambat = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, a.WaktuPulang, a.Status, a.MenitTerlambat, a.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absensi.ErrAbsensiNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// ListBySiswa implements absensi.AbsensiRepository.
func (r *absensiRepositoryImpl) ListBySiswa(ctx context.Context, siswaID string, filter absensi.ListFilter) ([]absensi.Absensi, int64, error) {
	filter.SiswaID = siswaID
	return r.List(ctx, filter)
}

// List implements absensi.AbsensiRepository.
func (r *absensiRepositoryImpl) List(ctx context.Context, filter absensi.ListFilter) ([]absensi.Absensi, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.SiswaID != "" {
		conditions = append(conditions, fmt.Sprintf("a.siswa_id = $%d", argIdx))
		args = append(args, filter.SiswaID)
		argIdx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.tanggal >= $%d", argIdx))
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.tanggal <= $%d", argIdx))
		args = append(args, filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := "SELECT COUNT(*) FROM absensi a WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM absensi a
		JOIN users u ON u.id = a.siswa_id
		WHERE %s
		ORDER BY a.tanggal DESC, u.name ASC
		LIMIT $%d OFFSET $%d
	`, absensiColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var result []absensi.Absensi
	for rows.Next() {
		a, err := scanAbsensi(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return result, total, nil
}

// BulkMarkAbsent implements absensi.AbsensiRepository.
func (r *absensiRepositoryImpl) BulkMarkAbsent(ctx context.Context, tanggal string, markedAt time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absensi (id, siswa_id, tanggal, status, created_at, updated_at)
		SELECT gen_random_uuid(), u.id, $1, $2, $3, $3
		FROM users u
		WHERE u.role = 'STUDENT'
		  AND NOT EXISTS (
			SELECT 1 FROM absensi a WHERE a.siswa_id = u.id AND a.tanggal = $1
		  )
	`

	tag, err := q.Exec(ctx, query, tanggal, absensi.StatusAbsen, markedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert absent records: %w", err)
	}

	return tag.RowsAffected(), nil
}
