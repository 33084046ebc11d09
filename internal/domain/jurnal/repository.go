package jurnal

import "context"

// JurnalRepository defines data access for journal entries and comments.
type JurnalRepository interface {
	Create(ctx context.Context, j Jurnal) (Jurnal, error)

	// GetByID retrieves an entry with its comments.
	GetByID(ctx context.Context, id string) (Jurnal, error)

	// GetBySiswaAndDate is used to enforce one entry per student per day.
	// Returns pgx.ErrNoRows when absent.
	GetBySiswaAndDate(ctx context.Context, siswaID string, tanggal string) (Jurnal, error)

	Update(ctx context.Context, j Jurnal) error

	// ListBySiswa retrieves one student's entries, newest first.
	ListBySiswa(ctx context.Context, siswaID string, filter ListFilter) ([]Jurnal, int64, error)

	// ListByGuru retrieves entries of all students supervised by a teacher.
	ListByGuru(ctx context.Context, guruID string, filter ListFilter) ([]Jurnal, int64, error)

	// AddComment appends a teacher comment to an entry.
	AddComment(ctx context.Context, k Komentar) (Komentar, error)
}
