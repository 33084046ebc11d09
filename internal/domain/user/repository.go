package user

import "context"

// UserRepository defines data access for accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListSiswaByGuru retrieves the students supervised by a teacher.
	ListSiswaByGuru(ctx context.Context, guruID string) ([]User, error)

	// CountSiswa returns the number of student accounts.
	CountSiswa(ctx context.Context) (int64, error)

	// LinkGoogleAccount attaches a Google OAuth identity to the account
	// with the matching email.
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
