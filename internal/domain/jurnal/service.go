package jurnal

import "context"

// JurnalService defines business logic for activity journals.
type JurnalService interface {
	// Create records a journal entry for the authenticated student.
	Create(ctx context.Context, req CreateJurnalRequest) (JurnalResponse, error)

	// Update edits the authenticated student's own entry.
	Update(ctx context.Context, req UpdateJurnalRequest) (JurnalResponse, error)

	// Get retrieves one entry with comments, enforcing ownership or
	// supervision.
	Get(ctx context.Context, id string) (JurnalResponse, error)

	// GetMyJurnal retrieves the authenticated student's entries.
	GetMyJurnal(ctx context.Context, filter ListFilter) (ListJurnalResponse, error)

	// ListSupervised retrieves entries of the authenticated teacher's
	// students.
	ListSupervised(ctx context.Context, filter ListFilter) (ListJurnalResponse, error)

	// Comment adds a teacher comment to a supervised student's entry.
	Comment(ctx context.Context, req CommentRequest) (JurnalResponse, error)
}
