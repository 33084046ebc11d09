package jurnal

import "errors"

// Jurnal domain errors
var (
	ErrJurnalNotFound      = errors.New("journal entry not found")
	ErrJurnalExistsForDate = errors.New("a journal entry already exists for this date")
	ErrNotOwner            = errors.New("you can only modify your own journal entries")
	ErrNotSupervisor       = errors.New("you can only comment on journals of your supervised students")
)
