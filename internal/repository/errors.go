package repository

import (
	"errors"
	"fmt"
)

// Common repository errors. Implementations map driver-level failures to
// these so the service layer never inspects driver errors.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry means the write violated a unique constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// Per-resource not-found errors. Each wraps ErrNotFound but stays a
// distinct value, so a user-not-found can never satisfy a check for a
// missing note.
var (
	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrNoteNotFound    = fmt.Errorf("%w: note", ErrNotFound)
	ErrSpeciesNotFound = fmt.Errorf("%w: species", ErrNotFound)
)
