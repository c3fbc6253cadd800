package store

import "errors"

// Error taxonomy surfaced by the store. Controllers map these onto HTTP
// status codes; nothing else inspects error strings.
var (
	// ErrValidation rejects bad input before any mutation reaches the database.
	ErrValidation = errors.New("validation failed")

	// ErrConflict reports a unique-constraint violation (duplicate menu name).
	ErrConflict = errors.New("name already exists")

	// ErrNotFound reports a lookup or update of a missing record. Deleting a
	// missing record is deliberately not an error.
	ErrNotFound = errors.New("record not found")

	// ErrStorage wraps any other failure of the underlying engine.
	ErrStorage = errors.New("storage failure")
)
