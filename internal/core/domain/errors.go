package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested baseline does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputMissing indicates no file was supplied for an operation
	// that requires one.
	ErrInputMissing = errors.New("no file selected")

	// ErrDigestFailure indicates the underlying read/hash primitive failed.
	ErrDigestFailure = errors.New("digest computation failed")

	// ErrPersistence indicates the baseline store could not be read or
	// written. Surfaced to the user, never swallowed.
	ErrPersistence = errors.New("baseline store failure")
)
