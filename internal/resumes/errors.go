package resumes

import "errors"

var (
	// ErrNotFound is returned when a draft does not exist for the owner.
	ErrNotFound = errors.New("resume not found")
	// ErrInvalidInput is returned for malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")
)
