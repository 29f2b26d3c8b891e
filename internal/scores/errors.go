package scores

import "errors"

var (
	// ErrInvalidInput is returned for malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedDocument is returned for uploads that are neither PDF nor DOCX.
	ErrUnsupportedDocument = errors.New("unsupported document")
	// ErrTooLarge is returned for uploads over MaxUploadSize.
	ErrTooLarge = errors.New("document too large")
	// ErrUnreadable is returned when a document cannot be decoded.
	ErrUnreadable = errors.New("document could not be read")
	// ErrNoText is returned when a document yields no readable text.
	ErrNoText = errors.New("no text found in document")
)
