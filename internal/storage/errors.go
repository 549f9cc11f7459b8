package storage

import "errors"

// Sentinel errors for the storage layer. Callers should match them with
// errors.Is.
var (
	// ErrParse signals that stored or imported data is not a valid
	// document. A missing document is not a parse error; it yields the
	// default document instead.
	ErrParse = errors.New("failed to parse document")

	// ErrQuotaExceeded signals that the substrate ran out of space while
	// writing. Other substrate write failures propagate unchanged.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)
