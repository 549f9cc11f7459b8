package vesper

import "errors"

// Sentinel errors for the domain layer. Match with errors.Is.
var (
	ErrUnknownPreference      = errors.New("unknown preference key")
	ErrInvalidPreferenceValue = errors.New("invalid preference value")
	ErrUnknownTagCategory     = errors.New("unknown tag category")
)
