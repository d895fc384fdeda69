package leave

import "errors"

// Domain-specific errors for the leave package.
var (
	ErrEmptyLine        = errors.New("line is empty")
	ErrParseMismatch    = errors.New("line matches no leave pattern")
	ErrMissingSeparator = errors.New("line has no person separator")
	ErrMissingPerson    = errors.New("person is missing")
	ErrInvertedRange    = errors.New("date range start is after end")
	ErrUnresolvedDate   = errors.New("cancellation carries a date that could not be resolved")
	ErrInvalidPolicy    = errors.New("unknown duplicate key policy")
	ErrEmptyText        = errors.New("text is empty")
)
