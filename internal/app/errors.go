package app

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is returned when the source document lacks an expected key
	ErrMissingKey = errors.New("missing key")

	// ErrDigestMismatch is returned by Verify when the output file differs from a fresh build
	ErrDigestMismatch = errors.New("output digest mismatch")
)

// ParseError reports a date string that is not in YYYYMMDD form
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("%s: invalid date %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func missingKey(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingKey, path)
}
