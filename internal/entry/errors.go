package entry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern is returned when a Regex or Wildmatch pattern cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownVariant is returned when decoding a name variant that does not
	// exist or was not compiled into this build.
	ErrUnknownVariant = errors.New("unknown entry name variant")
)

// PatternError describes a pattern that failed to compile.
type PatternError struct {
	Variant string // Variant tag, e.g. "Regex"
	Pattern string // Pattern as supplied by the caller
	Err     error  // Underlying compiler error
}

// Error implements the error interface for PatternError.
func (e *PatternError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", e.Variant, e.Pattern, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Variant, e.Pattern, ErrInvalidPattern)
}

// Unwrap returns the underlying compiler error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidPattern as a match so callers need not know the
// compiler's own error types.
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}
