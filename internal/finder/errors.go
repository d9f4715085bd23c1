package finder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harrison/filematcher/internal/entry"
	"github.com/harrison/filematcher/internal/fileutil"
)

// ErrNotFound is matched by the error Find returns when no entry satisfies the criterion.
var ErrNotFound = errors.New("no matching entry found")

// NotFoundError is returned by Find when every root was scanned without a match.
type NotFoundError struct {
	Criterion entry.Named // Criterion that was searched for
	Roots     []string    // Roots that were scanned, in order
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s within %s", ErrNotFound, e.Criterion, strings.Join(e.Roots, ", "))
}

// Is reports ErrNotFound as a match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ScanError reports a root or subdirectory that could not be listed.
// It unwraps to the underlying *fs.PathError.
type ScanError = fileutil.ScanError
