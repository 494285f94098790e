// Package errors provides error classification for the sync layer.
// The push queue uses the category to decide whether a failed remote write
// may be retried.
package errors

import "fmt"

// Category determines how the push queue handles a failure.
type Category int

const (
	// Recoverable failures may be retried with exponential backoff.
	// Examples: 5xx responses, network timeouts, connection resets.
	Recoverable Category = iota

	// Irrecoverable failures fail immediately without retry.
	// Examples: 400 Bad Request, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Op names the snapshot operation that failed. The whole sync surface is two
// verbs, so the set is closed.
type Op string

const (
	// OpFetch is the whole-document GET.
	OpFetch Op = "fetch snapshot"
	// OpReplace is the whole-document PUT.
	OpReplace Op = "replace snapshot"
)

// ClassifiedError wraps a sync failure with categorization metadata.
type ClassifiedError struct {
	Op         Op
	Category   Category
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Body       string // response body excerpt for diagnostics
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s: HTTP %d", e.Category, e.Op, e.StatusCode)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Category, e.Op, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable reports whether err must not be retried.
func IsIrrecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Irrecoverable
	}
	return false
}
