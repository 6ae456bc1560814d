// Package apperr holds the sentinel errors shared across the service and
// transport layers. Handlers map these to HTTP statuses; callers must not
// learn anything more specific than the category.
package apperr

import "errors"

var (
	// ErrUnauthenticated covers every credential failure: missing,
	// malformed and expired tokens all collapse into this one error so
	// the response cannot be used to probe which check failed.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound is returned both when a note does not exist and when
	// it exists under another owner. The two cases must stay
	// indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyActive rejects re-entrant voice capture starts.
	ErrAlreadyActive = errors.New("capture session already active")

	// ErrStorage wraps backend persistence faults.
	ErrStorage = errors.New("storage failure")
)
