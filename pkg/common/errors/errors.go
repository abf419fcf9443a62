// Package errors holds the sentinel error values shared across the
// enkiTS scheduler and its ambient packages.
package errors

import "errors"

// Common error types used across the module. The scheduling hot path
// itself (TryRunOne, the pipe's CAS transitions) never returns an error
// by design; these sentinels guard the handful of caller-visible misuse
// cases that are cheap to check outside it.
var (
	// ErrNotRunning indicates AddTaskSetToPipe or WaitForTaskSet was
	// called on a scheduler after Shutdown, when no worker remains to
	// ever drain or complete the submission.
	ErrNotRunning = errors.New("enkiTS: scheduler is not running")

	// ErrInvalidWorkerCount indicates a worker count outside [1, ...)
	// was requested.
	ErrInvalidWorkerCount = errors.New("enkiTS: worker count must be >= 1")

	// ErrNilWorkSet indicates a nil task.Set was submitted where a live
	// one was required.
	ErrNilWorkSet = errors.New("enkiTS: work set is nil")

	// ErrEmptyID indicates an identifier required to be non-empty (e.g.
	// a periodic job id) was the empty string.
	ErrEmptyID = errors.New("enkiTS: id must not be empty")

	// ErrCapacityExceeded indicates a bounded resource rejected a new
	// entry past its limit.
	ErrCapacityExceeded = errors.New("enkiTS: capacity exceeded")
)

// IsMisuse reports whether err represents caller misuse of the
// scheduler's lifecycle (as opposed to a transient condition).
func IsMisuse(err error) bool {
	return errors.Is(err, ErrNotRunning) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNilWorkSet)
}
