package store

import "errors"

// Sentinel errors returned by [SessionStorage] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSubmissionInFlight is returned when a submission is started while
	// the previous one of the same session is still loading.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrStaleSubmission is returned when a submission tries to update a
	// session that was reset or evicted after the submission began. The
	// update is dropped.
	ErrStaleSubmission = errors.New("stale submission")

	// ErrEmptySessionID is returned for an empty session id.
	ErrEmptySessionID = errors.New("empty session id")
)
