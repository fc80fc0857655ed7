package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSubmissionAborted is the outcome of a submission that ended
	// without reaching the remote service, e.g. because its session was
	// reset before the call started.
	ErrSubmissionAborted = errors.New("submission aborted")

	// ErrSubmissionPanicked is the outcome of a submission whose remote
	// call panicked.
	ErrSubmissionPanicked = errors.New("submission panicked")

	// ErrNotificationServiceClosed is returned by Notify once Close has
	// stopped the expiry timers.
	ErrNotificationServiceClosed = errors.New("notification service is closed")
)
