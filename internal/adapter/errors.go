package adapter

import "errors"

var (
	// ErrRemovalFailed wraps every error returned by RemoveBackground.
	ErrRemovalFailed = errors.New("background removal failed")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable input")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrEmptyRequestID = errors.New("queue response has no request id")
	ErrEmptyResult    = errors.New("result has no image url")
	ErrRemoteJob      = errors.New("remote job failed")
)
