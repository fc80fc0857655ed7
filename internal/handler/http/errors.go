// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSession is returned when a handler that needs a browser session
	// runs without the session middleware having set one.
	ErrNoSession = errors.New("no session in request context")

	// ErrUnknownPage is returned by render for a template that was never
	// parsed.
	ErrUnknownPage = errors.New("unknown page")
)
