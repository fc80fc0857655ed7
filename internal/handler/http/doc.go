// Package http implements the web transport layer of the application.
//
// It exposes route wiring, the HTML pages of the background remover, a small
// JSON API over the same view state, and the middleware that runs before a
// request reaches the service layer: panic recovery, request tracing, access
// logging, response compression and browser sessions.
package http
