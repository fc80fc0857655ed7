// Package server wires and runs the application's web server.
//
// It owns the HTTP listener lifecycle together with everything that has to
// stop with it: startup, signal handling, background workers and graceful
// shutdown of the service layer.
package server
