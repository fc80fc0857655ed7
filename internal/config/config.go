// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for bg-remover.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the notification lifetime.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listener and browser session settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote inference service settings. The prefix is
	// FAL_ so that the credential is read from the conventional FAL_KEY.
	Adapter Adapter `envPrefix:"FAL_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// NotificationTTL is how long a notification stays visible before it is
	// removed automatically.
	// Env: APP_NOTIFICATION_TTL
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL"`
}

// Server holds network, timeout and session settings for the web server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading and writing
	// a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionTTL is the idle time after which a browser session and its view
	// state are evicted.
	// Env: SERVER_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`
}

// Adapter holds configuration for the remote background-removal service.
type Adapter struct {
	// Key is the API credential sent as "Authorization: Key <Key>".
	// Env: FAL_KEY
	Key string `env:"KEY"`

	// BaseURL is the queue endpoint of the inference provider.
	// Env: FAL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Model is the model identifier appended to BaseURL on submit.
	// Env: FAL_MODEL
	Model string `env:"MODEL"`

	// RequestTimeout bounds a whole removal job: submit, polling and
	// fetching the result.
	// Env: FAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PollInterval is the delay between two status polls.
	// Env: FAL_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often idle sessions are evicted.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to every field still empty after the merge.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
