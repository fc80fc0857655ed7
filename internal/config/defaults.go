// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultVersion         = "dev"
	DefaultLogLevel        = "debug"
	DefaultNotificationTTL = 5 * time.Second

	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultSessionTTL     = 30 * time.Minute

	DefaultFalBaseURL        = "https://queue.fal.run"
	DefaultFalModel          = "fal-ai/imageutils/rembg"
	DefaultFalRequestTimeout = 2 * time.Minute
	DefaultFalPollInterval   = 500 * time.Millisecond

	DefaultSweepInterval = time.Minute
)

// applyDefaults fills every zero field of cfg with its default value.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.Version, DefaultVersion)
	setDefault(&cfg.App.LogLevel, DefaultLogLevel)
	setDefault(&cfg.App.NotificationTTL, DefaultNotificationTTL)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.SessionTTL, DefaultSessionTTL)

	setDefault(&cfg.Adapter.BaseURL, DefaultFalBaseURL)
	setDefault(&cfg.Adapter.Model, DefaultFalModel)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultFalRequestTimeout)
	setDefault(&cfg.Adapter.PollInterval, DefaultFalPollInterval)

	setDefault(&cfg.Workers.SweepInterval, DefaultSweepInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
