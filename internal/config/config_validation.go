// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults are applied, so only explicitly broken values are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.NotificationTTL <= 0 {
		return fmt.Errorf("%w: notification ttl must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.SessionTTL <= 0 {
		return ErrInvalidServerConfigs
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must include scheme and host", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	if strings.Trim(cfg.Adapter.Model, "/") == "" {
		return fmt.Errorf("%w: model is empty", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PollInterval <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
