// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/store"
)

// SessionSweeper drops browser sessions that have not been touched for
// idleTTL. A removal still in flight for an evicted session is discarded
// when it resolves.
type SessionSweeper struct {
	storage  store.SessionStorage
	idleTTL  time.Duration
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionSweeper(storage store.SessionStorage, idleTTL, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		storage:  storage,
		idleTTL:  idleTTL,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	s.logger.Info().
		Dur("idle_ttl", s.idleTTL).
		Dur("interval", s.interval).
		Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	evicted, err := s.storage.EvictIdle(ctx, s.now().Add(-s.idleTTL))
	if err != nil {
		s.logger.Err(err).Msg("failed to evict idle sessions")
		return
	}
	if evicted > 0 {
		s.logger.Debug().Int("evicted", evicted).Msg("idle sessions evicted")
	}
}
