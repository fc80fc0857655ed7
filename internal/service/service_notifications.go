// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/internal/utils"
	"github.com/MKhiriev/bg-remover/models"
)

type notificationService struct {
	storage store.SessionStorage
	ids     *utils.UUIDGenerator
	ttl     time.Duration
	now     func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool

	logger *logger.Logger
}

func NewNotificationService(storage store.SessionStorage, cfg config.App, logger *logger.Logger) NotificationService {
	ttl := cfg.NotificationTTL
	if ttl <= 0 {
		ttl = config.DefaultNotificationTTL
	}

	return &notificationService{
		storage: storage,
		ids:     utils.NewUUIDGenerator(),
		ttl:     ttl,
		now:     time.Now,
		timers:  make(map[string]*time.Timer),
		logger:  logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, sessionID, title, description string, variant models.Variant) (models.Notification, error) {
	// the lock is held across the store write so Close cannot slip in
	// between storing the notification and arming its expiry
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.Notification{}, ErrNotificationServiceClosed
	}

	n := models.Notification{
		ID:          s.ids.Generate(),
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   s.now(),
	}

	if err := s.storage.AddNotification(ctx, sessionID, n); err != nil {
		return models.Notification{}, fmt.Errorf("error adding notification: %w", err)
	}

	s.timers[n.ID] = time.AfterFunc(s.ttl, func() { s.expire(sessionID, n.ID) })

	return n, nil
}

func (s *notificationService) expire(sessionID, id string) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	if err := s.storage.RemoveNotification(context.Background(), sessionID, id); err != nil {
		s.logger.WithSession(sessionID).Err(err).Str("notification_id", id).Msg("error expiring notification")
	}
}

func (s *notificationService) Dismiss(ctx context.Context, sessionID, id string) error {
	s.mu.Lock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	return s.storage.RemoveNotification(ctx, sessionID, id)
}

func (s *notificationService) List(ctx context.Context, sessionID string) ([]models.Notification, error) {
	return s.storage.Notifications(ctx, sessionID)
}

func (s *notificationService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
