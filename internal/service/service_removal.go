// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/bg-remover/internal/adapter"
	"github.com/MKhiriev/bg-remover/internal/app"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/internal/utils"
	"github.com/MKhiriev/bg-remover/internal/validators"
	"github.com/MKhiriev/bg-remover/models"
)

// removalService is the default implementation of [RemovalService]. It
// assumes its input has already been validated; see
// [RemovalValidationService].
type removalService struct {
	storage       store.SessionStorage
	adapter       adapter.RemovalAdapter
	notifications NotificationService

	// lifetime bounds every remote call. Requests only start submissions,
	// so their contexts must not cancel the call.
	lifetime context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	logger *logger.Logger
}

func NewRemovalService(storage store.SessionStorage, removalAdapter adapter.RemovalAdapter, notifications NotificationService, logger *logger.Logger) RemovalService {
	lifetime, cancel := context.WithCancel(context.Background())

	return &removalService{
		storage:       storage,
		adapter:       removalAdapter,
		notifications: notifications,
		lifetime:      lifetime,
		cancel:        cancel,
		logger:        logger,
	}
}

func (s *removalService) Submit(ctx context.Context, sessionID string, upload models.UploadRequest) (<-chan models.Outcome, error) {
	seq, err := s.storage.BeginSubmission(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error beginning submission: %w", err)
	}

	dataURL := utils.EncodeDataURL(validators.ContentType(upload), upload.Data)
	if err = s.storage.SetOriginalImage(ctx, sessionID, seq, dataURL); err != nil {
		return nil, fmt.Errorf("error storing original image: %w", err)
	}

	outcome := make(chan models.Outcome, 1)

	s.wg.Add(1)
	go s.remove(sessionID, seq, dataURL, outcome)

	return outcome, nil
}

// remove performs the remote call and resolves the submission. Whatever
// happens, loading is cleared and exactly one outcome is delivered.
func (s *removalService) remove(sessionID string, seq uint64, dataURL string, out chan<- models.Outcome) {
	defer s.wg.Done()
	defer close(out)

	log := s.logger.WithSession(sessionID)
	outcome := models.Outcome{Err: ErrSubmissionAborted}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("background removal panicked")
			outcome = models.Outcome{Err: fmt.Errorf("%w: %v", ErrSubmissionPanicked, r)}
		}
		s.resolve(sessionID, seq, outcome, log)
		out <- outcome
	}()

	if err := s.storage.SetPhase(s.lifetime, sessionID, seq, models.PhaseSubmitting); err != nil {
		outcome = models.Outcome{Err: fmt.Errorf("%w: %w", ErrSubmissionAborted, err)}
		return
	}

	input := models.RemovalInput{ImageURL: dataURL, SyncMode: true}
	result, err := s.adapter.RemoveBackground(s.lifetime, input, func(update models.QueueUpdate) {
		event := log.Debug().Str("status", string(update.Status)).Int("queue_position", update.QueuePosition)
		for _, line := range update.Logs {
			event = event.Str("log", line.Message)
		}
		event.Msg("removal progress")
	})
	if err != nil {
		outcome = models.Outcome{Err: err}
		return
	}

	outcome = models.Outcome{Result: &result}
}

// resolve writes the outcome into the session and raises the matching
// notification. Results of stale sessions and of a closing service are
// dropped.
func (s *removalService) resolve(sessionID string, seq uint64, outcome models.Outcome, log *logger.Logger) {
	if s.lifetime.Err() != nil {
		log.Info().Msg("service is closing, dropping removal outcome")
		return
	}

	var result *models.RemovalResult
	if outcome.Succeeded() {
		result = outcome.Result
	}

	ctx := context.Background()
	if err := s.storage.CompleteSubmission(ctx, sessionID, seq, result); err != nil {
		if errors.Is(err, store.ErrStaleSubmission) {
			log.Info().Msg("session was reset, dropping removal outcome")
			return
		}
		log.Err(err).Msg("error completing submission")
		return
	}

	var err error
	if outcome.Succeeded() {
		log.Info().Msg("background removed")
		_, err = s.notifications.Notify(ctx, sessionID, app.MsgRemovalSucceededTitle, app.MsgRemovalSucceededDescription, models.VariantDefault)
	} else {
		log.Warn().Err(outcome.Err).Msg("background removal failed")
		_, err = s.notifications.Notify(ctx, sessionID, app.MsgRemovalFailedTitle, app.MsgRemovalFailedDescription, models.VariantDestructive)
	}
	if err != nil {
		log.Err(err).Msg("error raising notification")
	}
}

func (s *removalService) State(ctx context.Context, sessionID string) (models.ViewState, error) {
	return s.storage.Get(ctx, sessionID)
}

func (s *removalService) Reset(ctx context.Context, sessionID string) error {
	s.logger.WithSession(sessionID).Debug().Msg("resetting session")
	return s.storage.Delete(ctx, sessionID)
}

func (s *removalService) Close() {
	s.cancel()
	s.wg.Wait()
}
