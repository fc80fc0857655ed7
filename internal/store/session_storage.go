// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/models"
)

// session is the mutable record behind one browser or terminal session.
type session struct {
	state         models.ViewState
	notifications []models.Notification
	seq           uint64
	lastSeen      time.Time
}

// sessionStorage is the in-memory implementation of [SessionStorage].
//
// A single mutex guards the whole map. Critical sections are short and
// never perform I/O, so contention is negligible compared to the remote
// call that dominates a submission.
type sessionStorage struct {
	mu       sync.Mutex
	sessions map[string]*session

	// lastSeq is global so a session recreated under the same id never
	// reuses a sequence number of its predecessor.
	lastSeq uint64

	now    func() time.Time
	logger *logger.Logger
}

// NewSessionStorage returns an empty in-memory [SessionStorage].
func NewSessionStorage(logger *logger.Logger) SessionStorage {
	return newSessionStorage(logger, time.Now)
}

func newSessionStorage(logger *logger.Logger, now func() time.Time) *sessionStorage {
	logger.Debug().Msg("creating session storage")

	return &sessionStorage{
		sessions: make(map[string]*session),
		now:      now,
		logger:   logger,
	}
}

func (s *sessionStorage) Get(_ context.Context, sessionID string) (models.ViewState, error) {
	if sessionID == "" {
		return models.ViewState{}, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return models.ViewState{Phase: models.PhaseIdle}, nil
	}
	sess.lastSeen = s.now()

	return sess.state, nil
}

func (s *sessionStorage) BeginValidation(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.upsert(sessionID)
	if sess.state.IsLoading {
		return ErrSubmissionInFlight
	}

	sess.state.Phase = models.PhaseValidating
	sess.state.FieldError = ""
	return nil
}

func (s *sessionStorage) RejectSubmission(_ context.Context, sessionID string, message string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.upsert(sessionID)
	if sess.state.IsLoading {
		return ErrSubmissionInFlight
	}

	sess.state.Phase = models.PhaseRejected
	sess.state.FieldError = message
	return nil
}

func (s *sessionStorage) BeginSubmission(_ context.Context, sessionID string) (uint64, error) {
	if sessionID == "" {
		return 0, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.upsert(sessionID)
	if sess.state.IsLoading {
		return 0, ErrSubmissionInFlight
	}

	s.lastSeq++
	sess.seq = s.lastSeq
	sess.state.IsLoading = true
	sess.state.FieldError = ""
	sess.state.Phase = models.PhaseReading

	return sess.seq, nil
}

func (s *sessionStorage) SetOriginalImage(_ context.Context, sessionID string, seq uint64, dataURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(sessionID, seq)
	if err != nil {
		return err
	}

	sess.state.OriginalImage = &dataURL
	return nil
}

func (s *sessionStorage) SetPhase(_ context.Context, sessionID string, seq uint64, phase models.Phase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(sessionID, seq)
	if err != nil {
		return err
	}

	sess.state.Phase = phase
	return nil
}

func (s *sessionStorage) CompleteSubmission(_ context.Context, sessionID string, seq uint64, result *models.RemovalResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(sessionID, seq)
	if err != nil {
		return err
	}

	sess.state.IsLoading = false
	if result == nil {
		sess.state.Phase = models.PhaseFailed
		return nil
	}

	processed := result.Image.URL
	sess.state.ProcessedImage = &processed
	sess.state.Phase = models.PhaseSucceeded
	return nil
}

func (s *sessionStorage) AddNotification(_ context.Context, sessionID string, n models.Notification) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.upsert(sessionID)
	sess.notifications = append(sess.notifications, n)
	return nil
}

func (s *sessionStorage) RemoveNotification(_ context.Context, sessionID string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}

	sess.notifications = slices.DeleteFunc(sess.notifications, func(n models.Notification) bool {
		return n.ID == id
	})
	return nil
}

func (s *sessionStorage) Notifications(_ context.Context, sessionID string) ([]models.Notification, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return []models.Notification{}, nil
	}

	return slices.Clone(sess.notifications), nil
}

func (s *sessionStorage) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *sessionStorage) EvictIdle(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(before) {
			delete(s.sessions, id)
			evicted++
		}
	}

	return evicted, nil
}

// upsert returns the session, creating it when missing, and marks it as
// seen. Must be called with mu held.
func (s *sessionStorage) upsert(sessionID string) *session {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{state: models.ViewState{Phase: models.PhaseIdle}}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = s.now()

	return sess
}

// current returns the session only if seq is still its active submission.
// Must be called with mu held.
func (s *sessionStorage) current(sessionID string, seq uint64) (*session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok || sess.seq != seq || !sess.state.IsLoading {
		return nil, ErrStaleSubmission
	}
	sess.lastSeen = s.now()

	return sess, nil
}
