// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the per-session view state and notifications.
//
// State lives in memory only and is keyed by an opaque session id. Every
// session has at most one submission in flight; a submission is identified
// by the sequence number returned from BeginSubmission and every later
// update must present it, so results of a reset or evicted session are
// dropped with [ErrStaleSubmission].
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/bg-remover/models"
)

type SessionStorage interface {
	// Get returns a copy of the view state. Unknown sessions yield a fresh
	// idle state.
	Get(ctx context.Context, sessionID string) (models.ViewState, error)

	// BeginValidation moves the session to the validating phase and clears
	// the previous field error. Fails with ErrSubmissionInFlight while
	// loading.
	BeginValidation(ctx context.Context, sessionID string) error

	// RejectSubmission records a validation failure. Images already shown
	// are kept.
	RejectSubmission(ctx context.Context, sessionID string, message string) error

	// BeginSubmission sets IsLoading and returns the submission sequence
	// number. Fails with ErrSubmissionInFlight while loading.
	BeginSubmission(ctx context.Context, sessionID string) (uint64, error)

	SetOriginalImage(ctx context.Context, sessionID string, seq uint64, dataURL string) error
	SetPhase(ctx context.Context, sessionID string, seq uint64, phase models.Phase) error

	// CompleteSubmission clears IsLoading and, when result is non-nil,
	// replaces the processed image.
	CompleteSubmission(ctx context.Context, sessionID string, seq uint64, result *models.RemovalResult) error

	AddNotification(ctx context.Context, sessionID string, n models.Notification) error
	// RemoveNotification is idempotent: removing an unknown id is not an error.
	RemoveNotification(ctx context.Context, sessionID string, id string) error
	// Notifications returns live notifications in insertion order.
	Notifications(ctx context.Context, sessionID string) ([]models.Notification, error)

	// Delete drops the session. Pending submissions become stale.
	Delete(ctx context.Context, sessionID string) error

	// EvictIdle deletes sessions not touched since before and returns how
	// many were removed.
	EvictIdle(ctx context.Context, before time.Time) (int, error)
}
