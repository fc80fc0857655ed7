// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the hosted background-removal
// inference service.
//
// The primary abstraction is [RemovalAdapter], which decouples the service
// layer from the provider's queue protocol. The package ships a fal.ai queue
// implementation ([NewFalAdapter]) built on resty.
//
// Every failure is wrapped with [ErrRemovalFailed]. HTTP status codes are
// additionally mapped by mapHTTPError to the sentinel values in errors.go so
// callers can use [errors.Is] to tell e.g. a bad credential ([ErrUnauthorized])
// from an outage ([ErrBadGateway]).
package adapter

import (
	"context"

	"github.com/MKhiriev/bg-remover/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/removal_adapter_mock.go -package=mock

// RemovalAdapter sends one image to the remote service and returns the
// processed result. Implementations make exactly one attempt.
type RemovalAdapter interface {
	// RemoveBackground submits input and blocks until the remote job
	// completes, fails, or ctx is done. onUpdate, when non-nil, is called
	// with every queue status observed while waiting.
	RemoveBackground(ctx context.Context, input models.RemovalInput, onUpdate func(models.QueueUpdate)) (models.RemovalResult, error)
}
