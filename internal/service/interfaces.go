package service

import (
	"context"

	"github.com/MKhiriev/bg-remover/models"
)

// RemovalService drives one upload from validation to the rendered result.
type RemovalService interface {
	// Submit starts a background removal for sessionID. Synchronous
	// failures (validation, a submission already in flight) are returned
	// directly. Otherwise the returned channel receives exactly one
	// outcome once the remote call resolves and is then closed.
	Submit(ctx context.Context, sessionID string, upload models.UploadRequest) (<-chan models.Outcome, error)

	State(ctx context.Context, sessionID string) (models.ViewState, error)

	// Reset drops the session. A pending submission is discarded when it
	// resolves.
	Reset(ctx context.Context, sessionID string) error

	// Close cancels pending remote calls and waits for them to return.
	Close()
}

// RemovalServiceWrapper defines middleware composition for RemovalService.
// Implementations wrap an existing RemovalService to add behavior such as
// logging or validating.
type RemovalServiceWrapper interface {
	Wrap(RemovalService) RemovalService // returns a decorated RemovalService applying additional behavior
}

type NotificationService interface {
	// Notify appends a notification and schedules its removal after the
	// configured lifetime.
	Notify(ctx context.Context, sessionID, title, description string, variant models.Variant) (models.Notification, error)
	Dismiss(ctx context.Context, sessionID, id string) error
	List(ctx context.Context, sessionID string) ([]models.Notification, error)
	Close()
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
