package http

import (
	"context"

	"github.com/MKhiriev/bg-remover/models"
)

// ─────────────────────────────────────────────
// RemovalService
// ─────────────────────────────────────────────

type mockRemovalService struct {
	submitFn func(ctx context.Context, sessionID string, upload models.UploadRequest) (<-chan models.Outcome, error)
	stateFn  func(ctx context.Context, sessionID string) (models.ViewState, error)
	resetFn  func(ctx context.Context, sessionID string) error
	closed   bool
}

func (m *mockRemovalService) Submit(ctx context.Context, sessionID string, upload models.UploadRequest) (<-chan models.Outcome, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, sessionID, upload)
	}
	ch := make(chan models.Outcome, 1)
	close(ch)
	return ch, nil
}

func (m *mockRemovalService) State(ctx context.Context, sessionID string) (models.ViewState, error) {
	if m.stateFn != nil {
		return m.stateFn(ctx, sessionID)
	}
	return models.ViewState{Phase: models.PhaseIdle}, nil
}

func (m *mockRemovalService) Reset(ctx context.Context, sessionID string) error {
	if m.resetFn != nil {
		return m.resetFn(ctx, sessionID)
	}
	return nil
}

func (m *mockRemovalService) Close() { m.closed = true }

// ─────────────────────────────────────────────
// NotificationService
// ─────────────────────────────────────────────

type mockNotificationService struct {
	listFn    func(ctx context.Context, sessionID string) ([]models.Notification, error)
	dismissFn func(ctx context.Context, sessionID, id string) error
}

func (m *mockNotificationService) Notify(_ context.Context, _, title, description string, variant models.Variant) (models.Notification, error) {
	return models.Notification{Title: title, Description: description, Variant: variant}, nil
}

func (m *mockNotificationService) Dismiss(ctx context.Context, sessionID, id string) error {
	if m.dismissFn != nil {
		return m.dismissFn(ctx, sessionID, id)
	}
	return nil
}

func (m *mockNotificationService) List(ctx context.Context, sessionID string) ([]models.Notification, error) {
	if m.listFn != nil {
		return m.listFn(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockNotificationService) Close() {}

// ─────────────────────────────────────────────
// AppInfoService
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "N/A", "N/A")
}
