package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/bg-remover/internal/service"
	"github.com/MKhiriev/bg-remover/models"
)

type fakeRemoval struct {
	mu       sync.Mutex
	state    models.ViewState
	submitFn func(upload models.UploadRequest) (<-chan models.Outcome, error)
	uploads  []models.UploadRequest
	resets   int
}

func (f *fakeRemoval) Submit(_ context.Context, _ string, upload models.UploadRequest) (<-chan models.Outcome, error) {
	f.mu.Lock()
	f.uploads = append(f.uploads, upload)
	f.mu.Unlock()
	if f.submitFn != nil {
		return f.submitFn(upload)
	}
	ch := make(chan models.Outcome, 1)
	close(ch)
	return ch, nil
}

func (f *fakeRemoval) State(context.Context, string) (models.ViewState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, nil
}

func (f *fakeRemoval) Reset(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
	f.state = models.ViewState{Phase: models.PhaseIdle}
	return nil
}

func (f *fakeRemoval) Close() {}

type fakeNotifications struct {
	mu        sync.Mutex
	list      []models.Notification
	dismissed []string
}

func (f *fakeNotifications) Notify(_ context.Context, _, title, description string, variant models.Variant) (models.Notification, error) {
	return models.Notification{Title: title, Description: description, Variant: variant}, nil
}

func (f *fakeNotifications) Dismiss(_ context.Context, _, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dismissed = append(f.dismissed, id)
	return nil
}

func (f *fakeNotifications) List(context.Context, string) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list, nil
}

func (f *fakeNotifications) Close() {}

func newTestRemover(removal *fakeRemoval, notifications *fakeNotifications) removerModel {
	return newRemoverModel(context.Background(), &service.Services{
		RemovalService:      removal,
		NotificationService: notifications,
	}, "test-session")
}
