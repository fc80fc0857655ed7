// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/bg-remover/internal/adapter"
	"github.com/MKhiriev/bg-remover/internal/app"
	"github.com/MKhiriev/bg-remover/internal/config"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/mock"
	"github.com/MKhiriev/bg-remover/internal/store"
	"github.com/MKhiriev/bg-remover/internal/validators"
	"github.com/MKhiriev/bg-remover/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSession       = "0199f3a2-0000-7000-8000-000000000001"
	processedImageURL = "https://example.com/processed-image.png"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// ── helpers ─────────────────────────────────────────────────────────────────

type removalFixture struct {
	svc           RemovalService
	adapter       *mock.MockRemovalAdapter
	storage       store.SessionStorage
	notifications NotificationService
}

func newRemovalFixture(t *testing.T) *removalFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logger.Nop()

	storage := store.NewSessionStorage(log)
	mockAdapter := mock.NewMockRemovalAdapter(ctrl)
	notifications := NewNotificationService(storage, config.App{NotificationTTL: time.Hour}, log)

	svc := NewRemovalValidationService(storage, log).
		Wrap(NewRemovalService(storage, mockAdapter, notifications, log))

	t.Cleanup(func() {
		svc.Close()
		notifications.Close()
	})

	return &removalFixture{svc: svc, adapter: mockAdapter, storage: storage, notifications: notifications}
}

func testPNG() models.UploadRequest {
	return models.UploadRequest{
		FileName:    "test.png",
		ContentType: "image/png",
		Size:        int64(len(pngBytes)),
		Data:        pngBytes,
	}
}

func successResult() models.RemovalResult {
	return models.RemovalResult{Image: models.RemovedImage{URL: processedImageURL}}
}

func awaitOutcome(t *testing.T, ch <-chan models.Outcome) models.Outcome {
	t.Helper()
	select {
	case outcome, ok := <-ch:
		require.True(t, ok, "outcome channel closed without a value")
		return outcome
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for outcome")
		return models.Outcome{}
	}
}

func (f *removalFixture) state(t *testing.T) models.ViewState {
	t.Helper()
	state, err := f.svc.State(context.Background(), testSession)
	require.NoError(t, err)
	return state
}

func (f *removalFixture) notificationList(t *testing.T) []models.Notification {
	t.Helper()
	list, err := f.notifications.List(context.Background(), testSession)
	require.NoError(t, err)
	return list
}

// ── validation ──────────────────────────────────────────────────────────────

func TestSubmit_TooLarge_NeverCallsRemote(t *testing.T) {
	f := newRemovalFixture(t)
	f.adapter.EXPECT().RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	upload := testPNG()
	upload.Size = validators.MaxImageSize + 1

	ch, err := f.svc.Submit(context.Background(), testSession, upload)

	assert.Nil(t, ch)
	assert.ErrorIs(t, err, validators.ErrImageTooLarge)

	state := f.state(t)
	assert.Equal(t, "Max file size is 5MB", state.FieldError)
	assert.Equal(t, models.PhaseRejected, state.Phase)
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.OriginalImage)
	assert.Empty(t, f.notificationList(t))
}

func TestSubmit_UnsupportedType_ExactMessage(t *testing.T) {
	f := newRemovalFixture(t)
	f.adapter.EXPECT().RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	upload := models.UploadRequest{FileName: "anim.gif", ContentType: "image/gif", Size: 100, Data: []byte("GIF89a")}

	_, err := f.svc.Submit(context.Background(), testSession, upload)

	assert.ErrorIs(t, err, validators.ErrUnsupportedImageType)
	assert.Equal(t, "Only .jpg, .jpeg, .png and .webp formats are supported", f.state(t).FieldError)
}

func TestSubmit_NoFile(t *testing.T) {
	f := newRemovalFixture(t)
	f.adapter.EXPECT().RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Submit(context.Background(), testSession, models.UploadRequest{})

	assert.ErrorIs(t, err, validators.ErrImageRequired)
	assert.Equal(t, "Image is required", f.state(t).FieldError)
}

// ── remote call ─────────────────────────────────────────────────────────────

func TestSubmit_Success(t *testing.T) {
	f := newRemovalFixture(t)
	f.adapter.EXPECT().
		RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.RemovalInput, onUpdate func(models.QueueUpdate)) (models.RemovalResult, error) {
			assert.True(t, strings.HasPrefix(input.ImageURL, "data:image/png;base64,"))
			assert.True(t, input.SyncMode)
			onUpdate(models.QueueUpdate{Status: models.QueueStatusInProgress, Logs: []models.LogLine{{Message: "working"}}})
			return successResult(), nil
		}).
		Times(1)

	ch, err := f.svc.Submit(context.Background(), testSession, testPNG())
	require.NoError(t, err)

	outcome := awaitOutcome(t, ch)
	require.True(t, outcome.Succeeded())
	assert.Equal(t, processedImageURL, outcome.Result.Image.URL)

	_, open := <-ch
	assert.False(t, open, "channel must be closed after the outcome")

	state := f.state(t)
	assert.False(t, state.IsLoading)
	assert.True(t, state.CanSubmit())
	assert.Equal(t, models.PhaseSucceeded, state.Phase)
	require.NotNil(t, state.ProcessedImage)
	assert.Equal(t, processedImageURL, *state.ProcessedImage)
	require.NotNil(t, state.OriginalImage)
	assert.True(t, strings.HasPrefix(*state.OriginalImage, "data:image/png;base64,"))

	list := f.notificationList(t)
	require.Len(t, list, 1)
	assert.Equal(t, app.MsgRemovalSucceededTitle, list[0].Title)
	assert.Equal(t, "Your image background has been successfully removed!", list[0].Description)
	assert.False(t, list[0].IsDestructive())
}

func TestSubmit_RemoteFailure(t *testing.T) {
	f := newRemovalFixture(t)
	f.adapter.EXPECT().
		RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.RemovalResult{}, fmt.Errorf("%w: %w", adapter.ErrRemovalFailed, adapter.ErrUnauthorized)).
		Times(1)

	ch, err := f.svc.Submit(context.Background(), testSession, testPNG())
	require.NoError(t, err)

	outcome := awaitOutcome(t, ch)
	assert.False(t, outcome.Succeeded())
	assert.ErrorIs(t, outcome.Err, adapter.ErrRemovalFailed)

	state := f.state(t)
	assert.False(t, state.IsLoading)
	assert.Equal(t, models.PhaseFailed, state.Phase)
	assert.Nil(t, state.ProcessedImage)
	assert.NotNil(t, state.OriginalImage, "original image stays visible after a failure")

	list := f.notificationList(t)
	require.Len(t, list, 1)
	assert.Equal(t, "Error", list[0].Title)
	assert.Equal(t, "Failed to remove the image background. Please try again.", list[0].Description)
	assert.True(t, list[0].IsDestructive())
}

func TestSubmit_ResubmitAfterFailure(t *testing.T) {
	f := newRemovalFixture(t)
	gomock.InOrder(
		f.adapter.EXPECT().
			RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.RemovalResult{}, adapter.ErrRemovalFailed),
		f.adapter.EXPECT().
			RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(successResult(), nil),
	)

	ch, err := f.svc.Submit(context.Background(), testSession, testPNG())
	require.NoError(t, err)
	assert.False(t, awaitOutcome(t, ch).Succeeded())

	ch, err = f.svc.Submit(context.Background(), testSession, testPNG())
	require.NoError(t, err)
	assert.True(t, awaitOutcome(t, ch).Succeeded())

	state := f.state(t)
	require.NotNil(t, state.ProcessedImage)
	assert.Equal(t, processedImageURL, *state.ProcessedImage)
	assert.Len(t, f.notificationList(t), 2)
}

func TestSubmit_SecondSubmitWhileLoading_IsRefused(t *testing.T) {
	f := newRemovalFixture(t)
	release := make(chan struct{})
	f.adapter.EXPECT().
		RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.RemovalInput, func(models.QueueUpdate)) (models.RemovalResult, error) {
			<-release
			return successResult(), nil
		}).
		Times(1)

	ch, err := f.svc.Submit(context.Background(), testSession, testPNG())
	require.NoError(t, err)

	state := f.state(t)
	assert.True(t, state.IsLoading)
	assert.False(t, state.CanSubmit())

	second, err := f.svc.Submit(context.Background(), testSession, testPNG())
	assert.Nil(t, second)
	assert.ErrorIs(t, err, store.ErrSubmissionInFlight)

	// an invalid upload while loading must not clobber the pending state
	_, err = f.svc.Submit(context.Background(), testSession, models.UploadRequest{})
	assert.ErrorIs(t, err, store.ErrSubmissionInFlight)
	assert.Empty(t, f.state(t).FieldError)

	close(release)
	assert.True(t, awaitOutcome(t, ch).Succeeded())
}

func TestSubmit_SessionsAreIndependent(t *testing.T) {
	f := newRemovalFixture(t)
	release := make(chan struct{})
	f.adapter.EXPECT().
		RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.RemovalInput, func(models.QueueUpdate)) (models.RemovalResult, error) {
			<-release
			return successResult(), nil
		}).
		Times(2)

	first, err := f.svc.Submit(context.Background(), testSession, testPNG())
	require.NoError(t, err)
	second, err := f.svc.Submit(context.Background(), "another-session", testPNG())
	require.NoError(t, err)

	close(release)
	awaitOutcome(t, first)
	awaitOutcome(t, second)
}

func TestSubmit_ResetWhileLoading_DropsOutcome(t *testing.T) {
	f := newRemovalFixture(t)
	started := make(chan struct{})
	release := make(chan struct{})
	f.adapter.EXPECT().
		RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.RemovalInput, func(models.QueueUpdate)) (models.RemovalResult, error) {
			close(started)
			<-release
			return successResult(), nil
		})

	ch, err := f.svc.Submit(context.Background(), testSession, testPNG())
	require.NoError(t, err)
	<-started

	require.NoError(t, f.svc.Reset(context.Background(), testSession))
	close(release)
	awaitOutcome(t, ch)

	state := f.state(t)
	assert.Equal(t, models.ViewState{Phase: models.PhaseIdle}, state)
	assert.Empty(t, f.notificationList(t))
}

func TestSubmit_RequestContextDoesNotCancelRemoteCall(t *testing.T) {
	f := newRemovalFixture(t)
	f.adapter.EXPECT().
		RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.RemovalInput, _ func(models.QueueUpdate)) (models.RemovalResult, error) {
			time.Sleep(10 * time.Millisecond)
			if ctx.Err() != nil {
				return models.RemovalResult{}, ctx.Err()
			}
			return successResult(), nil
		})

	reqCtx, cancel := context.WithCancel(context.Background())
	ch, err := f.svc.Submit(reqCtx, testSession, testPNG())
	require.NoError(t, err)
	cancel()

	assert.True(t, awaitOutcome(t, ch).Succeeded())
}

func TestClose_CancelsPendingCalls(t *testing.T) {
	f := newRemovalFixture(t)
	f.adapter.EXPECT().
		RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.RemovalInput, _ func(models.QueueUpdate)) (models.RemovalResult, error) {
			<-ctx.Done()
			return models.RemovalResult{}, fmt.Errorf("%w: %w", adapter.ErrRemovalFailed, ctx.Err())
		})

	ch, err := f.svc.Submit(context.Background(), testSession, testPNG())
	require.NoError(t, err)

	f.svc.Close()

	outcome := awaitOutcome(t, ch)
	assert.ErrorIs(t, outcome.Err, context.Canceled)
	assert.Empty(t, f.notificationList(t), "outcomes are dropped on shutdown")
}

func TestSubmit_AdapterPanic_ClearsLoading(t *testing.T) {
	f := newRemovalFixture(t)
	f.adapter.EXPECT().
		RemoveBackground(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.RemovalInput, func(models.QueueUpdate)) (models.RemovalResult, error) {
			panic("boom")
		})

	ch, err := f.svc.Submit(context.Background(), testSession, testPNG())
	require.NoError(t, err)

	outcome := awaitOutcome(t, ch)
	assert.ErrorIs(t, outcome.Err, ErrSubmissionPanicked)

	state := f.state(t)
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.ProcessedImage)
	require.Len(t, f.notificationList(t), 1)
}
