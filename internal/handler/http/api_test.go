package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bg-remover/models"
)

func TestGetState(t *testing.T) {
	removal := &mockRemovalService{
		stateFn: func(_ context.Context, sessionID string) (models.ViewState, error) {
			assert.Equal(t, testSession, sessionID)
			return models.ViewState{ProcessedImage: ptr(processedImageURL), Phase: models.PhaseSucceeded}, nil
		},
	}
	h := newServiceHandler(removal, &mockNotificationService{})

	rec := httptest.NewRecorder()
	h.getState(rec, withTestSession(httptest.NewRequest(http.MethodGet, "/api/state", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var state models.ViewState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.NotNil(t, state.ProcessedImage)
	assert.Equal(t, processedImageURL, *state.ProcessedImage)
	assert.Nil(t, state.OriginalImage)
	assert.False(t, state.IsLoading)
	assert.Equal(t, models.PhaseSucceeded, state.Phase)
}

func TestGetState_NoSession(t *testing.T) {
	h := newServiceHandler(&mockRemovalService{}, &mockNotificationService{})

	rec := httptest.NewRecorder()
	h.getState(rec, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNotifications(t *testing.T) {
	created := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	notifications := &mockNotificationService{
		listFn: func(_ context.Context, _ string) ([]models.Notification, error) {
			return []models.Notification{{ID: "n1", Title: "Error", Variant: models.VariantDestructive, CreatedAt: created}}, nil
		},
	}
	h := newServiceHandler(&mockRemovalService{}, notifications)
	h.notificationTTL = 5 * time.Second

	rec := httptest.NewRecorder()
	h.listNotifications(rec, withTestSession(httptest.NewRequest(http.MethodGet, "/api/notifications", nil)))

	require.Equal(t, http.StatusOK, rec.Code)

	var views []notificationView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "n1", views[0].ID)
	assert.Equal(t, models.VariantDestructive, views[0].Variant)
	assert.True(t, created.Add(5*time.Second).Equal(views[0].ExpiresAt))
}

func TestListNotifications_Empty(t *testing.T) {
	h := newServiceHandler(&mockRemovalService{}, &mockNotificationService{})

	rec := httptest.NewRecorder()
	h.listNotifications(rec, withTestSession(httptest.NewRequest(http.MethodGet, "/api/notifications", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func dismissRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/notifications/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	return withTestSession(req)
}

func TestDismissNotification(t *testing.T) {
	var dismissed string
	notifications := &mockNotificationService{
		dismissFn: func(_ context.Context, sessionID, id string) error {
			assert.Equal(t, testSession, sessionID)
			dismissed = id
			return nil
		},
	}
	h := newServiceHandler(&mockRemovalService{}, notifications)

	rec := httptest.NewRecorder()
	h.dismissNotification(rec, dismissRequest("n1"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "n1", dismissed)
}

func TestDismissNotification_Error(t *testing.T) {
	notifications := &mockNotificationService{
		dismissFn: func(_ context.Context, _, _ string) error { return errors.New("boom") },
	}
	h := newServiceHandler(&mockRemovalService{}, notifications)

	rec := httptest.NewRecorder()
	h.dismissNotification(rec, dismissRequest("n1"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
