package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/bg-remover/internal/app"
	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/utils"
	"github.com/MKhiriev/bg-remover/models"
)

// notificationView adds the moment the server drops the notification.
type notificationView struct {
	models.Notification
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		http.Error(w, app.MsgNoSessionProvided, statusFromError(err))
		return
	}

	state, err := h.services.RemovalService.State(r.Context(), sessionID)
	if err != nil {
		log.Err(err).Msg("failed to load view state")
		http.Error(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		http.Error(w, app.MsgNoSessionProvided, statusFromError(err))
		return
	}

	notifications, err := h.services.NotificationService.List(r.Context(), sessionID)
	if err != nil {
		log.Err(err).Msg("failed to list notifications")
		http.Error(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	views := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, notificationView{Notification: n, ExpiresAt: h.notificationDeadline(n)})
	}

	_, _ = utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) dismissNotification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, err := sessionFromRequest(r)
	if err != nil {
		http.Error(w, app.MsgNoSessionProvided, statusFromError(err))
		return
	}

	id := chi.URLParam(r, "id")
	if err = h.services.NotificationService.Dismiss(r.Context(), sessionID, id); err != nil {
		log.Err(err).Str("notification_id", id).Msg("failed to dismiss notification")
		http.Error(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
