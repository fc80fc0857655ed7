// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bg-remover/internal/logger"
	"github.com/MKhiriev/bg-remover/internal/utils"
)

const sessionCookieName = "bgr_session"

// withSession binds every request to a browser session. The id travels in
// the bgr_session cookie; a missing or malformed cookie starts a new
// session. The id is stored in the request context and added to the
// request-scoped logger.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(sessionCookieName); err == nil && utils.IsValidUUID(cookie.Value) {
			sessionID = cookie.Value
		} else {
			sessionID = h.ids.Generate()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		recordSession(r.Context(), sessionID)

		log := logger.FromRequest(r).WithSession(sessionID)
		ctx := utils.WithSessionID(log.WithContext(r.Context()), sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromRequest(r *http.Request) (string, error) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		return "", ErrNoSession
	}
	return sessionID, nil
}
