package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/bg-remover/internal/logger"
)

// withLogging writes one access log line per request. Handlers further down
// the chain fill an accessRecord so the line also carries the session id.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}
		rec := &accessRecord{}

		next.ServeHTTP(lw, r.WithContext(withAccessRecord(r.Context(), rec)))

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if rec.sessionID != "" {
			event = event.Str("session_id", rec.sessionID)
		}
		event.Send()
	})
}
