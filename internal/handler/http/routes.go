package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// routes bound to the browser session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.home)

		r.Get("/remover", h.remover)
		r.Post("/remover", h.submitImage)
		r.Post("/remover/reset", h.resetSession)

		r.Get("/api/state", h.getState)
		r.Get("/api/notifications", h.listNotifications)
		r.Delete("/api/notifications/{id}", h.dismissNotification)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
