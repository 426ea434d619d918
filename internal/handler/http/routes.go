package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withCORS)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	router.Post("/", h.receiveProbe)
	router.Get("/health", h.health)
	router.Get("/logs", h.listProbes)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
