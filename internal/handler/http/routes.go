package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware runs in registration order for every
// request, including unmatched ones.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		withSecureHeaders,
		withCORS,
		h.withAccessLog,
		withPreflight,
		h.withRecovery,
		middleware.GetHead,
	)

	router.Get("/", h.handle(h.welcome))
	router.Get("/api/health", h.handle(h.health))

	// unknown paths and unsupported methods on known paths are both 404
	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}
