package http

import (
	"net/http"

	"github.com/MKhiriev/go-simple-server/internal/config"
	"github.com/MKhiriev/go-simple-server/internal/logger"
	"github.com/MKhiriev/go-simple-server/internal/service"
	"github.com/MKhiriev/go-simple-server/internal/utils"
)

// traceIDGenerator produces identifiers for requests that arrive without an
// X-Trace-ID header.
type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services  *service.Services
	accessLog *logger.AccessLog
	app       config.App
	traceIDs  traceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, accessLog *logger.AccessLog, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		accessLog: accessLog,
		app:       app,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// handlerFunc is a route handler that reports failures by returning them
// instead of writing an error response itself.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc. A returned error is treated as a
// handler fault and answered by the global error handler.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, &HandlerFault{Err: err})
		}
	}
}
