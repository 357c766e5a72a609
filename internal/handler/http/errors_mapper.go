package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-simple-server/internal/logger"
	"github.com/MKhiriev/go-simple-server/internal/utils"
	"github.com/MKhiriev/go-simple-server/models"
)

const (
	errorRouteNotFound   = "Route not found"
	errorInternal        = "Internal Server Error"
	genericFaultMessage  = "Something went wrong!"
	routeNotFoundMessage = "The requested route %s does not exist"
)

var errorStatusMap = map[error]int{
	ErrRouteNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the JSON body for err. Internal error details are
// only exposed when the environment is exactly "development".
func (h *Handler) errorResponse(r *http.Request, err error, status int) models.ErrorResponse {
	if status == http.StatusNotFound {
		return models.ErrorResponse{
			Error:   errorRouteNotFound,
			Message: fmt.Sprintf(routeNotFoundMessage, r.URL.Path),
		}
	}

	message := genericFaultMessage
	if h.app.IsDevelopment() {
		message = err.Error()
	}

	return models.ErrorResponse{
		Error:   errorInternal,
		Message: message,
	}
}

// startedResponse is implemented by writers that know whether the status
// line has already been sent.
type startedResponse interface {
	headerWritten() bool
}

// writeError is the global error handler: it logs err and answers the
// request with the matching status and JSON body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		event := log.Error().Err(err)
		var fault *HandlerFault
		if errors.As(err, &fault) && len(fault.Stack) > 0 {
			event = event.Str("stack", string(fault.Stack))
		}
		event.Msg("Error")
	} else {
		log.Debug().Err(err).Msg("request rejected")
	}

	if sw, ok := w.(startedResponse); ok && sw.headerWritten() {
		log.Warn().Int("status", status).Msg("response already started, error body dropped")
		return
	}

	if _, wErr := utils.WriteJSON(w, h.errorResponse(r, err, status), status); wErr != nil {
		log.Error().Err(wErr).Msg("error writing error response")
	}
}

// routeNotFound answers requests no route matches.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, fmt.Errorf("%w: %s %s", ErrRouteNotFound, r.Method, r.URL.Path))
}
