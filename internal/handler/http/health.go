package http

import (
	"net/http"

	"github.com/MKhiriev/go-simple-server/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	resp := h.services.HealthService.Check(r.Context())

	_, err := utils.WriteJSON(w, resp, http.StatusOK)
	return err
}
