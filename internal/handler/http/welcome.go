package http

import (
	"net/http"

	"github.com/MKhiriev/go-simple-server/internal/utils"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) error {
	resp := h.services.AppInfoService.Welcome(r.Context())

	_, err := utils.WriteJSON(w, resp, http.StatusOK)
	return err
}
