package http

import (
	"net/http"

	"github.com/MKhiriev/go-budget-tracker/internal/utils"
	"github.com/MKhiriev/go-budget-tracker/models"
)

func (h *Handler) getRoot(w http.ResponseWriter, r *http.Request) {
	appName := h.services.AppInfoService.GetAppName(r.Context())
	utils.WriteJSON(w, models.MessageResponse{Message: appName}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
