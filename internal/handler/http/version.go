package http

import (
	"net/http"

	"github.com/MKhiriev/bg-remover/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, _ = utils.WriteText(w, serverVersion, http.StatusOK)
}
