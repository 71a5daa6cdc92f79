package handler

import (
	"net/http"

	"github.com/tiagorb/enrollment-console/internal/response"
	"github.com/tiagorb/enrollment-console/internal/service"
)

type ExportHandler struct {
	svc service.ExportService
}

func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export downloads the current roster
// @Summary      Export the roster
// @Tags         export
// @Produce      json
// @Param        format  query  string  false  "Export format (json|xlsx), default json"
// @Success      200
// @Router       /export [get]
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("format") {
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="school-roster.json"`)
		if err := h.svc.ExportJSON(w); err != nil {
			response.InternalError(w, "Failed to export roster")
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="school-roster.xlsx"`)
		if err := h.svc.ExportXLSX(w); err != nil {
			response.InternalError(w, "Failed to export roster")
		}
	default:
		response.BadRequest(w, "Unknown export format", nil)
	}
}
