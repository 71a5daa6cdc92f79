package handler

import (
	"net/http"

	"github.com/tiagorb/enrollment-console/internal/model"
	"github.com/tiagorb/enrollment-console/internal/response"
	"github.com/tiagorb/enrollment-console/internal/service"
	"github.com/tiagorb/enrollment-console/internal/utils"
)

// RosterHandler serves the class list, the dashboard stats block, the
// transfer operation and the refresh trigger.
type RosterHandler struct {
	svc service.EnrollmentService
}

func NewRosterHandler(svc service.EnrollmentService) *RosterHandler {
	return &RosterHandler{svc: svc}
}

// GetClasses lists all classes with derived occupancy
// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /classes [get]
func (h *RosterHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	response.Success(w, "Classes retrieved", h.svc.Classes())
}

// GetStats returns the dashboard counters
// @Summary      Roster statistics
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /stats [get]
func (h *RosterHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	response.Success(w, "Statistics retrieved", h.svc.Stats())
}

// Transfer moves a student to another class
// @Summary      Transfer a student
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer request"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /transfers [post]
func (h *RosterHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req model.TransferRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	student, err := h.svc.Transfer(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Failed to transfer student")
		return
	}

	response.Success(w, "Student transferred", student)
}

// Refresh re-mirrors the roster from the record service
// @Summary      Refresh the local mirror
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /refresh [post]
func (h *RosterHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Refresh(r.Context()); err != nil {
		writeServiceError(w, err, "Failed to refresh roster")
		return
	}
	response.Success(w, "Roster refreshed", nil)
}
