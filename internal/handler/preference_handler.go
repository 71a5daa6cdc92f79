package handler

import (
	"net/http"

	"github.com/tiagorb/enrollment-console/internal/model"
	"github.com/tiagorb/enrollment-console/internal/response"
	"github.com/tiagorb/enrollment-console/internal/service"
	"github.com/tiagorb/enrollment-console/internal/utils"
)

type PreferenceHandler struct {
	svc service.PreferenceService
}

func NewPreferenceHandler(svc service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{svc: svc}
}

// Get returns the persisted console preferences
// @Summary      Get preferences
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /preferences [get]
func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Get()
	if err != nil {
		response.InternalError(w, "Failed to load preferences")
		return
	}
	response.Success(w, "Preferences retrieved", prefs)
}

// Put replaces the persisted console preferences
// @Summary      Save preferences
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        request  body      model.Preferences  true  "Preferences document"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /preferences [put]
func (h *PreferenceHandler) Put(w http.ResponseWriter, r *http.Request) {
	var prefs model.Preferences
	if err := utils.DecodeJSON(r, &prefs); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	saved, err := h.svc.Save(prefs)
	if err != nil {
		response.InternalError(w, "Failed to save preferences")
		return
	}
	response.Success(w, "Preferences saved", saved)
}
