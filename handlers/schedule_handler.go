package handlers

import (
	"net/http"

	"github.com/bhorvath/fixturegen/middleware"
	"github.com/bhorvath/fixturegen/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) Replace(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		errorResponse(w, r, http.StatusUnauthorized, err.Error())
		return
	}
	tournamentID, err := idParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ScheduleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	windows, err := h.scheduleService.Replace(r.Context(), userID, tournamentID, input)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"schedule": windows}, nil)
}

func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := idParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	windows, err := h.scheduleService.Get(r.Context(), tournamentID)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"schedule": windows}, nil)
}
