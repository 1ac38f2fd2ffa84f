package handlers

import (
	"net/http"

	"github.com/bhorvath/fixturegen/middleware"
	"github.com/bhorvath/fixturegen/services"
)

type RefereeHandler struct {
	refereeService services.RefereeService
}

func NewRefereeHandler(refereeService services.RefereeService) *RefereeHandler {
	return &RefereeHandler{refereeService: refereeService}
}

type refereeInput struct {
	Name string `json:"name"`
}

func (h *RefereeHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var input refereeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	referee, err := h.refereeService.Create(r.Context(), userID, tournamentID, input.Name)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusCreated, jsonResponse{"referee": referee}, nil)
}

func (h *RefereeHandler) List(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := idParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	referees, err := h.refereeService.List(r.Context(), tournamentID)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"referees": referees}, nil)
}

func (h *RefereeHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	refereeID, err := idParam(r, "refereeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input refereeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	referee, err := h.refereeService.Update(r.Context(), userID, tournamentID, refereeID, input.Name)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"referee": referee}, nil)
}

func (h *RefereeHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	refereeID, err := idParam(r, "refereeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.refereeService.Delete(r.Context(), userID, tournamentID, refereeID); err != nil {
		mapServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
