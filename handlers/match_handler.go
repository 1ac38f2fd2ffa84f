package handlers

import (
	"net/http"

	"github.com/bhorvath/fixturegen/middleware"
	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/services"
)

type MatchHandler struct {
	matchService      services.MatchService
	generationService services.GenerationService
	resultService     services.ResultService
}

func NewMatchHandler(
	matchService services.MatchService,
	generationService services.GenerationService,
	resultService services.ResultService,
) *MatchHandler {
	return &MatchHandler{
		matchService:      matchService,
		generationService: generationService,
		resultService:     resultService,
	}
}

func (h *MatchHandler) Generate(w http.ResponseWriter, r *http.Request) {
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

	input := services.GenerateInput{}
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}

	matches, err := h.generationService.Generate(r.Context(), userID, tournamentID, input)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusCreated, jsonResponse{"matches_created": len(matches), "matches": matches}, nil)
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := idParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.List(r.Context(), tournamentID)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil)
}

func (h *MatchHandler) Exists(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := idParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	exists, status, err := h.matchService.Exists(r.Context(), tournamentID)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"exists": exists, "status": status}, nil)
}

func (h *MatchHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := h.matchService.DeleteAll(r.Context(), userID, tournamentID)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"deleted_count": deleted, "status": models.StatusOnHold}, nil)
}

func (h *MatchHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		errorResponse(w, r, http.StatusUnauthorized, err.Error())
		return
	}
	matchID, err := idParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.resultService.SubmitResult(r.Context(), userID, matchID, input)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{
		"success":        true,
		"match":          match,
		"winner_team_id": match.WinnerTeamID,
		"loser_team_id":  match.LoserTeamID(),
	}, nil)
}
