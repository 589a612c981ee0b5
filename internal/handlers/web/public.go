package web

import (
	"errors"
	"net/http"

	"github.com/smashcrew/teambalance/internal/services/tournament"
)

// handleRegister serves POST /api/register
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	output, err := h.service.RegisterParticipant(r.Context(), &tournament.RegisterParticipantInput{
		Name:  req.Name,
		Level: req.Level,
	})
	if err != nil {
		switch {
		case errors.Is(err, tournament.ErrInvalidName):
			h.respondError(w, http.StatusBadRequest, "name is required")
		case errors.Is(err, tournament.ErrInvalidLevel):
			h.respondError(w, http.StatusBadRequest, "level must be between 1 and 5")
		default:
			h.respondInternalError(w, "register participant", err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, &registerResponse{
		Success: true,
		Token:   output.Token,
	})
}

// handleResult serves GET /api/result?t=<token>
func (h *Handler) handleResult(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("t")
	if token == "" {
		h.respondError(w, http.StatusBadRequest, "token is required")
		return
	}

	output, err := h.service.GetResultForToken(r.Context(), &tournament.GetResultForTokenInput{
		Token: token,
	})
	if err != nil {
		if errors.Is(err, tournament.ErrParticipantNotFound) {
			h.respondError(w, http.StatusNotFound, "participant not found")
			return
		}
		h.respondInternalError(w, "get result", err)
		return
	}

	response := &resultResponse{
		Participant: newParticipantSelfView(output.Participant),
		AllTeams:    newTeamViews(output.AllTeams),
		IsPublished: output.IsPublished,
	}
	if output.MyTeam != nil {
		response.MyTeam = newTeamView(output.MyTeam)
	}

	h.respondJSON(w, http.StatusOK, response)
}
