package web

import (
	"errors"
	"net/http"
	"sort"

	"github.com/smashcrew/teambalance/internal/services/tournament"
)

// handleLogin serves POST /api/admin/login
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Password != h.password {
		h.respondError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	session, _ := h.store.Get(r, sessionName)
	session.Values[sessionAuthKey] = true

	if err := session.Save(r, w); err != nil {
		h.respondInternalError(w, "save admin session", err)
		return
	}

	h.respondJSON(w, http.StatusOK, &successResponse{Success: true})
}

// handleLogout serves DELETE /api/admin/login
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, sessionName)
	session.Options.MaxAge = -1 // delete immediately

	if err := session.Save(r, w); err != nil {
		h.respondInternalError(w, "clear admin session", err)
		return
	}

	h.respondJSON(w, http.StatusOK, &successResponse{Success: true})
}

// handleGetAssignment serves GET /api/admin/assign. An insufficient leader
// count is reported as a normal payload so the admin UI can show the count.
func (h *Handler) handleGetAssignment(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetAssignment(r.Context(), &tournament.GetAssignmentInput{})
	if err != nil {
		var leadersErr *tournament.InsufficientLeadersError
		if errors.As(err, &leadersErr) {
			count := leadersErr.LeadersCount
			h.respondJSON(w, http.StatusOK, &assignResponse{
				Teams:        []*teamView{},
				Error:        "four team leaders must be configured",
				LeadersCount: &count,
			})
			return
		}
		h.respondInternalError(w, "get assignment", err)
		return
	}

	h.respondJSON(w, http.StatusOK, &assignResponse{
		Teams:       newTeamViews(output.Teams),
		Stats:       newStatsView(output.Stats),
		IsAssigned:  output.IsAssigned,
		IsPublished: output.IsPublished,
	})
}

// handleCommitAssignment serves POST /api/admin/assign
func (h *Handler) handleCommitAssignment(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.CommitAssignment(r.Context(), &tournament.CommitAssignmentInput{})
	if err != nil {
		switch {
		case errors.Is(err, tournament.ErrInsufficientLeaders):
			h.respondError(w, http.StatusBadRequest, "four team leaders must be configured")
		case errors.Is(err, tournament.ErrAlreadyAssigned):
			h.respondError(w, http.StatusConflict, "assignment already committed")
		default:
			h.respondInternalError(w, "commit assignment", err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, &successResponse{Success: true})
}

// handleResetAssignment serves DELETE /api/admin/assign
func (h *Handler) handleResetAssignment(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.ResetAssignment(r.Context(), &tournament.ResetAssignmentInput{})
	if err != nil {
		h.respondInternalError(w, "reset assignment", err)
		return
	}

	h.respondJSON(w, http.StatusOK, &successResponse{Success: true})
}

// handleGetPublishState serves GET /api/admin/publish
func (h *Handler) handleGetPublishState(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetPublishState(r.Context(), &tournament.GetPublishStateInput{})
	if err != nil {
		h.respondInternalError(w, "get publish state", err)
		return
	}

	h.respondJSON(w, http.StatusOK, &publishStateResponse{
		IsAssigned:  output.IsAssigned,
		IsPublished: output.IsPublished,
	})
}

// handleSetPublished serves POST /api/admin/publish
func (h *Handler) handleSetPublished(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	output, err := h.service.SetPublished(r.Context(), &tournament.SetPublishedInput{
		Published: req.Publish,
	})
	if err != nil {
		if errors.Is(err, tournament.ErrNotAssigned) {
			h.respondError(w, http.StatusBadRequest, "assignment has not been committed")
			return
		}
		h.respondInternalError(w, "set published", err)
		return
	}

	h.respondJSON(w, http.StatusOK, &publishResponse{
		Success:     true,
		IsPublished: output.IsPublished,
	})
}

// handleListTeams serves GET /api/admin/teams
func (h *Handler) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teamsOutput, err := h.service.ListTeams(r.Context(), &tournament.ListTeamsInput{})
	if err != nil {
		h.respondInternalError(w, "list teams", err)
		return
	}

	participantsOutput, err := h.service.ListParticipants(r.Context(), &tournament.ListParticipantsInput{})
	if err != nil {
		h.respondInternalError(w, "list participants", err)
		return
	}

	teams := make([]*teamWithLeaderView, 0, len(teamsOutput.Teams))
	for _, t := range teamsOutput.Teams {
		teams = append(teams, newTeamWithLeaderView(t))
	}

	participants := make([]*participantView, 0, len(participantsOutput.Participants))
	for _, p := range participantsOutput.Participants {
		participants = append(participants, newParticipantView(p))
	}
	// Leader selection lists read better alphabetically
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Name < participants[j].Name
	})

	h.respondJSON(w, http.StatusOK, &teamsResponse{
		Teams:        teams,
		Participants: participants,
	})
}

// handleUpdateTeam serves PUT /api/admin/teams
func (h *Handler) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req updateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TeamID == "" {
		h.respondError(w, http.StatusBadRequest, "team ID is required")
		return
	}

	_, err := h.service.SetTeamLeader(r.Context(), &tournament.SetTeamLeaderInput{
		TeamID:   req.TeamID,
		TeamName: req.TeamName,
		LeaderID: req.LeaderID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tournament.ErrTeamNotFound):
			h.respondError(w, http.StatusNotFound, "team not found")
		case errors.Is(err, tournament.ErrParticipantNotFound):
			h.respondError(w, http.StatusNotFound, "participant not found")
		default:
			h.respondInternalError(w, "update team", err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, &successResponse{Success: true})
}

// handleListPlayers serves GET /api/admin/players
func (h *Handler) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListParticipants(r.Context(), &tournament.ListParticipantsInput{})
	if err != nil {
		h.respondInternalError(w, "list participants", err)
		return
	}

	participants := make([]*participantView, 0, len(output.Participants))
	for _, p := range output.Participants {
		participants = append(participants, newParticipantView(p))
	}

	h.respondJSON(w, http.StatusOK, &playersResponse{Participants: participants})
}

// handleDeletePlayer serves DELETE /api/admin/players
func (h *Handler) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	var req deletePlayerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID == "" {
		h.respondError(w, http.StatusBadRequest, "ID is required")
		return
	}

	_, err := h.service.DeleteParticipant(r.Context(), &tournament.DeleteParticipantInput{
		ParticipantID: req.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tournament.ErrParticipantNotFound):
			h.respondError(w, http.StatusNotFound, "participant not found")
		case errors.Is(err, tournament.ErrLeaderDelete):
			h.respondError(w, http.StatusBadRequest, "team leaders cannot be deleted")
		default:
			h.respondInternalError(w, "delete participant", err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, &successResponse{Success: true})
}
