package web

import (
	"time"

	"github.com/smashcrew/teambalance/internal/assign"
	"github.com/smashcrew/teambalance/internal/models"
	"github.com/smashcrew/teambalance/internal/services/tournament"
)

// errorResponse is the JSON shape of every error body
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse acknowledges a mutation
type successResponse struct {
	Success bool `json:"success"`
}

// participantView is a participant without their secret token
type participantView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	TeamID    string    `json:"team_id,omitempty"`
	IsLeader  bool      `json:"is_leader"`
	CreatedAt time.Time `json:"created_at"`
}

// participantSelfView is the token owner's own record, token included
type participantSelfView struct {
	participantView
	Token string `json:"token"`
}

// teamView is a display-ready team roster
type teamView struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Members     []*participantView `json:"members"`
	Score       int                `json:"score"`
	MemberCount int                `json:"memberCount"`
}

// teamWithLeaderView is a team with its resolved leader
type teamWithLeaderView struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	LeaderID  string           `json:"leader_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	Leader    *participantView `json:"leader"`
}

// statsView mirrors the engine's spread stats
type statsView struct {
	TotalParticipants int `json:"totalParticipants"`
	MaxScore          int `json:"maxScore"`
	MinScore          int `json:"minScore"`
	ScoreDiff         int `json:"scoreDiff"`
	MaxMembers        int `json:"maxMembers"`
	MinMembers        int `json:"minMembers"`
	MemberDiff        int `json:"memberDiff"`
}

// registerRequest is the body of POST /api/register
type registerRequest struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// registerResponse is the body returned after a successful registration
type registerResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// loginRequest is the body of POST /api/admin/login
type loginRequest struct {
	Password string `json:"password"`
}

// assignResponse is the body of GET /api/admin/assign
type assignResponse struct {
	Teams        []*teamView `json:"teams"`
	Stats        *statsView  `json:"stats"`
	IsAssigned   bool        `json:"isAssigned"`
	IsPublished  bool        `json:"isPublished"`
	Error        string      `json:"error,omitempty"`
	LeadersCount *int        `json:"leadersCount,omitempty"`
}

// publishStateResponse is the body of GET /api/admin/publish
type publishStateResponse struct {
	IsAssigned  bool `json:"isAssigned"`
	IsPublished bool `json:"isPublished"`
}

// publishRequest is the body of POST /api/admin/publish
type publishRequest struct {
	Publish bool `json:"publish"`
}

// publishResponse acknowledges a publish toggle
type publishResponse struct {
	Success     bool `json:"success"`
	IsPublished bool `json:"isPublished"`
}

// teamsResponse is the body of GET /api/admin/teams
type teamsResponse struct {
	Teams        []*teamWithLeaderView `json:"teams"`
	Participants []*participantView    `json:"participants"`
}

// updateTeamRequest is the body of PUT /api/admin/teams
type updateTeamRequest struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	LeaderID string `json:"leaderId"`
}

// playersResponse is the body of GET /api/admin/players
type playersResponse struct {
	Participants []*participantView `json:"participants"`
}

// deletePlayerRequest is the body of DELETE /api/admin/players
type deletePlayerRequest struct {
	ID string `json:"id"`
}

// resultResponse is the body of GET /api/result
type resultResponse struct {
	Participant *participantSelfView `json:"participant"`
	MyTeam      *teamView            `json:"myTeam"`
	AllTeams    []*teamView          `json:"allTeams"`
	IsPublished bool                 `json:"isPublished"`
}

func newParticipantView(p *models.Participant) *participantView {
	return &participantView{
		ID:        p.ID,
		Name:      p.Name,
		Level:     p.Level,
		TeamID:    p.TeamID,
		IsLeader:  p.IsLeader,
		CreatedAt: p.CreatedAt,
	}
}

func newParticipantSelfView(p *models.Participant) *participantSelfView {
	return &participantSelfView{
		participantView: *newParticipantView(p),
		Token:           p.Token,
	}
}

func newTeamView(preview *assign.TeamPreview) *teamView {
	members := make([]*participantView, 0, len(preview.Members))
	for _, member := range preview.Members {
		members = append(members, newParticipantView(member))
	}

	return &teamView{
		ID:          preview.ID,
		Name:        preview.Name,
		Members:     members,
		Score:       preview.Score,
		MemberCount: preview.MemberCount,
	}
}

func newTeamViews(previews []*assign.TeamPreview) []*teamView {
	views := make([]*teamView, 0, len(previews))
	for _, preview := range previews {
		views = append(views, newTeamView(preview))
	}
	return views
}

func newTeamWithLeaderView(t *tournament.TeamWithLeader) *teamWithLeaderView {
	view := &teamWithLeaderView{
		ID:        t.Team.ID,
		Name:      t.Team.Name,
		LeaderID:  t.Team.LeaderID,
		CreatedAt: t.Team.CreatedAt,
	}
	if t.Leader != nil {
		view.Leader = newParticipantView(t.Leader)
	}
	return view
}

func newStatsView(stats *assign.Stats) *statsView {
	if stats == nil {
		return nil
	}
	return &statsView{
		TotalParticipants: stats.TotalParticipants,
		MaxScore:          stats.MaxScore,
		MinScore:          stats.MinScore,
		ScoreDiff:         stats.ScoreDiff,
		MaxMembers:        stats.MaxMembers,
		MinMembers:        stats.MinMembers,
		MemberDiff:        stats.MemberDiff,
	}
}
