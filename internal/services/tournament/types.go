package tournament

import (
	"time"

	"github.com/smashcrew/teambalance/internal/assign"
	"github.com/smashcrew/teambalance/internal/common/clock"
	"github.com/smashcrew/teambalance/internal/common/uuid"
	"github.com/smashcrew/teambalance/internal/models"
	"github.com/smashcrew/teambalance/internal/random"
	appStateRepo "github.com/smashcrew/teambalance/internal/repositories/appstate"
	participantRepo "github.com/smashcrew/teambalance/internal/repositories/participant"
	teamRepo "github.com/smashcrew/teambalance/internal/repositories/team"
)

// Config holds configuration for the tournament service
type Config struct {
	// Repository dependencies
	ParticipantRepo participantRepo.Repository
	TeamRepo        teamRepo.Repository
	AppStateRepo    appStateRepo.Repository

	// Service dependencies
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// RegisterParticipantInput contains parameters for registering a participant
type RegisterParticipantInput struct {
	// Name is the display name of the participant
	Name string

	// Level is the self-reported skill level (1-5)
	Level int
}

// RegisterParticipantOutput contains the result of registering a participant
type RegisterParticipantOutput struct {
	// ParticipantID is the unique identifier of the new participant
	ParticipantID string

	// Token is the secret the participant uses to look up their result
	Token string
}

// ListParticipantsInput contains parameters for listing participants
type ListParticipantsInput struct {
}

// ListParticipantsOutput contains all participants, newest first
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// DeleteParticipantInput contains parameters for removing a participant
type DeleteParticipantInput struct {
	ParticipantID string
}

// DeleteParticipantOutput contains the result of removing a participant
type DeleteParticipantOutput struct {
}

// TeamWithLeader pairs a team with its resolved leader
type TeamWithLeader struct {
	Team *models.Team

	// Leader is the participant leading the team, nil when the slot is empty
	Leader *models.Participant
}

// ListTeamsInput contains parameters for listing teams
type ListTeamsInput struct {
}

// ListTeamsOutput contains the four teams in name order
type ListTeamsOutput struct {
	Teams []*TeamWithLeader
}

// SetTeamLeaderInput contains parameters for updating a team's name and leader
type SetTeamLeaderInput struct {
	// TeamID is the team to update
	TeamID string

	// TeamName is the new display name of the team
	TeamName string

	// LeaderID is the participant taking the leader slot, empty to clear it
	LeaderID string
}

// SetTeamLeaderOutput contains the result of updating a team
type SetTeamLeaderOutput struct {
}

// GetAssignmentInput contains parameters for fetching the preview or current rosters
type GetAssignmentInput struct {
}

// GetAssignmentOutput contains the rosters and their spread stats
type GetAssignmentOutput struct {
	// Teams are the per-team rosters in team name order
	Teams []*assign.TeamPreview

	// Stats aggregates the balance spread across teams
	Stats *assign.Stats

	// IsAssigned is true when the rosters come from a committed assignment
	IsAssigned bool

	// IsPublished is true when the committed assignment is visible to participants
	IsPublished bool
}

// CommitAssignmentInput contains parameters for committing an assignment
type CommitAssignmentInput struct {
}

// CommitAssignmentOutput contains the result of committing an assignment
type CommitAssignmentOutput struct {
	// AssignedAt is when the assignment was committed
	AssignedAt time.Time
}

// ResetAssignmentInput contains parameters for resetting the assignment
type ResetAssignmentInput struct {
}

// ResetAssignmentOutput contains the result of resetting the assignment
type ResetAssignmentOutput struct {
}

// SetPublishedInput contains parameters for toggling publication
type SetPublishedInput struct {
	Published bool
}

// SetPublishedOutput contains the result of toggling publication
type SetPublishedOutput struct {
	IsPublished bool
}

// GetPublishStateInput contains parameters for reading the lifecycle flags
type GetPublishStateInput struct {
}

// GetPublishStateOutput contains the current lifecycle flags
type GetPublishStateOutput struct {
	IsAssigned  bool
	IsPublished bool
}

// GetResultForTokenInput contains parameters for a participant's self-lookup
type GetResultForTokenInput struct {
	Token string
}

// GetResultForTokenOutput contains a participant's view of the results
type GetResultForTokenOutput struct {
	// Participant is the token owner
	Participant *models.Participant

	// MyTeam is the owner's team roster, nil until published
	MyTeam *assign.TeamPreview

	// AllTeams are all team rosters, empty until published
	AllTeams []*assign.TeamPreview

	// IsPublished reports whether rosters are visible
	IsPublished bool
}
