package tournament

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/smashcrew/teambalance/internal/services/tournament Service

// Service defines the interface for tournament operations
type Service interface {
	// RegisterParticipant adds a new participant and returns their lookup token
	RegisterParticipant(ctx context.Context, input *RegisterParticipantInput) (*RegisterParticipantOutput, error)

	// ListParticipants returns all participants, newest first
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// DeleteParticipant removes a participant; leaders cannot be removed
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) (*DeleteParticipantOutput, error)

	// ListTeams returns the four teams with their resolved leaders, in name order
	ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error)

	// SetTeamLeader renames a team and moves its leader slot to another participant
	SetTeamLeader(ctx context.Context, input *SetTeamLeaderInput) (*SetTeamLeaderOutput, error)

	// GetAssignment returns the committed rosters when assigned, otherwise a fresh ephemeral preview
	GetAssignment(ctx context.Context, input *GetAssignmentInput) (*GetAssignmentOutput, error)

	// CommitAssignment runs the balancing engine and persists the result
	CommitAssignment(ctx context.Context, input *CommitAssignmentInput) (*CommitAssignmentOutput, error)

	// ResetAssignment clears every non-leader's team and the assignment flags
	ResetAssignment(ctx context.Context, input *ResetAssignmentInput) (*ResetAssignmentOutput, error)

	// SetPublished toggles whether participants can see the committed rosters
	SetPublished(ctx context.Context, input *SetPublishedInput) (*SetPublishedOutput, error)

	// GetPublishState reports the current lifecycle flags
	GetPublishState(ctx context.Context, input *GetPublishStateInput) (*GetPublishStateOutput, error)

	// GetResultForToken returns a participant's own view, including rosters once published
	GetResultForToken(ctx context.Context, input *GetResultForTokenInput) (*GetResultForTokenOutput, error)
}
