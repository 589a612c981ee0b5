package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/smashcrew/teambalance/internal/repositories/participant Repository

import (
	"context"

	"github.com/smashcrew/teambalance/internal/models"
)

// Repository defines the interface for participant data persistence
type Repository interface {
	// SaveParticipant persists a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// GetParticipantByToken retrieves a participant by lookup token
	GetParticipantByToken(ctx context.Context, input *GetParticipantByTokenInput) (*models.Participant, error)

	// ListParticipants retrieves all participants
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// DeleteParticipant removes a participant, refusing to remove a leader
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error

	// BulkSetTeamID updates the team assignment of many participants at once
	BulkSetTeamID(ctx context.Context, input *BulkSetTeamIDInput) error
}
