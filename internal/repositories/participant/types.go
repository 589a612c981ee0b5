package participant

import "github.com/smashcrew/teambalance/internal/models"

// SaveParticipantInput contains parameters for saving a participant
type SaveParticipantInput struct {
	Participant *models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	ParticipantID string
}

// GetParticipantByTokenInput contains parameters for retrieving a participant by token
type GetParticipantByTokenInput struct {
	Token string
}

// ListParticipantsInput contains parameters for retrieving all participants
type ListParticipantsInput struct {
}

// ListParticipantsOutput contains the result of retrieving all participants
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// DeleteParticipantInput contains parameters for removing a participant
type DeleteParticipantInput struct {
	ParticipantID string
}

// TeamAssignment pairs a participant with their new team, empty team ID clears the assignment
type TeamAssignment struct {
	ParticipantID string
	TeamID        string
}

// BulkSetTeamIDInput contains parameters for updating many team assignments
type BulkSetTeamIDInput struct {
	Assignments []TeamAssignment
}
