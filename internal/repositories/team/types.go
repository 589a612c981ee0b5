package team

import "github.com/smashcrew/teambalance/internal/models"

// SaveTeamInput contains parameters for saving a team
type SaveTeamInput struct {
	Team *models.Team
}

// GetTeamInput contains parameters for retrieving a team
type GetTeamInput struct {
	TeamID string
}

// ListTeamsInput contains parameters for retrieving all teams
type ListTeamsInput struct {
}

// ListTeamsOutput contains the result of retrieving all teams
type ListTeamsOutput struct {
	Teams []*models.Team
}
