package team

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/smashcrew/teambalance/internal/repositories/team Repository

import (
	"context"

	"github.com/smashcrew/teambalance/internal/models"
)

// Repository defines the interface for team data persistence
type Repository interface {
	// SaveTeam persists a team
	SaveTeam(ctx context.Context, input *SaveTeamInput) error

	// GetTeam retrieves a team by ID
	GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error)

	// ListTeams retrieves all teams
	ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error)
}
