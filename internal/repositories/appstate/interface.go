package appstate

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/smashcrew/teambalance/internal/repositories/appstate Repository

import (
	"context"

	"github.com/smashcrew/teambalance/internal/models"
)

// Repository defines the interface for the singleton app state persistence
type Repository interface {
	// GetAppState retrieves the app state, returning the zero state when none is stored
	GetAppState(ctx context.Context, input *GetAppStateInput) (*models.AppState, error)

	// SaveAppState persists the app state
	SaveAppState(ctx context.Context, input *SaveAppStateInput) error
}
