package appstate

import "github.com/smashcrew/teambalance/internal/models"

// GetAppStateInput contains parameters for retrieving the app state
type GetAppStateInput struct {
}

// SaveAppStateInput contains parameters for saving the app state
type SaveAppStateInput struct {
	AppState *models.AppState
}
