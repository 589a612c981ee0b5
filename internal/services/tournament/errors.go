package tournament

import (
	"errors"
	"fmt"

	"github.com/smashcrew/teambalance/internal/models"
)

// Define errors
var (
	ErrInvalidName         = errors.New("name is required")
	ErrInvalidLevel        = errors.New("level must be between 1 and 5")
	ErrInsufficientLeaders = errors.New("four team leaders must be configured")
	ErrAlreadyAssigned     = errors.New("assignment already committed")
	ErrNotAssigned         = errors.New("assignment has not been committed")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrLeaderDelete        = errors.New("team leaders cannot be deleted")

	ErrNilConfig          = errors.New("config cannot be nil")
	ErrNilParticipantRepo = errors.New("participant repository cannot be nil")
	ErrNilTeamRepo        = errors.New("team repository cannot be nil")
	ErrNilAppStateRepo    = errors.New("app state repository cannot be nil")
	ErrNilRandomSource    = errors.New("random source cannot be nil")
	ErrNilClock           = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator   = errors.New("UUID generator cannot be nil")
)

// InsufficientLeadersError reports how many leaders are currently configured.
// It unwraps to ErrInsufficientLeaders so callers can match it with errors.Is.
type InsufficientLeadersError struct {
	LeadersCount int
}

// Error implements the error interface
func (e *InsufficientLeadersError) Error() string {
	return fmt.Sprintf("%d of %d team leaders configured", e.LeadersCount, models.TeamCount)
}

// Unwrap makes the error match ErrInsufficientLeaders
func (e *InsufficientLeadersError) Unwrap() error {
	return ErrInsufficientLeaders
}
