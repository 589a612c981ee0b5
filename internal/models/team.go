package models

import (
	"time"
)

// TeamCount is the fixed number of teams in a tournament
const TeamCount = 4

// Team represents one of the four fixed tournament teams
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// Name is the display name of the team
	Name string

	// LeaderID is the ID of the participant leading the team, empty if unset
	LeaderID string

	// CreatedAt is when the team was created
	CreatedAt time.Time
}
