package models

import (
	"time"
)

const (
	// MinLevel is the lowest self-reported skill level
	MinLevel = 1

	// MaxLevel is the highest self-reported skill level
	MaxLevel = 5
)

// Participant represents a registered tournament participant
type Participant struct {
	// ID is the unique identifier for the participant
	ID string

	// Name is the display name of the participant
	Name string

	// Level is the self-reported skill level (1-5, 5 = expert)
	Level int

	// Token is the secret string the participant uses to look up their own result
	Token string

	// TeamID is the ID of the team the participant is assigned to, empty if unassigned
	TeamID string

	// IsLeader indicates the participant is fixed to their team as its leader
	IsLeader bool

	// CreatedAt is when the participant registered
	CreatedAt time.Time
}
