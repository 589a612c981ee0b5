package models

import (
	"time"
)

// Phase represents the current stage of the assignment lifecycle
type Phase string

const (
	// PhaseUnassigned indicates no assignment has been committed
	PhaseUnassigned Phase = "unassigned"

	// PhaseAssigned indicates an assignment has been committed but not published
	PhaseAssigned Phase = "assigned"

	// PhasePublished indicates the committed assignment is visible to participants
	PhasePublished Phase = "published"
)

// AppState is the singleton record tracking the assignment lifecycle
type AppState struct {
	// IsAssigned is true once an assignment has been committed and not yet reset
	IsAssigned bool

	// IsPublished is true once results are exposed to participants
	IsPublished bool

	// AssignedAt is when the assignment was committed, nil if unassigned
	AssignedAt *time.Time
}

// Phase derives the lifecycle stage from the stored flags. IsPublished is
// only honored when IsAssigned is set.
func (s *AppState) Phase() Phase {
	if !s.IsAssigned {
		return PhaseUnassigned
	}
	if s.IsPublished {
		return PhasePublished
	}
	return PhaseAssigned
}
