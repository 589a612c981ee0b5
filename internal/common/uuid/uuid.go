package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// tokenLength is the length of a participant result-lookup token
const tokenLength = 16

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/smashcrew/teambalance/internal/common/uuid Generator

// Generator produces unique identifiers and lookup tokens
type Generator interface {
	// NewID returns a new unique identifier
	NewID() string

	// NewToken returns a new opaque lookup token
	NewToken() string
}

// DefaultGenerator implements the Generator interface using the uuid package
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new UUID
func (d *DefaultGenerator) NewID() string {
	return uuid.New().String()
}

// NewToken returns a 16 character token derived from a UUID
func (d *DefaultGenerator) NewToken() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return raw[:tokenLength]
}
