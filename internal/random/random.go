package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/smashcrew/teambalance/internal/random Source

// Source provides the random choice used to break assignment ties
type Source interface {
	// Intn returns a uniform random int in [0, n)
	Intn(n int) int
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// source implements Source backed by math/rand
type source struct {
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform random int in [0, n)
func (s *source) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return s.random.Intn(n)
}
