package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/mkrug/croupier/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a uniform random value in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

type defaultRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &defaultRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *defaultRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}
