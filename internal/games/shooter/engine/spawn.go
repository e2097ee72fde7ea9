package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// SpawnScheduler picks where enemies appear. The host calls Next once per
// spawn period while the game is playing.
type SpawnScheduler struct {
	period time.Duration
	maxX   float64
	rng    *rand.Rand
}

// NewSpawnScheduler creates a scheduler seeded for reproducible positions.
func NewSpawnScheduler(cfg config.ShooterConfig, seed int64) *SpawnScheduler {
	return &SpawnScheduler{
		period: cfg.Timing.SpawnPeriod,
		maxX:   cfg.EnemyMaxX(),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Period returns the spawn interval.
func (s *SpawnScheduler) Period() time.Duration {
	return s.period
}

// Next returns a uniformly random x in [0, playfield width - enemy width].
func (s *SpawnScheduler) Next() float64 {
	return s.rng.Float64() * s.maxX
}

// Reset reseeds the position stream.
func (s *SpawnScheduler) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}
