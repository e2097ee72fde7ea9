package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawnSchedulerRangeAndDeterminism(t *testing.T) {
	cfg := testConfig()
	a := NewSpawnScheduler(cfg, 7)
	b := NewSpawnScheduler(cfg, 7)

	for i := 0; i < 200; i++ {
		x := a.Next()
		require.GreaterOrEqual(t, x, 0.0)
		require.LessOrEqual(t, x, cfg.EnemyMaxX())
		require.Equal(t, x, b.Next())
	}
	require.Equal(t, cfg.Timing.SpawnPeriod, a.Period())
}

func TestSpawnSchedulerReset(t *testing.T) {
	s := NewSpawnScheduler(testConfig(), 1)
	first := s.Next()
	s.Next()

	s.Reset(1)
	require.Equal(t, first, s.Next())
}
