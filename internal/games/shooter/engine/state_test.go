package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMachineTransitions(t *testing.T) {
	var m Machine
	require.Equal(t, PhasePlaying, m.Phase())
	require.True(t, m.Accepts(0))

	_, ok := m.Restart()
	require.False(t, ok, "restart is refused while playing")

	require.False(t, m.Check(false))
	require.True(t, m.Check(true))
	require.False(t, m.Check(true), "game over happens once")
	require.Equal(t, PhaseGameOver, m.Phase())
	require.False(t, m.Accepts(0))

	epoch, ok := m.Restart()
	require.True(t, ok)
	require.Equal(t, uint64(1), epoch)
	require.True(t, m.Accepts(1))
	require.False(t, m.Accepts(0), "stale epoch")
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "playing", PhasePlaying.String())
	require.Equal(t, "game_over", PhaseGameOver.String())
}
