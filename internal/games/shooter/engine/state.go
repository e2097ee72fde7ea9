package engine

// Phase is the game state.
type Phase int

const (
	// PhasePlaying accepts ticks, spawns and input.
	PhasePlaying Phase = iota
	// PhaseGameOver freezes the world until Restart.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Machine is the game state machine.
//
// Playing moves to GameOver on the first lethal check and back to Playing
// only on Restart. Every restart starts a new epoch; timer callbacks tagged
// with an older epoch are ignored.
type Machine struct {
	phase Phase
	epoch uint64
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Epoch returns the current restart generation.
func (m *Machine) Epoch() uint64 { return m.epoch }

// Playing reports whether the game is running.
func (m *Machine) Playing() bool { return m.phase == PhasePlaying }

// Accepts reports whether a timer callback from epoch may mutate the game.
func (m *Machine) Accepts(epoch uint64) bool {
	return m.phase == PhasePlaying && epoch == m.epoch
}

// Check moves to GameOver when lethal is true.
// Returns true only for the call that made the transition.
func (m *Machine) Check(lethal bool) bool {
	if m.phase != PhasePlaying || !lethal {
		return false
	}
	m.phase = PhaseGameOver
	return true
}

// Restart returns to Playing and starts a new epoch.
// It is refused while the game is still running.
func (m *Machine) Restart() (uint64, bool) {
	if m.phase != PhaseGameOver {
		return m.epoch, false
	}
	m.phase = PhasePlaying
	m.epoch++
	return m.epoch, true
}
