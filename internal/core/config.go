package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score
	Health    int    // Current health
	MaxHealth int    // Health ceiling
	GameOver  bool   // Whether the game has ended
	Epoch     uint64 // Restart generation; timer callbacks carry it
	Tick      uint64 // Ticks simulated in this epoch
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State GameState

	Applied   bool // False when the tick was stale or the game was over
	Escapes   int  // Enemies that crossed the bottom edge
	Kills     int  // Enemies destroyed by bullets
	PlayerHit bool // Whether contact damage was dealt
	Ended     bool // Whether this tick caused the game over transition
}
