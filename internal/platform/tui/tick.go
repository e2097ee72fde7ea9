// Package tui provides the Bubble Tea integration for the shooter.
// It handles the terminal UI loop, input mapping, and the tick and spawn timers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick of the given epoch.
type TickMsg struct {
	Epoch uint64
	At    time.Time
}

// SpawnMsg triggers one enemy spawn of the given epoch.
type SpawnMsg struct {
	Epoch uint64
	At    time.Time
}

// tickCmd schedules the next tick. The loop continues only while the
// handler reschedules it, so a stopped game stops its own timer.
func tickCmd(period time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, At: t}
	})
}

// spawnCmd schedules the next spawn.
func spawnCmd(period time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return SpawnMsg{Epoch: epoch, At: t}
	})
}
