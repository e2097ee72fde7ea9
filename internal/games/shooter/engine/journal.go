package engine

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// Journal records dispatched commands in order.
type Journal struct {
	mu       sync.Mutex
	commands []Command
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends a command.
func (j *Journal) Record(cmd Command) {
	j.mu.Lock()
	j.commands = append(j.commands, cmd)
	j.mu.Unlock()
}

// Commands returns a copy of the recorded commands.
func (j *Journal) Commands() []Command {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Command, len(j.commands))
	copy(out, j.commands)
	return out
}

// Len returns the number of recorded commands.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.commands)
}

// Replay builds a fresh engine and feeds it cmds in order.
func Replay(cfg config.ShooterConfig, seed int64, cmds []Command) (*Engine, error) {
	eng, err := New(cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("engine: replay: %w", err)
	}
	for _, cmd := range cmds {
		eng.Dispatch(cmd)
	}
	return eng, nil
}
