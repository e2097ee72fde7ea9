package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// EntityView is a read-only copy of an enemy or bullet.
type EntityView struct {
	ID   EntityID
	Body core.Rect[float64]
}

// Snapshot is an immutable copy of the world after some command.
type Snapshot struct {
	Width, Height float64

	Player  core.Rect[float64]
	Enemies []EntityView
	Bullets []EntityView

	Health    int
	MaxHealth int
	Score     int
	Phase     Phase
	Epoch     uint64
	Tick      uint64
}

// GameOver reports whether the snapshot was taken after game over.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// HealthRatio returns health as a fraction of max health.
func (s Snapshot) HealthRatio() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return float64(s.Health) / float64(s.MaxHealth)
}

// Digest hashes the whole snapshot. Two engines fed the same configuration,
// seed and commands produce equal digests.
func (s Snapshot) Digest() uint64 {
	buf := make([]byte, 0, 128+48*(len(s.Enemies)+len(s.Bullets)))

	putFloat := func(f float64) { buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f)) }
	putRect := func(r core.Rect[float64]) {
		putFloat(r.X)
		putFloat(r.Y)
		putFloat(r.W)
		putFloat(r.H)
	}
	putViews := func(views []EntityView) {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(views)))
		for _, v := range views {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(v.ID))
			putRect(v.Body)
		}
	}

	putFloat(s.Width)
	putFloat(s.Height)
	putRect(s.Player)
	putViews(s.Enemies)
	putViews(s.Bullets)
	for _, v := range []int{s.Health, s.MaxHealth, s.Score, int(s.Phase)} {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
	}
	buf = binary.LittleEndian.AppendUint64(buf, s.Epoch)
	buf = binary.LittleEndian.AppendUint64(buf, s.Tick)

	return xxhash.Sum64(buf)
}
