package engine

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// TickDelta gathers every health and score event of one tick.
type TickDelta struct {
	Escapes    int // enemies that left through the bottom edge
	PlayerHits int // contact hits, charged at most once
	Kills      int // enemies destroyed by bullets
}

// Settlement is the ledger state after a tick was settled.
type Settlement struct {
	Health       int
	Score        int
	BecameLethal bool // health reached zero during this settlement
}

// Ledger tracks health and score.
//
// Health stays within [0, MaxHealth] and score never decreases. All deltas of
// a tick are summed against the health at the start of the tick and clamped
// once, so a heal and a debit in the same tick cancel out regardless of
// which event was observed first.
type Ledger struct {
	rules  config.RulesConfig
	health int
	score  int
	lethal bool
}

// NewLedger creates a ledger at full health and zero score.
func NewLedger(rules config.RulesConfig) *Ledger {
	l := &Ledger{rules: rules}
	l.Reset()
	return l
}

// Reset restores full health and zero score.
func (l *Ledger) Reset() {
	l.health = l.rules.MaxHealth
	l.score = 0
	l.lethal = false
}

// Health returns current health.
func (l *Ledger) Health() int { return l.health }

// MaxHealth returns the health ceiling.
func (l *Ledger) MaxHealth() int { return l.rules.MaxHealth }

// Score returns the current score.
func (l *Ledger) Score() int { return l.score }

// IsLethal reports whether health has reached zero.
func (l *Ledger) IsLethal() bool { return l.health == 0 }

// ApplyEscapeDebit charges the escape penalty for n enemies.
func (l *Ledger) ApplyEscapeDebit(n int) int {
	l.applyHealth(-max(n, 0) * l.rules.EscapePenalty)
	return l.health
}

// ApplyCombatDelta charges contact damage and credits kill heals.
// Contact damage is charged at most once per call.
func (l *Ledger) ApplyCombatDelta(playerHits, kills int) int {
	l.applyHealth(combatHealth(l.rules, playerHits, kills))
	return l.health
}

// ApplyScoreDelta credits score for kills.
func (l *Ledger) ApplyScoreDelta(kills int) int {
	l.score += max(kills, 0) * l.rules.ScorePerKill
	return l.score
}

// Settle applies a whole tick at once.
func (l *Ledger) Settle(d TickDelta) Settlement {
	wasLethal := l.lethal
	delta := -max(d.Escapes, 0)*l.rules.EscapePenalty + combatHealth(l.rules, d.PlayerHits, d.Kills)
	l.applyHealth(delta)
	l.ApplyScoreDelta(d.Kills)

	return Settlement{
		Health:       l.health,
		Score:        l.score,
		BecameLethal: l.lethal && !wasLethal,
	}
}

func (l *Ledger) applyHealth(delta int) {
	l.health = core.Clamp(l.health+delta, 0, l.rules.MaxHealth)
	if l.health == 0 {
		l.lethal = true
	}
}

func combatHealth(rules config.RulesConfig, playerHits, kills int) int {
	delta := max(kills, 0) * rules.KillHeal
	if playerHits > 0 {
		delta -= rules.HitDamage
	}
	return delta
}
