// Package config provides YAML-based game configuration loading and
// validation for the shooter.
package config

import "time"

// ShooterConfig contains every tunable of the simulation.
// It is fixed for the lifetime of an engine; a restart reuses it.
type ShooterConfig struct {
	Timing    TimingConfig    `yaml:"timing"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     BodyConfig      `yaml:"enemy"`
	Bullet    BodyConfig      `yaml:"bullet"`
	Rules     RulesConfig     `yaml:"rules"`
}

// TimingConfig defines the two independent clocks.
type TimingConfig struct {
	TickPeriod  time.Duration `yaml:"tick_period"`
	SpawnPeriod time.Duration `yaml:"spawn_period"`
}

// PlayfieldConfig defines the simulated area in playfield units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per tick while a direction is held
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between ship and playfield bottom
}

// BodyConfig defines size and per-tick speed of enemies or bullets.
type BodyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// RulesConfig defines health and score arithmetic.
type RulesConfig struct {
	MaxHealth     int `yaml:"max_health"`
	HitDamage     int `yaml:"hit_damage"`     // Debit for touching an enemy, at most once per tick
	EscapePenalty int `yaml:"escape_penalty"` // Debit per enemy crossing the bottom edge
	KillHeal      int `yaml:"kill_heal"`      // Credit per enemy shot down
	ScorePerKill  int `yaml:"score_per_kill"`
}

// PlayerY returns the fixed vertical position of the player ship.
func (c ShooterConfig) PlayerY() float64 {
	return c.Playfield.Height - c.Player.Height - c.Player.BottomMargin
}

// PlayerMaxX returns the largest allowed player x.
func (c ShooterConfig) PlayerMaxX() float64 {
	return c.Playfield.Width - c.Player.Width
}

// EnemyMaxX returns the largest x an enemy can spawn at.
func (c ShooterConfig) EnemyMaxX() float64 {
	return c.Playfield.Width - c.Enemy.Width
}
