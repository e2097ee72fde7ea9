package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
// Must stay in sync with defaults/shooter.yaml.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Timing: TimingConfig{
			TickPeriod:  16 * time.Millisecond,
			SpawnPeriod: 1500 * time.Millisecond,
		},
		Playfield: PlayfieldConfig{
			Width:  400,
			Height: 800,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       50,
			Speed:        8,
			BottomMargin: 50,
		},
		Enemy: BodyConfig{
			Width:  40,
			Height: 40,
			Speed:  2,
		},
		Bullet: BodyConfig{
			Width:  10,
			Height: 20,
			Speed:  5,
		},
		Rules: RulesConfig{
			MaxHealth:     100,
			HitDamage:     25,
			EscapePenalty: 1,
			KillHeal:      1,
			ScorePerKill:  10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
