package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "config: invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks that a configuration can drive a simulation.
// Returns nil or a *ValidationError.
func Validate(cfg ShooterConfig) error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(cfg.Timing.TickPeriod > 0, "timing.tick_period must be positive, got %s", cfg.Timing.TickPeriod)
	check(cfg.Timing.SpawnPeriod > 0, "timing.spawn_period must be positive, got %s", cfg.Timing.SpawnPeriod)

	check(cfg.Playfield.Width > 0, "playfield.width must be positive, got %g", cfg.Playfield.Width)
	check(cfg.Playfield.Height > 0, "playfield.height must be positive, got %g", cfg.Playfield.Height)

	check(cfg.Player.Width > 0 && cfg.Player.Height > 0, "player size must be positive, got %gx%g", cfg.Player.Width, cfg.Player.Height)
	check(cfg.Enemy.Width > 0 && cfg.Enemy.Height > 0, "enemy size must be positive, got %gx%g", cfg.Enemy.Width, cfg.Enemy.Height)
	check(cfg.Bullet.Width > 0 && cfg.Bullet.Height > 0, "bullet size must be positive, got %gx%g", cfg.Bullet.Width, cfg.Bullet.Height)

	check(cfg.Player.Width <= cfg.Playfield.Width, "player.width %g exceeds playfield.width %g", cfg.Player.Width, cfg.Playfield.Width)
	check(cfg.Enemy.Width <= cfg.Playfield.Width, "enemy.width %g exceeds playfield.width %g", cfg.Enemy.Width, cfg.Playfield.Width)
	check(cfg.Player.BottomMargin >= 0, "player.bottom_margin must not be negative, got %g", cfg.Player.BottomMargin)
	check(cfg.PlayerY() >= 0, "player does not fit vertically: height %g + margin %g > playfield.height %g",
		cfg.Player.Height, cfg.Player.BottomMargin, cfg.Playfield.Height)

	check(cfg.Player.Speed >= 0, "player.speed must not be negative, got %g", cfg.Player.Speed)
	check(cfg.Enemy.Speed > 0, "enemy.speed must be positive, got %g", cfg.Enemy.Speed)
	check(cfg.Bullet.Speed > 0, "bullet.speed must be positive, got %g", cfg.Bullet.Speed)

	check(cfg.Rules.MaxHealth > 0, "rules.max_health must be positive, got %d", cfg.Rules.MaxHealth)
	check(cfg.Rules.HitDamage >= 0, "rules.hit_damage must not be negative, got %d", cfg.Rules.HitDamage)
	check(cfg.Rules.EscapePenalty >= 0, "rules.escape_penalty must not be negative, got %d", cfg.Rules.EscapePenalty)
	check(cfg.Rules.KillHeal >= 0, "rules.kill_heal must not be negative, got %d", cfg.Rules.KillHeal)
	check(cfg.Rules.ScorePerKill >= 0, "rules.score_per_kill must not be negative, got %d", cfg.Rules.ScorePerKill)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
