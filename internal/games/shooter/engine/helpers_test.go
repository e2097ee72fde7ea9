package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// scenarioRules are the numbers used throughout the gameplay scenarios.
var scenarioRules = config.RulesConfig{
	MaxHealth:     100,
	HitDamage:     25,
	EscapePenalty: 1,
	KillHeal:      1,
	ScorePerKill:  10,
}

func testConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Rules = scenarioRules
	return cfg
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(testConfig(), 42)
	require.NoError(t, err)
	return eng
}

// placeEnemy spawns an enemy and moves it to (x, y).
func placeEnemy(e *Engine, x, y float64) EntityID {
	id := e.store.SpawnEnemy(x)
	e.store.enemies[len(e.store.enemies)-1].Body.Y = y
	return id
}

// placeBullet spawns a bullet and moves it to (x, y).
func placeBullet(e *Engine, x, y float64) EntityID {
	id := e.store.SpawnBullet()
	b := &e.store.bullets[len(e.store.bullets)-1]
	b.Body.X = x
	b.Body.Y = y
	return id
}

// collidingEnemyY is a y from which an enemy above the player overlaps it
// after one advance.
func collidingEnemyY(cfg config.ShooterConfig) float64 {
	return cfg.PlayerY() - cfg.Enemy.Height - 1
}
