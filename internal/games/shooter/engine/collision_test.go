package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func enemyAt(id EntityID, x, y float64) Enemy {
	return Enemy{ID: id, Body: core.NewRect(x, y, 40, 40)}
}

func bulletAt(id EntityID, x, y float64) Bullet {
	return Bullet{ID: id, Body: core.NewRect(x, y, 10, 20)}
}

var testPlayer = core.NewRect(175.0, 700, 50, 50)

func TestResolvePlayerHitIsNotKill(t *testing.T) {
	enemies := []Enemy{enemyAt(1, 180, 680)}
	bullets := []Bullet{bulletAt(2, 190, 690)}

	res := Resolve(testPlayer, enemies, bullets)

	require.True(t, res.EnemiesHitByPlayer.Has(1))
	require.False(t, res.EnemiesHitByBullet.Has(1))
	require.Zero(t, res.KillCount)
	require.Empty(t, res.BulletsConsumed, "bullet is not consumed by an enemy that hit the player")
	require.Equal(t, 1, res.PlayerHits())
}

func TestResolveContactDamageOncePerTick(t *testing.T) {
	enemies := []Enemy{enemyAt(1, 170, 680), enemyAt(2, 200, 690)}

	res := Resolve(testPlayer, enemies, nil)

	require.Len(t, res.EnemiesHitByPlayer, 2)
	require.Equal(t, 1, res.PlayerHits())
	require.Len(t, res.EnemyRemovals(), 2)
}

func TestResolveSeveralBulletsOneKill(t *testing.T) {
	enemies := []Enemy{enemyAt(1, 100, 100)}
	bullets := []Bullet{bulletAt(10, 105, 120), bulletAt(11, 120, 110), bulletAt(12, 300, 300)}

	res := Resolve(testPlayer, enemies, bullets)

	require.Equal(t, 1, res.KillCount)
	require.Equal(t, []EntityID{1}, res.EnemiesHitByBullet.Sorted())
	require.Equal(t, []EntityID{10}, res.BulletsConsumed.Sorted(), "later bullets find the enemy already claimed")
}

func TestResolveOneBulletSeveralEnemies(t *testing.T) {
	enemies := []Enemy{enemyAt(1, 100, 100), enemyAt(2, 105, 105)}
	bullets := []Bullet{bulletAt(10, 110, 110)}

	res := Resolve(testPlayer, enemies, bullets)

	require.Equal(t, 1, res.KillCount)
	require.Equal(t, []EntityID{1}, res.EnemiesHitByBullet.Sorted())
	require.Equal(t, []EntityID{10}, res.BulletsConsumed.Sorted())
}

func TestResolveBulletOrderDecidesClaims(t *testing.T) {
	tests := []struct {
		name     string
		bullets  []Bullet
		kills    []EntityID
		consumed []EntityID
	}{
		{
			// 10 overlaps enemies 1 and 2, 11 overlaps only enemy 1.
			name:     "wide bullet first",
			bullets:  []Bullet{bulletAt(10, 135, 110), bulletAt(11, 100, 110)},
			kills:    []EntityID{1},
			consumed: []EntityID{10},
		},
		{
			name:     "narrow bullet first",
			bullets:  []Bullet{bulletAt(11, 100, 110), bulletAt(10, 135, 110)},
			kills:    []EntityID{1, 2},
			consumed: []EntityID{10, 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enemies := []Enemy{enemyAt(1, 100, 100), enemyAt(2, 140, 100)}

			res := Resolve(testPlayer, enemies, tt.bullets)

			require.Equal(t, tt.kills, res.EnemiesHitByBullet.Sorted())
			require.Equal(t, len(tt.kills), res.KillCount)
			require.Equal(t, tt.consumed, res.BulletsConsumed.Sorted())
		})
	}
}

func TestResolveTouchingEdgesDoNotCollide(t *testing.T) {
	enemies := []Enemy{
		enemyAt(1, 175, 660), // bottom edge on player top
		enemyAt(2, 135, 700), // right edge on player left
		enemyAt(3, 0, 0),
	}
	bullets := []Bullet{bulletAt(10, 40, 0)} // left edge on enemy 3 right

	res := Resolve(testPlayer, enemies, bullets)

	require.Empty(t, res.EnemiesHitByPlayer)
	require.Empty(t, res.EnemiesHitByBullet)
	require.Empty(t, res.BulletsConsumed)
}

func TestResolveDisjointSets(t *testing.T) {
	enemies := []Enemy{enemyAt(1, 180, 680), enemyAt(2, 0, 0), enemyAt(3, 300, 300)}
	bullets := []Bullet{bulletAt(10, 190, 690), bulletAt(11, 5, 5)}

	res := Resolve(testPlayer, enemies, bullets)

	for id := range res.EnemiesHitByPlayer {
		require.False(t, res.EnemiesHitByBullet.Has(id))
	}
	require.Equal(t, len(res.EnemiesHitByBullet), res.KillCount)
	require.Equal(t, []EntityID{2}, res.EnemiesHitByBullet.Sorted())
}
