package engine

import "github.com/vovakirdan/tui-shooter/internal/core"

// Resolution is the outcome of one collision pass. It only describes what
// should happen; the engine applies it to the store and ledger.
type Resolution struct {
	// EnemiesHitByPlayer are enemies overlapping the player.
	EnemiesHitByPlayer IDSet
	// EnemiesHitByBullet are enemies claimed by a bullet. Disjoint from EnemiesHitByPlayer.
	EnemiesHitByBullet IDSet
	// BulletsConsumed are bullets that claimed an enemy, one bullet per enemy.
	BulletsConsumed IDSet
	// KillCount equals len(EnemiesHitByBullet).
	KillCount int
}

// PlayerHits returns the number of contact hits to charge this tick.
// Contact damage is dealt at most once per tick however many enemies overlap.
func (r Resolution) PlayerHits() int {
	if len(r.EnemiesHitByPlayer) > 0 {
		return 1
	}
	return 0
}

// EnemyRemovals returns every enemy that must leave the store.
func (r Resolution) EnemyRemovals() IDSet {
	return r.EnemiesHitByPlayer.Union(r.EnemiesHitByBullet)
}

// Resolve checks the player against every enemy, then every bullet against
// the enemies still standing.
//
// An enemy touching the player counts as a player hit and is never a kill.
// Bullets are scanned in order and each one claims the first unclaimed enemy
// it overlaps, so a bullet kills at most one enemy and an enemy absorbs at
// most one bullet. Bullets that find nothing stay in play.
func Resolve(player core.Rect[float64], enemies []Enemy, bullets []Bullet) Resolution {
	res := Resolution{
		EnemiesHitByPlayer: make(IDSet),
		EnemiesHitByBullet: make(IDSet),
		BulletsConsumed:    make(IDSet),
	}

	for _, e := range enemies {
		if e.Body.Intersects(player) {
			res.EnemiesHitByPlayer.Add(e.ID)
		}
	}

	for _, b := range bullets {
		for _, e := range enemies {
			if res.EnemiesHitByPlayer.Has(e.ID) || res.EnemiesHitByBullet.Has(e.ID) {
				continue
			}
			if b.Body.Intersects(e.Body) {
				res.BulletsConsumed.Add(b.ID)
				res.EnemiesHitByBullet.Add(e.ID)
				res.KillCount++
				break
			}
		}
	}

	return res
}
