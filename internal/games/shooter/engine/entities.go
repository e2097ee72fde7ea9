// Package engine implements the tick-synchronized shooter simulation:
// entity storage, input resolution, enemy spawning, collision resolution,
// the health/score ledger and the game state machine.
//
// An Engine is not safe for concurrent use. Hosts serialize every call onto
// one goroutine; Runner is such a host.
package engine

import (
	"slices"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// EntityID identifies an enemy or bullet. IDs are never reused by a store.
type EntityID uint64

// IDSet is a set of entity IDs.
type IDSet map[EntityID]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...EntityID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s IDSet) Add(id EntityID) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set. Safe on a nil set.
func (s IDSet) Has(id EntityID) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set holding the ids of both sets.
func (s IDSet) Union(other IDSet) IDSet {
	out := make(IDSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []EntityID {
	ids := make([]EntityID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Player is the ship controlled by input. Its y never changes.
type Player struct {
	Body core.Rect[float64]
}

// Enemy descends one enemy speed per tick until removed.
type Enemy struct {
	ID   EntityID
	Body core.Rect[float64]
}

// Bullet ascends one bullet speed per tick until removed.
type Bullet struct {
	ID   EntityID
	Body core.Rect[float64]
}

// EntityStore owns the player, enemy and bullet collections.
// Enemies and bullets are kept in spawn order.
type EntityStore struct {
	cfg     config.ShooterConfig
	player  Player
	enemies []Enemy
	bullets []Bullet
	lastID  EntityID
}

// NewEntityStore creates a store with the player centered and no enemies or bullets.
func NewEntityStore(cfg config.ShooterConfig) *EntityStore {
	s := &EntityStore{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores the initial layout. The ID counter keeps counting.
func (s *EntityStore) Reset() {
	s.player = Player{
		Body: core.NewRect(
			s.cfg.Playfield.Width/2-s.cfg.Player.Width/2,
			s.cfg.PlayerY(),
			s.cfg.Player.Width,
			s.cfg.Player.Height,
		),
	}
	s.enemies = nil
	s.bullets = nil
}

// Player returns the player.
func (s *EntityStore) Player() Player {
	return s.player
}

// Enemies returns the live enemies. The slice must not be modified.
func (s *EntityStore) Enemies() []Enemy {
	return s.enemies
}

// Bullets returns the live bullets. The slice must not be modified.
func (s *EntityStore) Bullets() []Bullet {
	return s.bullets
}

// SetPlayerX moves the player to x, clamped to the playfield.
// Returns the realized x.
func (s *EntityStore) SetPlayerX(x float64) float64 {
	s.player.Body.X = core.Clamp(x, 0, s.cfg.PlayerMaxX())
	return s.player.Body.X
}

// MovePlayerBy shifts the player horizontally, clamped to the playfield.
func (s *EntityStore) MovePlayerBy(dx float64) float64 {
	return s.SetPlayerX(s.player.Body.X + dx)
}

// SpawnEnemy appends an enemy just above the visible area at x.
func (s *EntityStore) SpawnEnemy(x float64) EntityID {
	s.lastID++
	s.enemies = append(s.enemies, Enemy{
		ID: s.lastID,
		Body: core.NewRect(
			core.Clamp(x, 0, s.cfg.EnemyMaxX()),
			-s.cfg.Enemy.Height,
			s.cfg.Enemy.Width,
			s.cfg.Enemy.Height,
		),
	})
	return s.lastID
}

// SpawnBullet appends a bullet centered on the player, level with its top edge.
func (s *EntityStore) SpawnBullet() EntityID {
	s.lastID++
	cx, _ := s.player.Body.Center()
	s.bullets = append(s.bullets, Bullet{
		ID: s.lastID,
		Body: core.NewRect(
			cx-s.cfg.Bullet.Width/2,
			s.player.Body.Y,
			s.cfg.Bullet.Width,
			s.cfg.Bullet.Height,
		),
	})
	return s.lastID
}

// Advance moves enemies down and bullets up by one tick.
// Enemies at or past the playfield bottom are removed and counted as
// escaped; bullets at or past the top are removed silently.
func (s *EntityStore) Advance() (escaped int) {
	height := s.cfg.Playfield.Height

	keptEnemies := s.enemies[:0]
	for _, e := range s.enemies {
		e.Body.Y += s.cfg.Enemy.Speed
		if e.Body.Y >= height {
			escaped++
			continue
		}
		keptEnemies = append(keptEnemies, e)
	}
	clear(s.enemies[len(keptEnemies):])
	s.enemies = keptEnemies

	keptBullets := s.bullets[:0]
	for _, b := range s.bullets {
		b.Body.Y -= s.cfg.Bullet.Speed
		if b.Body.Y <= 0 {
			continue
		}
		keptBullets = append(keptBullets, b)
	}
	clear(s.bullets[len(keptBullets):])
	s.bullets = keptBullets

	return escaped
}

// ApplyRemovals removes the given enemies and bullets.
// IDs that are not present are ignored, so repeated calls are harmless.
func (s *EntityStore) ApplyRemovals(enemyIDs, bulletIDs IDSet) (enemiesRemoved, bulletsRemoved int) {
	if len(enemyIDs) > 0 {
		before := len(s.enemies)
		s.enemies = slices.DeleteFunc(s.enemies, func(e Enemy) bool { return enemyIDs.Has(e.ID) })
		enemiesRemoved = before - len(s.enemies)
	}
	if len(bulletIDs) > 0 {
		before := len(s.bullets)
		s.bullets = slices.DeleteFunc(s.bullets, func(b Bullet) bool { return bulletIDs.Has(b.ID) })
		bulletsRemoved = before - len(s.bullets)
	}
	return enemiesRemoved, bulletsRemoved
}
