package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter/engine"
)

// ErrReplayNotFound is returned when no replay has the requested ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Replay is a recorded run: everything needed to rebuild the engine and
// the commands it received.
type Replay struct {
	ID        string
	Mode      string
	Seed      int64
	Config    []byte // YAML the engine was built from
	Ticks     uint64
	Digest    uint64 // final snapshot digest
	CreatedAt time.Time
	Commands  []engine.Command
}

// ReplaySummary describes a replay without its commands.
type ReplaySummary struct {
	ID           string
	Mode         string
	Seed         int64
	Ticks        uint64
	CommandCount int
	CreatedAt    time.Time
}

// SaveReplay stores a replay and its commands in one transaction.
// An empty ID is filled with a new UUID. Returns the stored ID.
func (s *Store) SaveReplay(r Replay) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO replays (id, mode, seed, config, ticks, digest)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Mode, r.Seed, string(r.Config), int64(r.Ticks), int64(r.Digest),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO replay_commands (replay_id, seq, kind, epoch, value) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare command insert: %w", err)
	}
	defer stmt.Close()

	for i, cmd := range r.Commands {
		if _, err := stmt.Exec(r.ID, i, cmd.Kind.String(), int64(cmd.Epoch), cmd.Value); err != nil {
			return "", fmt.Errorf("storage: cannot save command %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return r.ID, nil
}

// LoadReplay retrieves a replay with its commands in recorded order.
func (s *Store) LoadReplay(id string) (*Replay, error) {
	r := Replay{ID: id}
	var config string
	var ticks, digest int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT mode, seed, config, ticks, digest, created_at
		 FROM replays WHERE id = ?`,
		id,
	).Scan(&r.Mode, &r.Seed, &config, &ticks, &digest, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	r.Config = []byte(config)
	r.Ticks = uint64(ticks)
	r.Digest = uint64(digest)
	r.CreatedAt = parseTimestamp(createdAt)

	rows, err := s.db.Query(
		`SELECT kind, epoch, value FROM replay_commands
		 WHERE replay_id = ? ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay commands: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var epoch int64
		var cmd engine.Command
		if err := rows.Scan(&kind, &epoch, &cmd.Value); err != nil {
			return nil, fmt.Errorf("storage: cannot scan command: %w", err)
		}
		if cmd.Kind, err = engine.ParseCommandKind(kind); err != nil {
			return nil, fmt.Errorf("storage: replay %s: %w", id, err)
		}
		cmd.Epoch = uint64(epoch)
		r.Commands = append(r.Commands, cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// ListReplays returns the most recent replays of a mode, newest first.
// An empty mode lists every mode.
func (s *Store) ListReplays(mode string, limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.mode, r.seed, r.ticks, r.created_at,
		        (SELECT COUNT(*) FROM replay_commands c WHERE c.replay_id = r.id)
		 FROM replays r
		 WHERE ? = '' OR r.mode = ?
		 ORDER BY r.created_at DESC, r.rowid DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var out []ReplaySummary
	for rows.Next() {
		var r ReplaySummary
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Seed, &ticks, &createdAt, &r.CommandCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTimestamp(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeleteReplay removes a replay and its commands.
func (s *Store) DeleteReplay(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}
	if _, err := tx.Exec("DELETE FROM replay_commands WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay commands: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}
