// Package store caches difficulty attributes in SQLite, keyed the same way as
// the legacy attribute tables: beatmap, mode and legacy mods.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"ppcalc/legacy"
	"ppcalc/rulesets"
)

var ErrNotFound = errors.New("difficulty attributes not found")

type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

func Open(path string, logger *zap.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS beatmap_difficulty_attribs (
		beatmap_id INTEGER NOT NULL,
		mode INTEGER NOT NULL,
		mods INTEGER NOT NULL,
		attrib_id INTEGER NOT NULL,
		value REAL NOT NULL,
		PRIMARY KEY (beatmap_id, mode, mods, attrib_id)
	);`)
	return err
}

// PutAttributes replaces every attribute stored for the key.
func (s *Store) PutAttributes(ctx context.Context, beatmapID int, mods rulesets.LegacyMods, attrs rulesets.DifficultyAttributes) error {
	mode := int(attrs.RulesetID())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM beatmap_difficulty_attribs WHERE beatmap_id = ? AND mode = ? AND mods = ?`,
		beatmapID, mode, int64(mods),
	); err != nil {
		return fmt.Errorf("delete attributes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO beatmap_difficulty_attribs (beatmap_id, mode, mods, attrib_id, value) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	values := attrs.DatabaseAttributes()
	for attribID, value := range values {
		if _, err := stmt.ExecContext(ctx, beatmapID, mode, int64(mods), attribID, value); err != nil {
			return fmt.Errorf("insert attribute %d: %w", attribID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.logger.Debug("stored difficulty attributes",
		zap.Int("beatmap_id", beatmapID),
		zap.Int("mode", mode),
		zap.Stringer("mods", mods),
		zap.Int("count", len(values)))
	return nil
}

// Attributes loads the attributes for the key into the variant matching mode.
func (s *Store) Attributes(ctx context.Context, beatmapID int, mode int, mods rulesets.LegacyMods) (rulesets.DifficultyAttributes, error) {
	attrs, err := legacy.CreateDifficultyAttributes(mode)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT attrib_id, value FROM beatmap_difficulty_attribs WHERE beatmap_id = ? AND mode = ? AND mods = ?`,
		beatmapID, mode, int64(mods),
	)
	if err != nil {
		return nil, fmt.Errorf("query attributes: %w", err)
	}
	defer rows.Close()

	values := make(map[int]float64)
	for rows.Next() {
		var attribID int
		var value float64
		if err := rows.Scan(&attribID, &value); err != nil {
			return nil, fmt.Errorf("scan attribute: %w", err)
		}
		values[attribID] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read attributes: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("beatmap %d mode %d mods %s: %w", beatmapID, mode, mods, ErrNotFound)
	}

	attrs.SetDatabaseAttributes(values)
	return attrs, nil
}

// AttributesForMods normalizes mods to their legacy key before the lookup.
func (s *Store) AttributesForMods(ctx context.Context, beatmapID int, ruleset rulesets.Ruleset, mods []rulesets.Mod) (rulesets.DifficultyAttributes, error) {
	key := legacy.ConvertToLegacyDifficultyAdjustmentMods(ruleset, mods)
	return s.Attributes(ctx, beatmapID, int(ruleset.ID()), key)
}
