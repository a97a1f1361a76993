package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/ironforge/internal/program"
)

// GetProgram returns the user's active program, or (nil, nil) when none
// has been seeded yet. A missing program is "uninitialized", not an
// error.
func (db *DB) GetProgram(ctx context.Context, userID string) (*program.Program, error) {
	var doc []byte
	err := db.sql.QueryRowContext(ctx,
		`SELECT doc FROM programs WHERE user_id = ? ORDER BY created_at LIMIT 1`, userID,
	).Scan(&doc)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("querying program: %w", err)
	}

	var p program.Program
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("decoding program document: %w", err)
	}
	return &p, nil
}

// SaveProgram stores a program document for its owner.
func (db *DB) SaveProgram(ctx context.Context, p *program.Program) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding program document: %w", err)
	}
	_, err = db.sql.ExecContext(ctx,
		`INSERT INTO programs (id, user_id, doc) VALUES (?, ?, ?)
		 ON CONFLICT (id, user_id) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`,
		p.ID, p.OwnerID, doc)
	if err != nil {
		return fmt.Errorf("saving program: %w", err)
	}
	return nil
}

// GetSettings returns the user's settings document, or (nil, nil) when
// none exists yet.
func (db *DB) GetSettings(ctx context.Context, userID string) (*program.Settings, error) {
	var doc []byte
	err := db.sql.QueryRowContext(ctx,
		`SELECT doc FROM settings WHERE user_id = ?`, userID,
	).Scan(&doc)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("querying settings: %w", err)
	}

	var s program.Settings
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, fmt.Errorf("decoding settings document: %w", err)
	}
	return &s, nil
}

// SaveSettings stores the user's settings document.
func (db *DB) SaveSettings(ctx context.Context, s *program.Settings) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings document: %w", err)
	}
	_, err = db.sql.ExecContext(ctx,
		`INSERT INTO settings (user_id, doc) VALUES (?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`,
		s.UserID, doc)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// CountExercises returns the number of catalog entries.
func (db *DB) CountExercises(ctx context.Context) (int, error) {
	var n int
	if err := db.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting exercises: %w", err)
	}
	return n, nil
}

// InsertExercises adds catalog entries, ignoring IDs already present.
func (db *DB) InsertExercises(ctx context.Context, exercises []program.Exercise) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning exercise insert: %w", err)
	}
	defer tx.Rollback()

	for _, ex := range exercises {
		doc, err := json.Marshal(ex)
		if err != nil {
			return fmt.Errorf("encoding exercise %s: %w", ex.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO exercises (id, doc) VALUES (?, ?) ON CONFLICT (id) DO NOTHING`,
			ex.ID, doc,
		); err != nil {
			return fmt.Errorf("inserting exercise %s: %w", ex.ID, err)
		}
	}
	return tx.Commit()
}

// ListExercises returns the full exercise catalog ordered by name.
func (db *DB) ListExercises(ctx context.Context) ([]program.Exercise, error) {
	rows, err := db.sql.QueryContext(ctx, `SELECT doc FROM exercises`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []program.Exercise
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		var ex program.Exercise
		if err := json.Unmarshal(doc, &ex); err != nil {
			return nil, fmt.Errorf("decoding exercise document: %w", err)
		}
		result = append(result, ex)
	}
	return result, rows.Err()
}
