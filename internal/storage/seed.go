package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claude/ironforge/internal/program"
)

// Seed performs first-use initialization for a user: the exercise
// catalog, the default program, and default settings. Existing records
// are left untouched, so it runs safely on every start.
func (db *DB) Seed(ctx context.Context, userID string, log *slog.Logger) error {
	count, err := db.CountExercises(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		exercises := program.DefaultExercises()
		if err := db.InsertExercises(ctx, exercises); err != nil {
			return err
		}
		log.Info("seeded exercise catalog", "count", len(exercises))
	}

	existing, err := db.GetProgram(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		p := program.DefaultProgram(userID)
		if err := p.Validate(); err != nil {
			return fmt.Errorf("default program: %w", err)
		}
		if err := db.SaveProgram(ctx, p); err != nil {
			return err
		}
		log.Info("seeded default program", "program", p.ID, "user", userID)
	}

	settings, err := db.GetSettings(ctx, userID)
	if err != nil {
		return err
	}
	if settings == nil {
		s := program.DefaultSettings(userID)
		if err := db.SaveSettings(ctx, &s); err != nil {
			return err
		}
		log.Info("seeded default settings", "user", userID)
	}
	return nil
}
