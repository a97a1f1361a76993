package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// GetOrCreateUser finds or creates a user by email and returns the user
// ID. Updates last_seen and display name on each call.
func (db *DB) GetOrCreateUser(ctx context.Context, email, name string) (string, error) {
	var id string
	err := db.sql.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = ?`, email,
	).Scan(&id)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.NewString()
		if _, err := db.sql.ExecContext(ctx,
			`INSERT INTO users (id, email, name) VALUES (?, ?, ?)`,
			id, email, name,
		); err != nil {
			return "", fmt.Errorf("creating user: %w", err)
		}
		return id, nil
	case err != nil:
		return "", fmt.Errorf("finding user: %w", err)
	}

	if _, err := db.sql.ExecContext(ctx,
		`UPDATE users SET last_seen = CURRENT_TIMESTAMP,
		        name = CASE WHEN ? != '' THEN ? ELSE name END
		 WHERE id = ?`,
		name, name, id,
	); err != nil {
		return "", fmt.Errorf("updating user: %w", err)
	}
	return id, nil
}
