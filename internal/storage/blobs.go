package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ReadBlob returns the user's serialized workout map, or nil when none
// has been persisted yet.
func (db *DB) ReadBlob(ctx context.Context, userID string) ([]byte, error) {
	var data []byte
	err := db.sql.QueryRowContext(ctx,
		`SELECT data FROM workout_blobs WHERE user_id = ?`, userID,
	).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("reading workout blob: %w", err)
	}
	return data, nil
}

// WriteBlob replaces the user's serialized workout map.
func (db *DB) WriteBlob(ctx context.Context, userID string, data []byte) error {
	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO workout_blobs (user_id, data) VALUES (?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		userID, data)
	if err != nil {
		return fmt.Errorf("writing workout blob: %w", err)
	}
	return nil
}

// DeleteBlob erases the user's persisted workout map. Deleting a blob
// that does not exist is not an error.
func (db *DB) DeleteBlob(ctx context.Context, userID string) error {
	if _, err := db.sql.ExecContext(ctx,
		`DELETE FROM workout_blobs WHERE user_id = ?`, userID,
	); err != nil {
		return fmt.Errorf("deleting workout blob: %w", err)
	}
	return nil
}
