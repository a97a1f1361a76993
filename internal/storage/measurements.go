package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Measurement is one body-measurement record. All numeric fields are
// optional; users log whatever they track.
type Measurement struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	Date              time.Time  `json:"date"`
	Weight            *float64   `json:"weight,omitempty"`
	BodyFatPercentage *float64   `json:"body_fat_percentage,omitempty"`
	MuscleMass        *float64   `json:"muscle_mass,omitempty"`
	Circumferences    map[string]float64 `json:"circumferences,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

// InsertMeasurement stores a measurement record, assigning an ID if the
// caller did not.
func (db *DB) InsertMeasurement(ctx context.Context, m *Measurement) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding measurement: %w", err)
	}
	if _, err := db.sql.ExecContext(ctx,
		`INSERT INTO body_measurements (id, user_id, date, doc) VALUES (?, ?, ?, ?)`,
		m.ID, m.UserID, m.Date, doc,
	); err != nil {
		return fmt.Errorf("inserting measurement: %w", err)
	}
	return nil
}

// QueryMeasurements returns the user's measurements newest first, capped
// at limit (0 means no cap).
func (db *DB) QueryMeasurements(ctx context.Context, userID string, limit int) ([]Measurement, error) {
	query := `SELECT doc FROM body_measurements WHERE user_id = ? ORDER BY date DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying measurements: %w", err)
	}
	defer rows.Close()

	var result []Measurement
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning measurement: %w", err)
		}
		var m Measurement
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("decoding measurement document: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
