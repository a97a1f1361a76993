package workout

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Blobs is the durable-storage collaborator: one opaque serialized map per
// user. A nil blob from ReadBlob means no data has ever been persisted.
type Blobs interface {
	ReadBlob(ctx context.Context, userID string) ([]byte, error)
	WriteBlob(ctx context.Context, userID string, data []byte) error
	DeleteBlob(ctx context.Context, userID string) error
}

// Store holds every logged cell for one user in memory and is the sole
// source of truth for what happened during workouts. A set is complete iff
// its reps cell is non-empty; weight and RPE are informational.
//
// Store is not safe for concurrent use; callers serialize access (the app
// shell holds a single lock around the whole engine).
type Store struct {
	blobs  Blobs
	log    *slog.Logger
	userID string
	cells  map[Key]string
	dirty  bool
}

// NewStore creates an empty store for userID backed by the given blob
// collaborator.
func NewStore(blobs Blobs, userID string, log *slog.Logger) *Store {
	return &Store{
		blobs:  blobs,
		log:    log,
		userID: userID,
		cells:  make(map[Key]string),
	}
}

// Get returns the value logged at k, or "" if the cell was never set.
// It never fails: an empty string means "not logged".
func (s *Store) Get(k Key) string {
	return s.cells[k]
}

// Set overwrites the value at k. Re-logging a set replaces the previous
// value; no history is kept per cell. The write is immediately visible to
// Get regardless of when the store is next persisted.
func (s *Store) Set(k Key, value string) {
	s.cells[k] = value
	s.dirty = true
}

// Len returns the number of logged cells, empty-valued cells included.
func (s *Store) Len() int { return len(s.cells) }

// Dirty reports whether there are in-memory changes not yet persisted.
func (s *Store) Dirty() bool { return s.dirty }

// Load replaces the in-memory map with the user's persisted blob. An
// absent blob leaves the store empty, which is the normal first-run state.
// Cells whose keys no longer parse are skipped with a warning rather than
// failing the whole load.
func (s *Store) Load(ctx context.Context, userID string) error {
	data, err := s.blobs.ReadBlob(ctx, userID)
	if err != nil {
		return &StorageError{Op: "loading workout data", Err: err}
	}

	s.userID = userID
	s.cells = make(map[Key]string)
	s.dirty = false
	if data == nil {
		return nil
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return &StorageError{Op: "decoding workout data", Err: err}
	}
	for raw, value := range flat {
		k, err := ParseKey(raw)
		if err != nil {
			s.log.Warn("skipping unparsable cell key", "key", raw, "error", err)
			continue
		}
		s.cells[k] = value
	}
	return nil
}

// Persist writes the full in-memory map to durable storage as a flat
// {cellKey: value} JSON object. On failure the in-memory state is
// untouched and stays dirty, so the next mutation retries naturally.
func (s *Store) Persist(ctx context.Context) error {
	flat := make(map[string]string, len(s.cells))
	for k, v := range s.cells {
		flat[k.String()] = v
	}
	data, err := json.Marshal(flat)
	if err != nil {
		return &StorageError{Op: "encoding workout data", Err: err}
	}
	if err := s.blobs.WriteBlob(ctx, s.userID, data); err != nil {
		return &StorageError{Op: "persisting workout data", Err: err}
	}
	s.dirty = false
	return nil
}

// Snapshot returns the cells in the persisted wire form, a flat
// {cellKey: value} map. The map is a copy; mutating it does not touch
// the store.
func (s *Store) Snapshot() map[string]string {
	flat := make(map[string]string, len(s.cells))
	for k, v := range s.cells {
		flat[k.String()] = v
	}
	return flat
}

// Clear erases the persisted blob and empties the in-memory map.
func (s *Store) Clear(ctx context.Context, userID string) error {
	if err := s.blobs.DeleteBlob(ctx, userID); err != nil {
		return &StorageError{Op: "clearing workout data", Err: err}
	}
	s.userID = userID
	s.cells = make(map[Key]string)
	s.dirty = false
	return nil
}
