package workout

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/claude/ironforge/internal/program"
	"github.com/google/uuid"
)

// Session is the in-flight workout. It is never persisted itself; only
// its side effects (logged cells and the final duration) survive.
type Session struct {
	ID        uuid.UUID `json:"id"`
	DayID     string    `json:"day_id"`
	Week      int       `json:"week"`
	StartTime time.Time `json:"start_time"`
}

// Summary is returned by EndWorkout. TotalVolume is computed for the
// session but deliberately not stored: volume is always re-derivable from
// the raw cells, so persisting it would just be a second copy to keep
// consistent.
type Summary struct {
	DayID           string  `json:"day_id"`
	Week            int     `json:"week"`
	DurationMinutes int     `json:"duration_minutes"`
	TotalVolume     float64 `json:"total_volume"`
}

// Tracker is the session lifecycle state machine: Idle or Active, with at
// most one active session per process. Not safe for concurrent use.
type Tracker struct {
	program     *program.Program
	store       *Store
	log         *slog.Logger
	currentWeek int
	active      *Session
	now         func() time.Time
}

// NewTracker creates an idle tracker over a loaded program and store,
// starting at week 1.
func NewTracker(p *program.Program, store *Store, log *slog.Logger) *Tracker {
	return &Tracker{
		program:     p,
		store:       store,
		log:         log,
		currentWeek: 1,
		now:         time.Now,
	}
}

// CurrentWeek returns the week new sessions will be logged against.
func (t *Tracker) CurrentWeek() int { return t.currentWeek }

// SetCurrentWeek moves the tracker to the given program week.
func (t *Tracker) SetCurrentWeek(week int) error {
	if week < 1 || week > t.program.DurationWeeks {
		return validationErrorf("week %d outside program range 1..%d", week, t.program.DurationWeeks)
	}
	t.currentWeek = week
	return nil
}

// Active returns a copy of the in-flight session, or nil when idle.
func (t *Tracker) Active() *Session {
	if t.active == nil {
		return nil
	}
	s := *t.active
	return &s
}

// IsActive reports whether a workout is in progress.
func (t *Tracker) IsActive() bool { return t.active != nil }

// StartWorkout begins a session for the given program day at the current
// week. Starting while a session is already active is a caller bug:
// silently replacing the session would lose the original start time.
func (t *Tracker) StartWorkout(dayID string) (*Session, error) {
	if t.active != nil {
		return nil, invalidStateErrorf("workout already active for day %q since %s",
			t.active.DayID, t.active.StartTime.Format(time.RFC3339))
	}
	if _, ok := t.program.Day(dayID); !ok {
		return nil, invalidStateErrorf("day %q not in program %q", dayID, t.program.ID)
	}

	t.active = &Session{
		ID:        uuid.New(),
		DayID:     dayID,
		Week:      t.currentWeek,
		StartTime: t.now(),
	}
	t.log.Info("workout started", "day", dayID, "week", t.currentWeek, "session", t.active.ID)
	s := *t.active
	return &s, nil
}

// EndWorkout finishes the active session: it computes the duration in
// whole minutes and the session's total volume, writes the duration cell,
// persists the store, and returns to Idle. Called while idle it is a
// defensive no-op returning (nil, nil).
//
// A persist failure is returned as a *StorageError but does not keep the
// session alive: the in-memory data is intact and will be re-persisted on
// the next mutation.
func (t *Tracker) EndWorkout(ctx context.Context) (*Summary, error) {
	if t.active == nil {
		return nil, nil
	}
	sess := t.active
	t.active = nil

	minutes := int(math.Round(t.now().Sub(sess.StartTime).Minutes()))

	var volume float64
	if day, ok := t.program.Day(sess.DayID); ok {
		volume = volumeForDay(t.store, sess.Week, day)
	}

	key, err := DurationKey(sess.Week, sess.DayID)
	if err != nil {
		// Unreachable for a validated program; surface the caller bug.
		return nil, err
	}
	t.store.Set(key, formatMinutes(minutes))

	summary := &Summary{
		DayID:           sess.DayID,
		Week:            sess.Week,
		DurationMinutes: minutes,
		TotalVolume:     volume,
	}
	t.log.Info("workout ended",
		"day", sess.DayID, "week", sess.Week,
		"duration_min", minutes, "volume", volume,
	)

	if err := t.store.Persist(ctx); err != nil {
		t.log.Warn("workout data not persisted, will retry on next write", "error", err)
		return summary, err
	}
	return summary, nil
}
