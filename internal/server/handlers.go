package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/ironforge/internal/storage"
	"github.com/claude/ironforge/internal/workout"
)

// handleProgram returns the active training program.
func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.program)
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.db.ListExercises(r.Context())
	if err != nil {
		s.log.Error("listing exercises", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load exercise catalog"})
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	settings, err := s.db.GetSettings(r.Context(), userID)
	if err != nil {
		s.log.Error("loading settings", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load settings"})
		return
	}
	if settings == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "settings not initialized"})
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// handleSetWeek moves the tracker to a new program week and writes the
// change through to the settings document so it survives restarts.
func (s *Server) handleSetWeek(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Week int `json:"week"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tracker.SetCurrentWeek(req.Week); err != nil {
		writeError(w, err)
		return
	}

	settings, err := s.db.GetSettings(r.Context(), s.userID)
	if err != nil {
		s.log.Error("loading settings", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load settings"})
		return
	}
	if settings != nil {
		settings.CurrentWeek = req.Week
		if err := s.db.SaveSettings(r.Context(), settings); err != nil {
			s.log.Error("saving settings", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save settings"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]int{"week": req.Week})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.tracker.Active()
	writeJSON(w, http.StatusOK, map[string]any{
		"active":  active != nil,
		"session": active,
	})
}

func (s *Server) handleStartWorkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DayID string `json:"day_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.DayID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day_id is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.tracker.StartWorkout(req.DayID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// handleEndWorkout finishes the active session. Ending while idle is a
// no-op, not an error. A persist failure still returns the summary; the
// data is in memory and flushes with the next write.
func (s *Server) handleEndWorkout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary, err := s.tracker.EndWorkout(r.Context())
	if summary == nil && err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		var storageErr *workout.StorageError
		if summary != nil && errors.As(err, &storageErr) {
			writeJSON(w, http.StatusOK, map[string]any{
				"summary": summary,
				"warning": "workout saved in memory only, storage is unavailable",
			})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"summary": summary})
}

func (s *Server) handleGetCell(w http.ResponseWriter, r *http.Request) {
	key, ok := cellKeyFromQuery(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"value": s.store.Get(key)})
}

// handleSetCell writes one cell and arms the debounced persist, so rapid
// edits during a workout coalesce into one storage write.
func (s *Server) handleSetCell(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Week       int    `json:"week"`
		DayID      string `json:"day_id"`
		ExerciseID string `json:"exercise_id"`
		Set        int    `json:"set"`
		Field      string `json:"field"`
		Value      string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	key, err := workout.NewKey(req.Week, req.DayID, req.ExerciseID, req.Set, workout.Field(req.Field))
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Set(key, req.Value)
	s.schedulePersist()
	w.WriteHeader(http.StatusNoContent)
}

// dayMetrics is the per-day slice of a progress or volume response.
type dayMetrics struct {
	DayID           string  `json:"day_id"`
	Name            string  `json:"name"`
	Percent         int     `json:"percent"`
	Volume          float64 `json:"volume"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	week, ok := weekFromQuery(w, r, s.tracker.CurrentWeek())
	if !ok {
		return
	}

	days := make([]dayMetrics, 0, len(s.program.Days))
	for _, day := range s.program.Days {
		dm := dayMetrics{
			DayID:   day.ID,
			Name:    day.Name,
			Percent: s.stats.DayProgress(week, day.ID),
			Volume:  s.stats.DayVolume(week, day.ID),
		}
		if minutes, logged := s.stats.SessionDuration(week, day.ID); logged {
			dm.DurationMinutes = &minutes
		}
		days = append(days, dm)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"week":    week,
		"percent": s.stats.WeekProgress(week),
		"days":    days,
	})
}

// handleVolume reports the week's training volume with a week-over-week
// delta. The delta is omitted for week 1 and whenever the previous week
// logged no volume.
func (s *Server) handleVolume(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	week, ok := weekFromQuery(w, r, s.tracker.CurrentWeek())
	if !ok {
		return
	}

	total := s.stats.WeekVolume(week)
	resp := map[string]any{
		"week":  week,
		"total": total,
	}

	days := make([]map[string]any, 0, len(s.program.Days))
	for _, day := range s.program.Days {
		days = append(days, map[string]any{
			"day_id": day.ID,
			"volume": s.stats.DayVolume(week, day.ID),
		})
	}
	resp["days"] = days

	if week > 1 {
		prev := s.stats.WeekVolume(week - 1)
		resp["previous_total"] = prev
		if pct, defined := workout.VolumeDelta(total, prev); defined {
			resp["delta_percent"] = pct
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQueryMeasurements(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	measurements, err := s.db.QueryMeasurements(r.Context(), userID, limit)
	if err != nil {
		s.log.Error("querying measurements", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load measurements"})
		return
	}
	if measurements == nil {
		measurements = []storage.Measurement{}
	}
	writeJSON(w, http.StatusOK, measurements)
}

func (s *Server) handleInsertMeasurement(w http.ResponseWriter, r *http.Request) {
	var m storage.Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	s.mu.Lock()
	m.UserID = s.userID
	s.mu.Unlock()

	if err := s.db.InsertMeasurement(r.Context(), &m); err != nil {
		s.log.Error("inserting measurement", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save measurement"})
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// handleExport dumps every logged cell in the persisted wire form, which
// is also what handleImport accepts.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

// handleImport replaces all workout data with an exported snapshot.
// Entries whose keys do not parse are skipped and counted so the caller
// can tell a clean restore from a partial one.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var flat map[string]string
	if err := json.NewDecoder(r.Body).Decode(&flat); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(r.Context(), s.userID); err != nil {
		writeError(w, err)
		return
	}
	skipped := 0
	for raw, value := range flat {
		key, err := workout.ParseKey(raw)
		if err != nil {
			s.log.Warn("skipping unparsable cell key in import", "key", raw, "error", err)
			skipped++
			continue
		}
		s.store.Set(key, value)
	}
	if err := s.store.Persist(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"imported": s.store.Len(),
		"skipped":  skipped,
	})
}

// handleReset erases all workout data and returns the tracker to week 1.
// The program, exercise catalog and measurements are untouched.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(r.Context(), s.userID); err != nil {
		writeError(w, err)
		return
	}
	if err := s.tracker.SetCurrentWeek(1); err != nil {
		writeError(w, err)
		return
	}

	settings, err := s.db.GetSettings(r.Context(), s.userID)
	if err == nil && settings != nil {
		settings.CurrentWeek = 1
		if err := s.db.SaveSettings(r.Context(), settings); err != nil {
			s.log.Warn("resetting settings week", "error", err)
		}
	}

	s.log.Info("workout data reset", "user", s.userID)
	w.WriteHeader(http.StatusNoContent)
}

// cellKeyFromQuery builds a cell key from query parameters, writing a 400
// response on any invalid input.
func cellKeyFromQuery(w http.ResponseWriter, r *http.Request) (workout.Key, bool) {
	q := r.URL.Query()
	week, err := strconv.Atoi(q.Get("week"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid week"})
		return workout.Key{}, false
	}
	set, err := strconv.Atoi(q.Get("set"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set"})
		return workout.Key{}, false
	}
	key, err := workout.NewKey(week, q.Get("day"), q.Get("exercise"), set, workout.Field(q.Get("field")))
	if err != nil {
		writeError(w, err)
		return workout.Key{}, false
	}
	return key, true
}

// weekFromQuery reads an optional ?week= parameter, falling back to the
// tracker's current week.
func weekFromQuery(w http.ResponseWriter, r *http.Request, fallback int) (int, bool) {
	raw := r.URL.Query().Get("week")
	if raw == "" {
		return fallback, true
	}
	week, err := strconv.Atoi(raw)
	if err != nil || week < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid week"})
		return 0, false
	}
	return week, true
}

// writeError maps engine errors onto HTTP statuses: validation failures
// are the client's fault, lifecycle misuse is a conflict, and storage
// trouble is a 503 because retrying later can succeed.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *workout.ValidationError
		stateErr      *workout.InvalidStateError
		storageErr    *workout.StorageError
	)
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &stateErr):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.As(err, &storageErr):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
