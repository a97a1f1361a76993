package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/ironforge/internal/storage"
	"github.com/claude/ironforge/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestHandlers builds handlers over a fresh migrated and seeded
// database.
func newTestHandlers(t *testing.T) *handlers {
	t.Helper()
	ctx := context.Background()
	log := testLogger()

	dir := t.TempDir()
	if err := storage.RunMigrations(dir, "../../migrations"); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	db, err := storage.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userID, err := db.GetOrCreateUser(ctx, "test@example.com", "Test User")
	if err != nil {
		t.Fatalf("GetOrCreateUser() error = %v", err)
	}
	if err := db.Seed(ctx, userID, log); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	p, err := db.GetProgram(ctx, userID)
	if err != nil || p == nil {
		t.Fatalf("GetProgram() = %v, %v, want seeded program", p, err)
	}
	return &handlers{db: db, userID: userID, program: p, log: log}
}

// logCell persists one cell directly through the engine, as the main app
// would.
func logCell(t *testing.T, h *handlers, week int, dayID, exerciseID string, set int, field workout.Field, value string) {
	t.Helper()
	ctx := context.Background()
	store := workout.NewStore(h.db, h.userID, testLogger())
	if err := store.Load(ctx, h.userID); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	k, err := workout.NewKey(week, dayID, exerciseID, set, field)
	if err != nil {
		t.Fatalf("NewKey() error = %v", err)
	}
	store.Set(k, value)
	if err := store.Persist(ctx); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// decodeResult unmarshals a tool's JSON text content.
func decodeResult[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	if res.IsError {
		t.Fatalf("tool returned error: %+v", res.Content)
	}
	text, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("content = %T, want text", res.Content[0])
	}
	var v T
	if err := json.Unmarshal([]byte(text.Text), &v); err != nil {
		t.Fatalf("decode tool result: %v", err)
	}
	return v
}

// TestGetWeekProgress verifies the tool reports the persisted completion
// for an explicit week.
func TestGetWeekProgress(t *testing.T) {
	h := newTestHandlers(t)
	for i := 0; i < 4; i++ {
		logCell(t, h, 2, "day-push", "pe1", i, workout.FieldReps, "6")
	}

	res, err := h.getWeekProgress(context.Background(), callRequest(map[string]any{"week": 2}))
	if err != nil {
		t.Fatalf("getWeekProgress() error = %v", err)
	}
	resp := decodeResult[struct {
		Week    int `json:"week"`
		Percent int `json:"percent"`
		Days    []struct {
			DayID   string `json:"day_id"`
			Percent int    `json:"percent"`
		} `json:"days"`
	}](t, res)

	if resp.Week != 2 {
		t.Errorf("week = %d, want 2", resp.Week)
	}
	for _, d := range resp.Days {
		if d.DayID == "day-push" && d.Percent != 15 {
			t.Errorf("day-push percent = %d, want 15", d.Percent)
		}
	}
}

// TestGetWeekProgressDefaultsToSettingsWeek verifies the week falls back
// to the settings document.
func TestGetWeekProgressDefaultsToSettingsWeek(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	settings, err := h.db.GetSettings(ctx, h.userID)
	if err != nil || settings == nil {
		t.Fatalf("GetSettings() = %v, %v", settings, err)
	}
	settings.CurrentWeek = 7
	if err := h.db.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	res, err := h.getWeekProgress(ctx, callRequest(nil))
	if err != nil {
		t.Fatalf("getWeekProgress() error = %v", err)
	}
	resp := decodeResult[struct {
		Week int `json:"week"`
	}](t, res)
	if resp.Week != 7 {
		t.Errorf("week = %d, want 7 from settings", resp.Week)
	}
}

// TestGetDayProgressDetail verifies per-exercise completed sets and the
// logged duration appear in the detail.
func TestGetDayProgressDetail(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	logCell(t, h, 1, "day-legs", "lg1", 0, workout.FieldReps, "5")
	logCell(t, h, 1, "day-legs", "lg1", 0, workout.FieldWeight, "140")

	store := workout.NewStore(h.db, h.userID, testLogger())
	if err := store.Load(ctx, h.userID); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	dk, err := workout.DurationKey(1, "day-legs")
	if err != nil {
		t.Fatalf("DurationKey() error = %v", err)
	}
	store.Set(dk, "55")
	if err := store.Persist(ctx); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	res, err := h.getDayProgress(ctx, callRequest(map[string]any{"day": "day-legs", "week": 1}))
	if err != nil {
		t.Fatalf("getDayProgress() error = %v", err)
	}
	resp := decodeResult[struct {
		Volume          float64 `json:"volume"`
		DurationMinutes int     `json:"duration_minutes"`
		Exercises       []struct {
			SlotID        string `json:"slot_id"`
			CompletedSets int    `json:"completed_sets"`
		} `json:"exercises"`
	}](t, res)

	if resp.Volume != 700 {
		t.Errorf("volume = %v, want 700", resp.Volume)
	}
	if resp.DurationMinutes != 55 {
		t.Errorf("duration_minutes = %d, want 55", resp.DurationMinutes)
	}
	for _, ex := range resp.Exercises {
		if ex.SlotID == "lg1" && ex.CompletedSets != 1 {
			t.Errorf("lg1 completed_sets = %d, want 1", ex.CompletedSets)
		}
	}
}

// TestGetDayProgressUnknownDay verifies an unknown day is a tool error,
// not a transport error.
func TestGetDayProgressUnknownDay(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.getDayProgress(context.Background(), callRequest(map[string]any{"day": "day-nope"}))
	if err != nil {
		t.Fatalf("getDayProgress() error = %v", err)
	}
	if !res.IsError {
		t.Error("result.IsError = false, want tool error for unknown day")
	}
}

// TestCompareWeeks verifies volumes for both weeks and the delta.
func TestCompareWeeks(t *testing.T) {
	h := newTestHandlers(t)
	logCell(t, h, 1, "day-push", "pe1", 0, workout.FieldWeight, "100")
	logCell(t, h, 1, "day-push", "pe1", 0, workout.FieldReps, "10")
	logCell(t, h, 2, "day-push", "pe1", 0, workout.FieldWeight, "110")
	logCell(t, h, 2, "day-push", "pe1", 0, workout.FieldReps, "10")

	res, err := h.compareWeeks(context.Background(), callRequest(map[string]any{"week_a": 1, "week_b": 2}))
	if err != nil {
		t.Fatalf("compareWeeks() error = %v", err)
	}
	resp := decodeResult[struct {
		WeekA struct {
			Volume float64 `json:"volume"`
		} `json:"week_a"`
		WeekB struct {
			Volume float64 `json:"volume"`
		} `json:"week_b"`
		VolumeDeltaPercent int `json:"volume_delta_percent"`
	}](t, res)

	if resp.WeekA.Volume != 1000 || resp.WeekB.Volume != 1100 {
		t.Errorf("volumes = %v, %v, want 1000, 1100", resp.WeekA.Volume, resp.WeekB.Volume)
	}
	if resp.VolumeDeltaPercent != 10 {
		t.Errorf("volume_delta_percent = %d, want 10", resp.VolumeDeltaPercent)
	}
}

// TestGetSessionDurations verifies durations are listed across weeks and
// the day filter applies.
func TestGetSessionDurations(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	store := workout.NewStore(h.db, h.userID, testLogger())
	if err := store.Load(ctx, h.userID); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, e := range []struct {
		week    int
		dayID   string
		minutes string
	}{
		{1, "day-push", "60"},
		{1, "day-pull", "45"},
		{2, "day-push", "62"},
	} {
		k, err := workout.DurationKey(e.week, e.dayID)
		if err != nil {
			t.Fatalf("DurationKey() error = %v", err)
		}
		store.Set(k, e.minutes)
	}
	if err := store.Persist(ctx); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	res, err := h.getSessionDurations(ctx, callRequest(nil))
	if err != nil {
		t.Fatalf("getSessionDurations() error = %v", err)
	}
	all := decodeResult[struct {
		Sessions []struct {
			Week            int    `json:"week"`
			DayID           string `json:"day_id"`
			DurationMinutes int    `json:"duration_minutes"`
		} `json:"sessions"`
	}](t, res)
	if len(all.Sessions) != 3 {
		t.Fatalf("sessions = %d, want 3", len(all.Sessions))
	}

	res, err = h.getSessionDurations(ctx, callRequest(map[string]any{"day": "day-push"}))
	if err != nil {
		t.Fatalf("getSessionDurations(day) error = %v", err)
	}
	filtered := decodeResult[struct {
		Sessions []struct {
			Week int `json:"week"`
		} `json:"sessions"`
	}](t, res)
	if len(filtered.Sessions) != 2 {
		t.Errorf("filtered sessions = %d, want 2", len(filtered.Sessions))
	}
}

// TestToolsRegistered verifies the assembled server construction wires
// every tool without panicking.
func TestToolsRegistered(t *testing.T) {
	h := newTestHandlers(t)
	s := New(h.db, h.userID, h.program, "test", h.log)
	if s == nil {
		t.Fatal("New() = nil")
	}
}
