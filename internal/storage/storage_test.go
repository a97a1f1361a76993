package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/ironforge/internal/program"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()
	if err := RunMigrations(dir, "../../migrations"); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestGetOrCreateUser verifies a user is created once and found on
// subsequent calls.
func TestGetOrCreateUser(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id1, err := db.GetOrCreateUser(ctx, "lifter@example.com", "Lifter")
	if err != nil {
		t.Fatalf("GetOrCreateUser: %v", err)
	}
	if id1 == "" {
		t.Fatal("empty user ID")
	}

	id2, err := db.GetOrCreateUser(ctx, "lifter@example.com", "")
	if err != nil {
		t.Fatalf("second GetOrCreateUser: %v", err)
	}
	if id2 != id1 {
		t.Errorf("second call returned %q, want %q", id2, id1)
	}
}

// TestProgramUninitialized verifies a missing program reads as (nil, nil),
// not as an error; the seed collaborator is responsible for creating it.
func TestProgramUninitialized(t *testing.T) {
	db := testDB(t)
	p, err := db.GetProgram(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetProgram: %v", err)
	}
	if p != nil {
		t.Errorf("GetProgram = %+v, want nil", p)
	}
}

// TestProgramRoundTrip verifies the program document survives storage
// structurally intact.
func TestProgramRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	p := program.DefaultProgram("user-1")
	if err := db.SaveProgram(ctx, p); err != nil {
		t.Fatalf("SaveProgram: %v", err)
	}

	got, err := db.GetProgram(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetProgram: %v", err)
	}
	if got == nil {
		t.Fatal("GetProgram returned nil after save")
	}
	if got.ID != p.ID || len(got.Days) != len(p.Days) {
		t.Errorf("got program %s with %d days, want %s with %d", got.ID, len(got.Days), p.ID, len(p.Days))
	}
	day, ok := got.Day("day-push")
	if !ok || len(day.Exercises) != 8 {
		t.Errorf("day-push = (%v, %v), want 8 slots", day, ok)
	}
}

// TestSettingsRoundTrip verifies settings writes are upserts.
func TestSettingsRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	s := program.DefaultSettings("user-1")
	if err := db.SaveSettings(ctx, &s); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	s.CurrentWeek = 7
	if err := db.SaveSettings(ctx, &s); err != nil {
		t.Fatalf("SaveSettings update: %v", err)
	}

	got, err := db.GetSettings(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got == nil || got.CurrentWeek != 7 {
		t.Errorf("CurrentWeek = %v, want 7", got)
	}
}

// TestBlobRoundTrip verifies the workout blob collaborator: absent reads
// as nil, write/read round-trips, delete removes.
func TestBlobRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	data, err := db.ReadBlob(ctx, "user-1")
	if err != nil {
		t.Fatalf("ReadBlob absent: %v", err)
	}
	if data != nil {
		t.Errorf("absent blob = %q, want nil", data)
	}

	blob := []byte(`{"w1_day-push_pe1_s0_reps":"8"}`)
	if err := db.WriteBlob(ctx, "user-1", blob); err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	// Overwrite on second write.
	blob2 := []byte(`{"w1_day-push_pe1_s0_reps":"10"}`)
	if err := db.WriteBlob(ctx, "user-1", blob2); err != nil {
		t.Fatalf("second WriteBlob: %v", err)
	}

	data, err = db.ReadBlob(ctx, "user-1")
	if err != nil {
		t.Fatalf("ReadBlob: %v", err)
	}
	if string(data) != string(blob2) {
		t.Errorf("ReadBlob = %s, want %s", data, blob2)
	}

	if err := db.DeleteBlob(ctx, "user-1"); err != nil {
		t.Fatalf("DeleteBlob: %v", err)
	}
	data, err = db.ReadBlob(ctx, "user-1")
	if err != nil {
		t.Fatalf("ReadBlob after delete: %v", err)
	}
	if data != nil {
		t.Errorf("blob after delete = %q, want nil", data)
	}

	// Deleting again is not an error.
	if err := db.DeleteBlob(ctx, "user-1"); err != nil {
		t.Errorf("DeleteBlob on absent blob: %v", err)
	}
}

// TestSeedIdempotent verifies first-use seeding creates the catalog,
// program, and settings exactly once.
func TestSeedIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	log := testLogger()

	if err := db.Seed(ctx, "user-1", log); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := db.Seed(ctx, "user-1", log); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	count, err := db.CountExercises(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := len(program.DefaultExercises()); count != want {
		t.Errorf("exercise count = %d, want %d", count, want)
	}

	p, err := db.GetProgram(ctx, "user-1")
	if err != nil || p == nil {
		t.Fatalf("GetProgram = (%v, %v), want seeded program", p, err)
	}
	s, err := db.GetSettings(ctx, "user-1")
	if err != nil || s == nil {
		t.Fatalf("GetSettings = (%v, %v), want seeded settings", s, err)
	}
	if s.CurrentWeek != 1 {
		t.Errorf("seeded CurrentWeek = %d, want 1", s.CurrentWeek)
	}
}

// TestMeasurements verifies measurement insert and newest-first listing.
func TestMeasurements(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	weight := 82.5
	m := &Measurement{
		UserID: "user-1",
		Weight: &weight,
		Circumferences: map[string]float64{
			"waist": 84,
			"chest": 104,
		},
	}
	if err := db.InsertMeasurement(ctx, m); err != nil {
		t.Fatalf("InsertMeasurement: %v", err)
	}
	if m.ID == "" {
		t.Error("InsertMeasurement did not assign an ID")
	}

	list, err := db.QueryMeasurements(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("QueryMeasurements: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].Weight == nil || *list[0].Weight != 82.5 {
		t.Errorf("weight = %v, want 82.5", list[0].Weight)
	}
	if list[0].Circumferences["waist"] != 84 {
		t.Errorf("waist = %v, want 84", list[0].Circumferences["waist"])
	}
}
