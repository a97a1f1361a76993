// Package workout implements the progress and volume engine: cell-keyed
// storage of logged sets, the session lifecycle, and the derived-metric
// calculations every progress view reads.
package workout

import (
	"fmt"
	"strconv"
	"strings"
)

// Field identifies which fact about a set a cell stores.
type Field string

const (
	FieldWeight Field = "weight"
	FieldReps   Field = "reps"
	FieldRPE    Field = "rpe"

	// fieldDuration marks the per-(week,day) session duration cell. It is
	// not addressable through NewKey, which keeps duration keys disjoint
	// from every set key.
	fieldDuration Field = "duration"
)

// Key addresses one (week, day, exercise slot, set, field) cell. Being a
// comparable value type, it serves directly as a map key, so injectivity
// holds structurally; the delimited string form is only used at the
// persistence boundary.
type Key struct {
	Week       int
	DayID      string
	ExerciseID string
	Set        int
	Field      Field
}

// NewKey builds a set-cell key. Week < 1, Set < 0, an unknown field, or an
// ID containing the "_" delimiter are programming errors.
func NewKey(week int, dayID, exerciseID string, set int, field Field) (Key, error) {
	if week < 1 {
		return Key{}, validationErrorf("week must be >= 1, got %d", week)
	}
	if set < 0 {
		return Key{}, validationErrorf("set index must be >= 0, got %d", set)
	}
	switch field {
	case FieldWeight, FieldReps, FieldRPE:
	default:
		return Key{}, validationErrorf("unknown field %q", field)
	}
	if err := checkKeyID("day", dayID); err != nil {
		return Key{}, err
	}
	if err := checkKeyID("exercise", exerciseID); err != nil {
		return Key{}, err
	}
	return Key{Week: week, DayID: dayID, ExerciseID: exerciseID, Set: set, Field: field}, nil
}

// DurationKey builds the per-(week,day) session duration key. Its string
// form uses the reserved "duration" suffix where a set key always has a
// "s<index>" component, so no set key can collide with it.
func DurationKey(week int, dayID string) (Key, error) {
	if week < 1 {
		return Key{}, validationErrorf("week must be >= 1, got %d", week)
	}
	if err := checkKeyID("day", dayID); err != nil {
		return Key{}, err
	}
	return Key{Week: week, DayID: dayID, Field: fieldDuration}, nil
}

// IsDuration reports whether k addresses a session duration cell.
func (k Key) IsDuration() bool { return k.Field == fieldDuration }

// String renders the flat persisted form:
//
//	w{week}_{dayID}_{exerciseID}_s{set}_{field}
//	w{week}_{dayID}_duration
//
// IDs never contain "_" (enforced at construction), so the encoding is
// injective over valid keys.
func (k Key) String() string {
	if k.IsDuration() {
		return fmt.Sprintf("w%d_%s_duration", k.Week, k.DayID)
	}
	return fmt.Sprintf("w%d_%s_%s_s%d_%s", k.Week, k.DayID, k.ExerciseID, k.Set, k.Field)
}

// ParseKey is the inverse of String, used when loading a persisted blob.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 3 && len(parts) != 5 {
		return Key{}, validationErrorf("malformed cell key %q", s)
	}
	if !strings.HasPrefix(parts[0], "w") {
		return Key{}, validationErrorf("malformed cell key %q: missing week prefix", s)
	}
	week, err := strconv.Atoi(parts[0][1:])
	if err != nil {
		return Key{}, validationErrorf("malformed cell key %q: bad week: %v", s, err)
	}

	if len(parts) == 3 {
		if parts[2] != string(fieldDuration) {
			return Key{}, validationErrorf("malformed cell key %q: expected duration suffix", s)
		}
		return DurationKey(week, parts[1])
	}

	if !strings.HasPrefix(parts[3], "s") {
		return Key{}, validationErrorf("malformed cell key %q: missing set prefix", s)
	}
	set, err := strconv.Atoi(parts[3][1:])
	if err != nil {
		return Key{}, validationErrorf("malformed cell key %q: bad set index: %v", s, err)
	}
	return NewKey(week, parts[1], parts[2], set, Field(parts[4]))
}

func checkKeyID(kind, id string) error {
	if id == "" {
		return validationErrorf("%s ID must not be empty", kind)
	}
	if strings.Contains(id, "_") {
		return validationErrorf("%s ID %q must not contain the key delimiter", kind, id)
	}
	return nil
}
