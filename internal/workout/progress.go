package workout

import (
	"math"
	"strconv"

	"github.com/claude/ironforge/internal/program"
)

// Stats derives progress and volume metrics from a program and a store.
// Every method is a pure read: nothing is mutated, nothing is cached, and
// nothing fails. Missing or malformed data degrades to zero so progress
// views render even over a brand-new store.
type Stats struct {
	program *program.Program
	store   *Store
}

// NewStats creates a read-only aggregation view over program and store.
func NewStats(p *program.Program, store *Store) *Stats {
	return &Stats{program: p, store: store}
}

// CompletedSets counts the sets in [0, targetSets) whose reps cell is
// non-empty. A set with reps logged but no weight still counts: bodyweight
// exercises legitimately have an empty weight cell.
func (st *Stats) CompletedSets(week int, dayID, exerciseID string, targetSets int) int {
	count := 0
	for i := 0; i < targetSets; i++ {
		k, err := NewKey(week, dayID, exerciseID, i, FieldReps)
		if err != nil {
			return 0
		}
		if st.store.Get(k) != "" {
			count++
		}
	}
	return count
}

// DayProgress returns the day's completion percentage for a week:
// round(100 * completed / target) over every slot in the day. A day with
// zero target sets, or an unknown day, reports 0.
func (st *Stats) DayProgress(week int, dayID string) int {
	day, ok := st.program.Day(dayID)
	if !ok {
		return 0
	}
	done, total := st.dayCompletion(week, day)
	return percent(done, total)
}

// WeekProgress returns the completion percentage across every day of the
// program for a week. It is set-weighted rather than an average of per-day
// percentages, so a day with more target sets moves the number more.
func (st *Stats) WeekProgress(week int) int {
	done, total := 0, 0
	for i := range st.program.Days {
		d, t := st.dayCompletion(week, &st.program.Days[i])
		done += d
		total += t
	}
	return percent(done, total)
}

// DayVolume sums weight*reps over every set of every slot in the day for
// a week. A missing or unparsable weight or reps contributes 0 for that
// set; units are whatever the user logged in.
func (st *Stats) DayVolume(week int, dayID string) float64 {
	day, ok := st.program.Day(dayID)
	if !ok {
		return 0
	}
	return volumeForDay(st.store, week, day)
}

// WeekVolume sums DayVolume over every day of the program for a week.
func (st *Stats) WeekVolume(week int) float64 {
	var volume float64
	for i := range st.program.Days {
		volume += volumeForDay(st.store, week, &st.program.Days[i])
	}
	return volume
}

// SessionDuration returns the logged duration in minutes for a (week, day)
// and whether one was recorded.
func (st *Stats) SessionDuration(week int, dayID string) (int, bool) {
	k, err := DurationKey(week, dayID)
	if err != nil {
		return 0, false
	}
	v := st.store.Get(k)
	if v == "" {
		return 0, false
	}
	minutes, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return minutes, true
}

// VolumeDelta returns the week-over-week percentage change
// round(100 * (curr - prev) / prev). When prev is zero the delta is
// undefined and ok is false; callers omit the comparison instead of
// showing an infinity.
func VolumeDelta(curr, prev float64) (pct int, ok bool) {
	if prev == 0 {
		return 0, false
	}
	return int(math.Round(100 * (curr - prev) / prev)), true
}

func (st *Stats) dayCompletion(week int, day *program.Day) (done, total int) {
	for _, ex := range day.Exercises {
		total += ex.Sets
		done += st.CompletedSets(week, day.ID, ex.ID, ex.Sets)
	}
	return done, total
}

func volumeForDay(store *Store, week int, day *program.Day) float64 {
	var volume float64
	for _, ex := range day.Exercises {
		for i := 0; i < ex.Sets; i++ {
			wk, err := NewKey(week, day.ID, ex.ID, i, FieldWeight)
			if err != nil {
				continue
			}
			rk, err := NewKey(week, day.ID, ex.ID, i, FieldReps)
			if err != nil {
				continue
			}
			volume += parseNumber(store.Get(wk)) * parseNumber(store.Get(rk))
		}
	}
	return volume
}

// percent rounds half-up on the scaled ratio; inputs are never negative.
func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// parseNumber is deliberately lenient: a typo in a numeric field must
// never break a progress view, it just contributes nothing to volume.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatMinutes(minutes int) string {
	return strconv.Itoa(minutes)
}
