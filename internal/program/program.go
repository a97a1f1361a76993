// Package program defines the static 12-week training program catalog:
// the program structure, the exercise catalog, and per-user settings.
// Programs are immutable at runtime; they are seeded once per user and
// only ever read after that.
package program

import (
	"fmt"
	"strings"
)

// Program is a fixed multi-week training plan. Days recur identically
// every week for DurationWeeks weeks.
type Program struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	DurationWeeks int    `json:"duration_weeks"`
	DaysPerWeek   int    `json:"days_per_week"`
	Type          string `json:"type"`
	Days          []Day  `json:"days"`
}

// Day is one workout template within a program (e.g. "PUSH").
// Exercise order is display-significant only.
type Day struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Emoji     string         `json:"emoji,omitempty"`
	Color     string         `json:"color,omitempty"`
	Muscles   string         `json:"muscles,omitempty"`
	Exercises []ExerciseSlot `json:"exercises"`
}

// ExerciseSlot is one prescribed exercise within a day. Sets is the
// authoritative denominator for completion percentages in every week.
type ExerciseSlot struct {
	ID          string `json:"id"`
	ExerciseID  string `json:"exercise_id"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
	Muscle      string `json:"muscle,omitempty"`
	Note        string `json:"note,omitempty"`
	Order       int    `json:"order"`
}

// Exercise is a catalog entry describing a movement, independent of any
// program. Slots reference exercises by ID.
type Exercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	MuscleGroups []string `json:"muscle_groups"`
	Equipment    []string `json:"equipment"`
	IsCustom     bool     `json:"is_custom"`
}

// Settings holds per-user preferences and the current program week.
type Settings struct {
	UserID             string `json:"user_id"`
	WeightUnit         string `json:"weight_unit"`
	HeightUnit         string `json:"height_unit"`
	DistanceUnit       string `json:"distance_unit"`
	WorkoutDaysPerWeek int    `json:"workout_days_per_week"`
	Theme              string `json:"theme"`
	AccentColor        string `json:"accent_color"`
	CurrentProgramID   string `json:"current_program_id"`
	CurrentWeek        int    `json:"current_week"`
}

// Day returns the day with the given ID, or false if the program has no
// such day.
func (p *Program) Day(id string) (*Day, bool) {
	for i := range p.Days {
		if p.Days[i].ID == id {
			return &p.Days[i], true
		}
	}
	return nil, false
}

// TotalTargetSets is the sum of target sets across all slots in the day.
func (d *Day) TotalTargetSets() int {
	total := 0
	for _, ex := range d.Exercises {
		total += ex.Sets
	}
	return total
}

// Validate checks the structural invariants the workout engine relies on:
// at least one week, unique day IDs, slot IDs unique within their day,
// target sets >= 1, rest >= 0, and no "_" in any ID (it is the cell-key
// delimiter).
func (p *Program) Validate() error {
	if p.DurationWeeks < 1 {
		return fmt.Errorf("program %s: duration_weeks must be >= 1, got %d", p.ID, p.DurationWeeks)
	}
	if len(p.Days) == 0 {
		return fmt.Errorf("program %s: no days", p.ID)
	}

	dayIDs := make(map[string]bool, len(p.Days))
	for _, day := range p.Days {
		if day.ID == "" || strings.Contains(day.ID, "_") {
			return fmt.Errorf("program %s: invalid day ID %q", p.ID, day.ID)
		}
		if dayIDs[day.ID] {
			return fmt.Errorf("program %s: duplicate day ID %q", p.ID, day.ID)
		}
		dayIDs[day.ID] = true

		slotIDs := make(map[string]bool, len(day.Exercises))
		for _, ex := range day.Exercises {
			if ex.ID == "" || strings.Contains(ex.ID, "_") {
				return fmt.Errorf("day %s: invalid slot ID %q", day.ID, ex.ID)
			}
			if slotIDs[ex.ID] {
				return fmt.Errorf("day %s: duplicate slot ID %q", day.ID, ex.ID)
			}
			slotIDs[ex.ID] = true

			if ex.Sets < 1 {
				return fmt.Errorf("slot %s/%s: sets must be >= 1, got %d", day.ID, ex.ID, ex.Sets)
			}
			if ex.RestSeconds < 0 {
				return fmt.Errorf("slot %s/%s: rest_seconds must be >= 0, got %d", day.ID, ex.ID, ex.RestSeconds)
			}
		}
	}
	return nil
}
