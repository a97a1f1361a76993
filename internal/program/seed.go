package program

// DefaultProgramID is the ID of the built-in 12-week program.
const DefaultProgramID = "prog-iron-forge-12"

// DefaultProgram returns the built-in IRON FORGE 12 program for a user:
// a 12-week, 6-day Push/Pull/Legs hypertrophy split.
func DefaultProgram(ownerID string) *Program {
	return &Program{
		ID:            DefaultProgramID,
		OwnerID:       ownerID,
		Name:          "IRON FORGE 12",
		Description:   "A 12-week hypertrophy-focused muscle building program with a 6-day Push/Pull/Legs split. Designed for intermediate to advanced lifters seeking maximum muscle growth.",
		DurationWeeks: 12,
		DaysPerWeek:   6,
		Type:          "hypertrophy",
		Days: []Day{
			{
				ID: "day-push", Name: "PUSH", Emoji: "🔥", Color: "#E63946",
				Muscles: "Chest, Shoulders, Triceps",
				Exercises: []ExerciseSlot{
					{ID: "pe1", ExerciseID: "ex-bench-press", Name: "Barbell Bench Press", Sets: 4, Reps: "6-8", RestSeconds: 120, Muscle: "Chest", Note: "Compound. Go heavy. Full ROM.", Order: 1},
					{ID: "pe2", ExerciseID: "ex-incline-db-press", Name: "Incline Dumbbell Press", Sets: 4, Reps: "8-10", RestSeconds: 90, Muscle: "Upper Chest", Note: "30° incline. Squeeze at top.", Order: 2},
					{ID: "pe3", ExerciseID: "ex-ohp", Name: "Overhead Press", Sets: 4, Reps: "6-8", RestSeconds: 120, Muscle: "Shoulders", Note: "Strict form. No leg drive.", Order: 3},
					{ID: "pe4", ExerciseID: "ex-lateral-raise", Name: "Cable Lateral Raise", Sets: 3, Reps: "12-15", RestSeconds: 60, Muscle: "Side Delts", Note: "Slow negatives. Light weight.", Order: 4},
					{ID: "pe5", ExerciseID: "ex-db-fly", Name: "Dumbbell Fly", Sets: 3, Reps: "10-12", RestSeconds: 60, Muscle: "Chest", Note: "Deep stretch at bottom.", Order: 5},
					{ID: "pe6", ExerciseID: "ex-dips", Name: "Tricep Dips", Sets: 3, Reps: "8-12", RestSeconds: 90, Muscle: "Triceps", Note: "Add weight when bodyweight is easy.", Order: 6},
					{ID: "pe7", ExerciseID: "ex-oh-extension", Name: "Overhead Tricep Extension", Sets: 3, Reps: "10-12", RestSeconds: 60, Muscle: "Triceps", Note: "Cable or dumbbell. Full stretch.", Order: 7},
					{ID: "pe8", ExerciseID: "ex-face-pull", Name: "Face Pull", Sets: 3, Reps: "15-20", RestSeconds: 45, Muscle: "Rear Delts", Note: "Prehab. External rotation at top.", Order: 8},
				},
			},
			{
				ID: "day-pull", Name: "PULL", Emoji: "⚡", Color: "#457B9D",
				Muscles: "Back, Biceps, Rear Delts",
				Exercises: []ExerciseSlot{
					{ID: "pl1", ExerciseID: "ex-deadlift", Name: "Deadlift (Conventional)", Sets: 4, Reps: "5-6", RestSeconds: 180, Muscle: "Back/Posterior", Note: "King of pulls. Brace hard.", Order: 1},
					{ID: "pl2", ExerciseID: "ex-pull-ups", Name: "Weighted Pull-Ups", Sets: 4, Reps: "6-8", RestSeconds: 120, Muscle: "Lats", Note: "Add weight progressively.", Order: 2},
					{ID: "pl3", ExerciseID: "ex-barbell-row", Name: "Barbell Row", Sets: 4, Reps: "8-10", RestSeconds: 90, Muscle: "Upper Back", Note: "Slight torso angle. Squeeze.", Order: 3},
					{ID: "pl4", ExerciseID: "ex-cable-row", Name: "Seated Cable Row", Sets: 3, Reps: "10-12", RestSeconds: 75, Muscle: "Mid Back", Note: "V-grip. Pull to navel.", Order: 4},
					{ID: "pl5", ExerciseID: "ex-shrug", Name: "Dumbbell Shrug", Sets: 3, Reps: "12-15", RestSeconds: 60, Muscle: "Traps", Note: "Hold at top 2 sec.", Order: 5},
					{ID: "pl6", ExerciseID: "ex-barbell-curl", Name: "Barbell Curl", Sets: 3, Reps: "8-10", RestSeconds: 75, Muscle: "Biceps", Note: "EZ bar or straight. No swing.", Order: 6},
					{ID: "pl7", ExerciseID: "ex-incline-curl", Name: "Incline Dumbbell Curl", Sets: 3, Reps: "10-12", RestSeconds: 60, Muscle: "Biceps (long head)", Note: "45° incline. Full stretch.", Order: 7},
					{ID: "pl8", ExerciseID: "ex-hammer-curl", Name: "Hammer Curl", Sets: 3, Reps: "10-12", RestSeconds: 60, Muscle: "Brachialis", Note: "Neutral grip. Forearm builder.", Order: 8},
				},
			},
			{
				ID: "day-legs", Name: "LEGS", Emoji: "🦵", Color: "#2A9D8F",
				Muscles: "Quads, Hamstrings, Glutes, Calves",
				Exercises: []ExerciseSlot{
					{ID: "lg1", ExerciseID: "ex-squat", Name: "Barbell Back Squat", Sets: 4, Reps: "6-8", RestSeconds: 180, Muscle: "Quads/Glutes", Note: "Below parallel. King of legs.", Order: 1},
					{ID: "lg2", ExerciseID: "ex-rdl", Name: "Romanian Deadlift", Sets: 4, Reps: "8-10", RestSeconds: 90, Muscle: "Hamstrings", Note: "Feel the stretch. Hinge pattern.", Order: 2},
					{ID: "lg3", ExerciseID: "ex-leg-press", Name: "Leg Press", Sets: 4, Reps: "10-12", RestSeconds: 90, Muscle: "Quads", Note: "Full depth. Dont lock out.", Order: 3},
					{ID: "lg4", ExerciseID: "ex-lunges", Name: "Walking Lunges", Sets: 3, Reps: "12 each", RestSeconds: 75, Muscle: "Glutes/Quads", Note: "Dumbbells. Long stride.", Order: 4},
					{ID: "lg5", ExerciseID: "ex-leg-curl", Name: "Leg Curl", Sets: 3, Reps: "10-12", RestSeconds: 60, Muscle: "Hamstrings", Note: "Squeeze at contraction.", Order: 5},
					{ID: "lg6", ExerciseID: "ex-leg-ext", Name: "Leg Extension", Sets: 3, Reps: "12-15", RestSeconds: 60, Muscle: "Quads", Note: "Pause at top. Burnout set last.", Order: 6},
					{ID: "lg7", ExerciseID: "ex-calf-raise", Name: "Standing Calf Raise", Sets: 4, Reps: "12-15", RestSeconds: 60, Muscle: "Calves", Note: "Full ROM. Pause at stretch.", Order: 7},
					{ID: "lg8", ExerciseID: "ex-hip-thrust", Name: "Hip Thrust", Sets: 3, Reps: "10-12", RestSeconds: 75, Muscle: "Glutes", Note: "Barbell. Squeeze at top 2s.", Order: 8},
				},
			},
			{
				ID: "day-upper", Name: "UPPER", Emoji: "💪", Color: "#E76F51",
				Muscles: "Chest, Back, Shoulders, Arms",
				Exercises: []ExerciseSlot{
					{ID: "up1", ExerciseID: "ex-incline-barbell", Name: "Incline Barbell Press", Sets: 4, Reps: "8-10", RestSeconds: 90, Muscle: "Upper Chest", Note: "Moderate weight. Volume day.", Order: 1},
					{ID: "up2", ExerciseID: "ex-chest-row", Name: "Chest-Supported Row", Sets: 4, Reps: "8-10", RestSeconds: 90, Muscle: "Back", Note: "No momentum. Pure back.", Order: 2},
					{ID: "up3", ExerciseID: "ex-db-shoulder-press", Name: "Dumbbell Shoulder Press", Sets: 3, Reps: "8-10", RestSeconds: 75, Muscle: "Shoulders", Note: "Seated. Full ROM.", Order: 3},
					{ID: "up4", ExerciseID: "ex-lat-pulldown", Name: "Lat Pulldown", Sets: 3, Reps: "10-12", RestSeconds: 75, Muscle: "Lats", Note: "Wide grip. Lean back slightly.", Order: 4},
					{ID: "up5", ExerciseID: "ex-cable-crossover", Name: "Cable Crossover", Sets: 3, Reps: "12-15", RestSeconds: 60, Muscle: "Chest", Note: "High to low. Squeeze.", Order: 5},
					{ID: "up6", ExerciseID: "ex-reverse-fly", Name: "Reverse Fly", Sets: 3, Reps: "12-15", RestSeconds: 60, Muscle: "Rear Delts", Note: "Light. Pinch shoulder blades.", Order: 6},
					{ID: "up7", ExerciseID: "ex-ez-curl", Name: "EZ Bar Curl", Sets: 3, Reps: "10-12", RestSeconds: 60, Muscle: "Biceps", Note: "Superset with next.", Order: 7},
					{ID: "up8", ExerciseID: "ex-pushdown", Name: "Rope Pushdown", Sets: 3, Reps: "10-12", RestSeconds: 60, Muscle: "Triceps", Note: "Spread rope at bottom.", Order: 8},
				},
			},
			{
				ID: "day-lower", Name: "LOWER", Emoji: "🔗", Color: "#6A4C93",
				Muscles: "Quads, Glutes, Hamstrings, Calves",
				Exercises: []ExerciseSlot{
					{ID: "lw1", ExerciseID: "ex-front-squat", Name: "Front Squat", Sets: 4, Reps: "6-8", RestSeconds: 120, Muscle: "Quads", Note: "Upright torso. Quad dominant.", Order: 1},
					{ID: "lw2", ExerciseID: "ex-bulgarian", Name: "Bulgarian Split Squat", Sets: 3, Reps: "8-10 each", RestSeconds: 90, Muscle: "Glutes/Quads", Note: "Dumbbells. Deep stretch.", Order: 2},
					{ID: "lw3", ExerciseID: "ex-sumo-deadlift", Name: "Sumo Deadlift", Sets: 4, Reps: "6-8", RestSeconds: 120, Muscle: "Glutes/Adductors", Note: "Wide stance. Push floor away.", Order: 3},
					{ID: "lw4", ExerciseID: "ex-hack-squat", Name: "Hack Squat", Sets: 3, Reps: "10-12", RestSeconds: 90, Muscle: "Quads", Note: "Deep. Narrow stance.", Order: 4},
					{ID: "lw5", ExerciseID: "ex-nordic", Name: "Nordic Hamstring Curl", Sets: 3, Reps: "6-8", RestSeconds: 90, Muscle: "Hamstrings", Note: "Eccentric focus. Use assist if needed.", Order: 5},
					{ID: "lw6", ExerciseID: "ex-ghr", Name: "Glute-Ham Raise", Sets: 3, Reps: "8-10", RestSeconds: 75, Muscle: "Posterior Chain", Note: "Controlled. Full extension.", Order: 6},
					{ID: "lw7", ExerciseID: "ex-seated-calf", Name: "Seated Calf Raise", Sets: 4, Reps: "15-20", RestSeconds: 45, Muscle: "Soleus", Note: "Higher reps. Slow negatives.", Order: 7},
					{ID: "lw8", ExerciseID: "ex-goblet", Name: "Goblet Squat (Finisher)", Sets: 2, Reps: "20", RestSeconds: 60, Muscle: "Full Legs", Note: "Light. Metabolic burnout.", Order: 8},
				},
			},
			{
				ID: "day-core-arms", Name: "CORE+ARMS", Emoji: "🎯", Color: "#264653",
				Muscles: "Abs, Obliques, Biceps, Triceps, Forearms",
				Exercises: []ExerciseSlot{
					{ID: "ca1", ExerciseID: "ex-hanging-leg", Name: "Hanging Leg Raise", Sets: 4, Reps: "10-12", RestSeconds: 60, Muscle: "Lower Abs", Note: "Slow. No swinging.", Order: 1},
					{ID: "ca2", ExerciseID: "ex-woodchop", Name: "Cable Woodchop", Sets: 3, Reps: "12 each", RestSeconds: 60, Muscle: "Obliques", Note: "Rotate through core.", Order: 2},
					{ID: "ca3", ExerciseID: "ex-ab-wheel", Name: "Ab Wheel Rollout", Sets: 3, Reps: "8-10", RestSeconds: 75, Muscle: "Full Core", Note: "From knees. Full extension.", Order: 3},
					{ID: "ca4", ExerciseID: "ex-pallof", Name: "Pallof Press", Sets: 3, Reps: "10 each", RestSeconds: 60, Muscle: "Anti-Rotation", Note: "Cable. Hold 2s extended.", Order: 4},
					{ID: "ca5", ExerciseID: "ex-spider-curl", Name: "Spider Curl", Sets: 3, Reps: "10-12", RestSeconds: 60, Muscle: "Biceps (short head)", Note: "Incline bench face down.", Order: 5},
					{ID: "ca6", ExerciseID: "ex-close-grip", Name: "Close-Grip Bench Press", Sets: 3, Reps: "8-10", RestSeconds: 90, Muscle: "Triceps", Note: "Hands shoulder width.", Order: 6},
					{ID: "ca7", ExerciseID: "ex-concentration", Name: "Concentration Curl", Sets: 3, Reps: "10-12", RestSeconds: 45, Muscle: "Biceps Peak", Note: "Slow. Squeeze hard.", Order: 7},
					{ID: "ca8", ExerciseID: "ex-wrist-curl", Name: "Wrist Curl + Reverse", Sets: 3, Reps: "15 each", RestSeconds: 45, Muscle: "Forearms", Note: "Barbell. Both directions.", Order: 8},
				},
			},
		},
	}
}

// DefaultSettings returns first-use settings for a user, pointing at the
// built-in program on week 1.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:             userID,
		WeightUnit:         "lbs",
		HeightUnit:         "ft-in",
		DistanceUnit:       "miles",
		WorkoutDaysPerWeek: 6,
		Theme:              "dark",
		AccentColor:        "#E63946",
		CurrentProgramID:   DefaultProgramID,
		CurrentWeek:        1,
	}
}

// DefaultExercises returns the built-in exercise catalog.
func DefaultExercises() []Exercise {
	return []Exercise{
		// Chest
		{ID: "ex-bench-press", Name: "Barbell Bench Press", Category: "compound", MuscleGroups: []string{"chest", "triceps", "shoulders"}, Equipment: []string{"barbell", "bench"}},
		{ID: "ex-incline-db-press", Name: "Incline Dumbbell Press", Category: "compound", MuscleGroups: []string{"chest", "triceps", "shoulders"}, Equipment: []string{"dumbbells", "incline bench"}},
		{ID: "ex-db-fly", Name: "Dumbbell Fly", Category: "isolation", MuscleGroups: []string{"chest"}, Equipment: []string{"dumbbells", "bench"}},
		{ID: "ex-cable-crossover", Name: "Cable Crossover", Category: "isolation", MuscleGroups: []string{"chest"}, Equipment: []string{"cable machine"}},
		{ID: "ex-incline-barbell", Name: "Incline Barbell Press", Category: "compound", MuscleGroups: []string{"chest", "triceps", "shoulders"}, Equipment: []string{"barbell", "incline bench"}},

		// Back
		{ID: "ex-deadlift", Name: "Deadlift (Conventional)", Category: "compound", MuscleGroups: []string{"back", "hamstrings", "glutes", "core"}, Equipment: []string{"barbell"}},
		{ID: "ex-pull-ups", Name: "Weighted Pull-Ups", Category: "compound", MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"pull-up bar", "weight belt"}},
		{ID: "ex-barbell-row", Name: "Barbell Row", Category: "compound", MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"barbell"}},
		{ID: "ex-cable-row", Name: "Seated Cable Row", Category: "compound", MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"cable machine"}},
		{ID: "ex-lat-pulldown", Name: "Lat Pulldown", Category: "compound", MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"cable machine"}},
		{ID: "ex-chest-row", Name: "Chest-Supported Row", Category: "compound", MuscleGroups: []string{"back"}, Equipment: []string{"dumbbells", "incline bench"}},

		// Shoulders
		{ID: "ex-ohp", Name: "Overhead Press", Category: "compound", MuscleGroups: []string{"shoulders", "triceps"}, Equipment: []string{"barbell"}},
		{ID: "ex-db-shoulder-press", Name: "Dumbbell Shoulder Press", Category: "compound", MuscleGroups: []string{"shoulders", "triceps"}, Equipment: []string{"dumbbells"}},
		{ID: "ex-lateral-raise", Name: "Cable Lateral Raise", Category: "isolation", MuscleGroups: []string{"shoulders"}, Equipment: []string{"cable machine"}},
		{ID: "ex-face-pull", Name: "Face Pull", Category: "isolation", MuscleGroups: []string{"shoulders", "back"}, Equipment: []string{"cable machine"}},
		{ID: "ex-reverse-fly", Name: "Reverse Fly", Category: "isolation", MuscleGroups: []string{"shoulders", "back"}, Equipment: []string{"dumbbells"}},

		// Legs
		{ID: "ex-squat", Name: "Barbell Back Squat", Category: "compound", MuscleGroups: []string{"quads", "glutes", "hamstrings"}, Equipment: []string{"barbell", "squat rack"}},
		{ID: "ex-front-squat", Name: "Front Squat", Category: "compound", MuscleGroups: []string{"quads", "core"}, Equipment: []string{"barbell", "squat rack"}},
		{ID: "ex-rdl", Name: "Romanian Deadlift", Category: "compound", MuscleGroups: []string{"hamstrings", "glutes"}, Equipment: []string{"barbell"}},
		{ID: "ex-leg-press", Name: "Leg Press", Category: "compound", MuscleGroups: []string{"quads", "glutes"}, Equipment: []string{"leg press machine"}},
		{ID: "ex-lunges", Name: "Walking Lunges", Category: "compound", MuscleGroups: []string{"quads", "glutes"}, Equipment: []string{"dumbbells"}},
		{ID: "ex-leg-curl", Name: "Leg Curl", Category: "isolation", MuscleGroups: []string{"hamstrings"}, Equipment: []string{"leg curl machine"}},
		{ID: "ex-leg-ext", Name: "Leg Extension", Category: "isolation", MuscleGroups: []string{"quads"}, Equipment: []string{"leg extension machine"}},
		{ID: "ex-calf-raise", Name: "Standing Calf Raise", Category: "isolation", MuscleGroups: []string{"calves"}, Equipment: []string{"calf raise machine"}},
		{ID: "ex-seated-calf", Name: "Seated Calf Raise", Category: "isolation", MuscleGroups: []string{"calves"}, Equipment: []string{"seated calf machine"}},
		{ID: "ex-hip-thrust", Name: "Hip Thrust", Category: "compound", MuscleGroups: []string{"glutes", "hamstrings"}, Equipment: []string{"barbell", "bench"}},
		{ID: "ex-bulgarian", Name: "Bulgarian Split Squat", Category: "compound", MuscleGroups: []string{"quads", "glutes"}, Equipment: []string{"dumbbells", "bench"}},
		{ID: "ex-sumo-deadlift", Name: "Sumo Deadlift", Category: "compound", MuscleGroups: []string{"glutes", "hamstrings", "quads"}, Equipment: []string{"barbell"}},
		{ID: "ex-hack-squat", Name: "Hack Squat", Category: "compound", MuscleGroups: []string{"quads"}, Equipment: []string{"hack squat machine"}},
		{ID: "ex-nordic", Name: "Nordic Hamstring Curl", Category: "isolation", MuscleGroups: []string{"hamstrings"}, Equipment: []string{"bodyweight"}},
		{ID: "ex-ghr", Name: "Glute-Ham Raise", Category: "compound", MuscleGroups: []string{"hamstrings", "glutes"}, Equipment: []string{"GHR machine"}},
		{ID: "ex-goblet", Name: "Goblet Squat", Category: "compound", MuscleGroups: []string{"quads", "glutes"}, Equipment: []string{"dumbbell"}},

		// Biceps
		{ID: "ex-barbell-curl", Name: "Barbell Curl", Category: "isolation", MuscleGroups: []string{"biceps"}, Equipment: []string{"barbell"}},
		{ID: "ex-incline-curl", Name: "Incline Dumbbell Curl", Category: "isolation", MuscleGroups: []string{"biceps"}, Equipment: []string{"dumbbells", "incline bench"}},
		{ID: "ex-hammer-curl", Name: "Hammer Curl", Category: "isolation", MuscleGroups: []string{"biceps", "forearms"}, Equipment: []string{"dumbbells"}},
		{ID: "ex-spider-curl", Name: "Spider Curl", Category: "isolation", MuscleGroups: []string{"biceps"}, Equipment: []string{"dumbbells", "incline bench"}},
		{ID: "ex-concentration", Name: "Concentration Curl", Category: "isolation", MuscleGroups: []string{"biceps"}, Equipment: []string{"dumbbell"}},
		{ID: "ex-ez-curl", Name: "EZ Bar Curl", Category: "isolation", MuscleGroups: []string{"biceps"}, Equipment: []string{"ez bar"}},

		// Triceps
		{ID: "ex-dips", Name: "Tricep Dips", Category: "compound", MuscleGroups: []string{"triceps", "chest"}, Equipment: []string{"dip bars"}},
		{ID: "ex-oh-extension", Name: "Overhead Tricep Extension", Category: "isolation", MuscleGroups: []string{"triceps"}, Equipment: []string{"cable machine"}},
		{ID: "ex-close-grip", Name: "Close-Grip Bench Press", Category: "compound", MuscleGroups: []string{"triceps", "chest"}, Equipment: []string{"barbell", "bench"}},
		{ID: "ex-pushdown", Name: "Rope Pushdown", Category: "isolation", MuscleGroups: []string{"triceps"}, Equipment: []string{"cable machine"}},

		// Core
		{ID: "ex-hanging-leg", Name: "Hanging Leg Raise", Category: "isolation", MuscleGroups: []string{"abs"}, Equipment: []string{"pull-up bar"}},
		{ID: "ex-woodchop", Name: "Cable Woodchop", Category: "isolation", MuscleGroups: []string{"obliques", "abs"}, Equipment: []string{"cable machine"}},
		{ID: "ex-ab-wheel", Name: "Ab Wheel Rollout", Category: "isolation", MuscleGroups: []string{"abs", "core"}, Equipment: []string{"ab wheel"}},
		{ID: "ex-pallof", Name: "Pallof Press", Category: "isolation", MuscleGroups: []string{"core", "obliques"}, Equipment: []string{"cable machine"}},

		// Traps and forearms
		{ID: "ex-shrug", Name: "Dumbbell Shrug", Category: "isolation", MuscleGroups: []string{"traps"}, Equipment: []string{"dumbbells"}},
		{ID: "ex-wrist-curl", Name: "Wrist Curl + Reverse", Category: "isolation", MuscleGroups: []string{"forearms"}, Equipment: []string{"barbell"}},
	}
}
