package catalog

// SeedExercises is the built-in exercise library. It is used to bootstrap the
// exercise collection on first start and as the catalog in tests. Order
// matters: substitution candidates are searched in declaration order.
func SeedExercises() []Exercise {
	return []Exercise{
		// Squat pattern
		{ID: "bodyweight-squat", Name: "Bodyweight Squat", Category: "squat", MuscleGroups: []string{"quads", "glutes"}, Equipment: nil, Difficulty: 1},
		{ID: "goblet-squat", Name: "Goblet Squat", Category: "squat", MuscleGroups: []string{"quads", "glutes"}, Equipment: []string{"dumbbell"}, Difficulty: 2},
		{ID: "barbell-back-squat", Name: "Barbell Back Squat", Category: "squat", MuscleGroups: []string{"quads", "glutes"}, Equipment: []string{"barbell", "rack"}, Difficulty: 4},
		{ID: "split-squat", Name: "Split Squat", Category: "squat", MuscleGroups: []string{"quads", "glutes"}, Equipment: nil, Difficulty: 2},
		{ID: "pistol-squat", Name: "Pistol Squat", Category: "squat", MuscleGroups: []string{"quads", "glutes"}, Equipment: nil, Difficulty: 5},

		// Push pattern
		{ID: "push-up", Name: "Push-Up", Category: "push", MuscleGroups: []string{"chest", "triceps"}, Equipment: nil, Difficulty: 2},
		{ID: "incline-push-up", Name: "Incline Push-Up", Category: "push", MuscleGroups: []string{"chest", "triceps"}, Equipment: nil, Difficulty: 1},
		{ID: "dumbbell-bench-press", Name: "Dumbbell Bench Press", Category: "push", MuscleGroups: []string{"chest", "triceps"}, Equipment: []string{"dumbbell", "bench"}, Difficulty: 2},
		{ID: "barbell-bench-press", Name: "Barbell Bench Press", Category: "push", MuscleGroups: []string{"chest", "triceps"}, Equipment: []string{"barbell", "bench"}, Difficulty: 4},
		{ID: "overhead-press", Name: "Overhead Press", Category: "push", MuscleGroups: []string{"shoulders", "triceps"}, Equipment: []string{"barbell"}, Difficulty: 4},
		{ID: "dumbbell-shoulder-press", Name: "Dumbbell Shoulder Press", Category: "push", MuscleGroups: []string{"shoulders", "triceps"}, Equipment: []string{"dumbbell"}, Difficulty: 2},
		{ID: "pike-push-up", Name: "Pike Push-Up", Category: "push", MuscleGroups: []string{"shoulders", "triceps"}, Equipment: nil, Difficulty: 3},

		// Pull pattern
		{ID: "doorway-row", Name: "Doorway Row", Category: "pull", MuscleGroups: []string{"back", "biceps"}, Equipment: nil, Difficulty: 1},
		{ID: "band-row", Name: "Band Row", Category: "pull", MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"band"}, Difficulty: 1},
		{ID: "dumbbell-row", Name: "Dumbbell Row", Category: "pull", MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"dumbbell"}, Difficulty: 2},
		{ID: "pull-up", Name: "Pull-Up", Category: "pull", MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"pullup-bar"}, Difficulty: 4},
		{ID: "barbell-row", Name: "Barbell Row", Category: "pull", MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"barbell"}, Difficulty: 4},

		// Hinge pattern
		{ID: "glute-bridge", Name: "Glute Bridge", Category: "hinge", MuscleGroups: []string{"glutes", "hamstrings"}, Equipment: nil, Difficulty: 1},
		{ID: "romanian-deadlift", Name: "Romanian Deadlift", Category: "hinge", MuscleGroups: []string{"hamstrings", "glutes"}, Equipment: []string{"barbell"}, Difficulty: 4},
		{ID: "dumbbell-rdl", Name: "Dumbbell Romanian Deadlift", Category: "hinge", MuscleGroups: []string{"hamstrings", "glutes"}, Equipment: []string{"dumbbell"}, Difficulty: 3},
		{ID: "barbell-deadlift", Name: "Barbell Deadlift", Category: "hinge", MuscleGroups: []string{"hamstrings", "glutes", "back"}, Equipment: []string{"barbell"}, Difficulty: 5},
		{ID: "kettlebell-swing", Name: "Kettlebell Swing", Category: "hinge", MuscleGroups: []string{"glutes", "hamstrings"}, Equipment: []string{"kettlebell"}, Difficulty: 3},

		// Core
		{ID: "plank", Name: "Plank", Category: "core", MuscleGroups: []string{"core"}, Equipment: nil, Difficulty: 1},
		{ID: "dead-bug", Name: "Dead Bug", Category: "core", MuscleGroups: []string{"core"}, Equipment: nil, Difficulty: 1},
		{ID: "hanging-leg-raise", Name: "Hanging Leg Raise", Category: "core", MuscleGroups: []string{"core"}, Equipment: []string{"pullup-bar"}, Difficulty: 4},
		{ID: "ab-wheel-rollout", Name: "Ab Wheel Rollout", Category: "core", MuscleGroups: []string{"core"}, Equipment: []string{"ab-wheel"}, Difficulty: 4},

		// Cardio / conditioning
		{ID: "brisk-walk", Name: "Brisk Walk", Category: "cardio", MuscleGroups: []string{"full-body"}, Equipment: nil, Difficulty: 1},
		{ID: "jog", Name: "Jog", Category: "cardio", MuscleGroups: []string{"full-body"}, Equipment: nil, Difficulty: 2},
		{ID: "jump-rope", Name: "Jump Rope", Category: "cardio", MuscleGroups: []string{"full-body"}, Equipment: []string{"jump-rope"}, Difficulty: 3},
		{ID: "rowing-machine", Name: "Rowing Machine", Category: "cardio", MuscleGroups: []string{"full-body"}, Equipment: []string{"rower"}, Difficulty: 3},
		{ID: "burpee", Name: "Burpee", Category: "cardio", MuscleGroups: []string{"full-body"}, Equipment: nil, Difficulty: 4},

		// Mobility
		{ID: "cat-cow", Name: "Cat-Cow", Category: "mobility", MuscleGroups: []string{"spine"}, Equipment: nil, Difficulty: 1},
		{ID: "hip-flexor-stretch", Name: "Hip Flexor Stretch", Category: "mobility", MuscleGroups: []string{"hips"}, Equipment: nil, Difficulty: 1},
		{ID: "worlds-greatest-stretch", Name: "World's Greatest Stretch", Category: "mobility", MuscleGroups: []string{"full-body"}, Equipment: nil, Difficulty: 2},
	}
}
