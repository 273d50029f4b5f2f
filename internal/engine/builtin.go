package engine

import "alcyxob/adaptive-coach/internal/domain"

// BuiltinTemplates returns the shipped training templates in declaration
// order (the selector tie-break order). Templates are data interpreted by
// the engine; adding one here never requires touching engine code.
func BuiltinTemplates() []domain.TrainingTemplate {
	return []domain.TrainingTemplate{
		generalStrengthBeginner(),
		homeFoundation(),
		gymHypertrophyIntermediate(),
		outdoorEnduranceBuilder(),
	}
}

func generalStrengthBeginner() domain.TrainingTemplate {
	return domain.TrainingTemplate{
		ID:          "general-strength-beginner",
		Name:        "General Strength: Beginner",
		Category:    "strength",
		Subcategory: "full-body",
		FitnessLevels: []domain.FitnessLevel{
			domain.LevelBeginner, domain.LevelSomeExperience,
		},
		Goals: []domain.Goal{domain.GoalFitness, domain.GoalStrength},
		// The empty option-set makes the template viable with no equipment.
		EquipmentOptions:  [][]string{{}, {"dumbbell"}},
		TimeCommitments:   []int{30, 20, 45},
		WeeklyFrequencies: []string{"2-3", "3-4"},
		DurationWeeks:     6,
		Weeks: []domain.WeekStructure{
			{
				WeekNumber: 1, Theme: "Learning the movements", Phase: "foundation",
				RestDays: []int{2, 4, 6, 7},
				Workouts: []domain.WorkoutTemplate{
					fullBodyA("Full Body A", 1, true),
					fullBodyB("Full Body B", 3, false),
					easyCardio("Recovery Walk", 5),
				},
			},
			{
				WeekNumber: 2, Theme: "Building the habit", Phase: "foundation",
				RestDays: []int{2, 4, 6, 7}, VolumeDeltaPct: 5,
				Workouts: []domain.WorkoutTemplate{
					fullBodyA("Full Body A", 1, true),
					fullBodyB("Full Body B", 3, false),
					easyCardio("Recovery Walk", 5),
				},
			},
			{
				WeekNumber: 3, Theme: "Adding a little weight", Phase: "build",
				RestDays: []int{2, 4, 6, 7}, VolumeDeltaPct: 10, IntensityDeltaPct: 5,
				Workouts: []domain.WorkoutTemplate{
					fullBodyA("Full Body A", 1, true),
					fullBodyB("Full Body B", 3, true),
					easyCardio("Recovery Walk", 5),
				},
			},
			{
				WeekNumber: 4, Theme: "Halfway there", Phase: "build",
				RestDays: []int{2, 4, 6, 7}, VolumeDeltaPct: 15, IntensityDeltaPct: 5,
				Workouts: []domain.WorkoutTemplate{
					fullBodyA("Full Body A", 1, true),
					fullBodyB("Full Body B", 3, true),
					easyCardio("Recovery Walk", 5),
				},
			},
			{
				WeekNumber: 5, Theme: "Easing off to recover", Phase: "deload",
				RestDays: []int{2, 4, 6, 7}, VolumeDeltaPct: -10, IntensityDeltaPct: -5,
				Workouts: []domain.WorkoutTemplate{
					fullBodyA("Full Body A", 1, true),
					easyCardio("Recovery Walk", 4),
				},
			},
			{
				WeekNumber: 6, Theme: "Finishing strong", Phase: "peak",
				RestDays: []int{2, 4, 6, 7}, VolumeDeltaPct: 20, IntensityDeltaPct: 10,
				Workouts: []domain.WorkoutTemplate{
					fullBodyA("Full Body A", 1, true),
					fullBodyB("Full Body B", 3, true),
					easyCardio("Recovery Walk", 5),
				},
			},
		},
		ProgressionRules: []domain.ProgressionRule{
			{Trigger: domain.TriggerWeekly, Condition: "week_number >= 3",
				Adjust: domain.RuleAdjustment{VolumePct: 5}},
			{Trigger: domain.TriggerPerformanceBased, Condition: "completion_rate > 90%",
				Adjust: domain.RuleAdjustment{VolumePct: 5, IntensityPct: 5}},
			{Trigger: domain.TriggerPerformanceBased, Condition: "average_rpe >= 8.5",
				Adjust: domain.RuleAdjustment{IntensityPct: -5}},
		},
		Adaptations: domain.AdaptationTable{
			AgeBrackets: []domain.AgeBracketRule{
				{MinAge: 60, MaxAge: 120, IntensityMultiplier: 0.9},
			},
			EquipmentSubstitutions: map[string]string{
				"goblet-squat":           "bodyweight-squat",
				"dumbbell-row":           "doorway-row",
				"dumbbell-shoulder-press": "pike-push-up",
			},
			TimeBuckets: map[int]domain.TimeBucketScaling{
				20: {SetScale: 0.7, RepScale: 1.0, RestScale: 0.8},
				30: {SetScale: 1.0, RepScale: 1.0, RestScale: 1.0},
				45: {SetScale: 1.3, RepScale: 1.0, RestScale: 1.1},
			},
		},
	}
}

func fullBodyA(name string, day int, key bool) domain.WorkoutTemplate {
	return domain.WorkoutTemplate{
		Name: name, Type: "strength", Day: day, DurationMinutes: 30,
		Intensity: domain.IntensityModerate, IsKeyWorkout: key,
		Exercises: []domain.ExercisePrescription{
			{ExerciseID: "bodyweight-squat", Sets: 3, Reps: 10, RestSeconds: 60},
			{ExerciseID: "push-up", Sets: 3, Reps: 8, RestSeconds: 60},
			{ExerciseID: "doorway-row", Sets: 3, Reps: 10, RestSeconds: 60},
			{ExerciseID: "plank", Sets: 3, Reps: 1, RestSeconds: 45},
		},
	}
}

func fullBodyB(name string, day int, key bool) domain.WorkoutTemplate {
	return domain.WorkoutTemplate{
		Name: name, Type: "strength", Day: day, DurationMinutes: 30,
		Intensity: domain.IntensityModerate, IsKeyWorkout: key,
		Exercises: []domain.ExercisePrescription{
			{ExerciseID: "split-squat", Sets: 3, Reps: 8, RestSeconds: 60},
			{ExerciseID: "glute-bridge", Sets: 3, Reps: 12, RestSeconds: 45},
			{ExerciseID: "incline-push-up", Sets: 3, Reps: 10, RestSeconds: 60},
			{ExerciseID: "dead-bug", Sets: 2, Reps: 10, RestSeconds: 45},
		},
	}
}

func easyCardio(name string, day int) domain.WorkoutTemplate {
	return domain.WorkoutTemplate{
		Name: name, Type: "cardio", Day: day, DurationMinutes: 25,
		Intensity: domain.IntensityLow,
		Exercises: []domain.ExercisePrescription{
			{ExerciseID: "brisk-walk", Sets: 1, Reps: 1, RestSeconds: 0},
		},
	}
}

func homeFoundation() domain.TrainingTemplate {
	mobility := domain.WorkoutTemplate{
		Name: "Mobility Reset", Type: "mobility", Day: 6, DurationMinutes: 20,
		Intensity: domain.IntensityLow,
		Exercises: []domain.ExercisePrescription{
			{ExerciseID: "cat-cow", Sets: 2, Reps: 10, RestSeconds: 30},
			{ExerciseID: "hip-flexor-stretch", Sets: 2, Reps: 1, RestSeconds: 30},
			{ExerciseID: "worlds-greatest-stretch", Sets: 2, Reps: 5, RestSeconds: 30},
		},
	}
	circuit := func(name string, day int, key bool) domain.WorkoutTemplate {
		return domain.WorkoutTemplate{
			Name: name, Type: "circuit", Day: day, DurationMinutes: 30,
			Intensity: domain.IntensityModerate, IsKeyWorkout: key,
			Exercises: []domain.ExercisePrescription{
				{ExerciseID: "bodyweight-squat", Sets: 3, Reps: 12, RestSeconds: 45},
				{ExerciseID: "incline-push-up", Sets: 3, Reps: 10, RestSeconds: 45},
				{ExerciseID: "glute-bridge", Sets: 3, Reps: 12, RestSeconds: 45},
				{ExerciseID: "plank", Sets: 3, Reps: 1, RestSeconds: 45},
			},
		}
	}

	weeks := make([]domain.WeekStructure, 0, 4)
	themes := []struct {
		theme, phase string
		volume       float64
	}{
		{"Getting moving at home", "foundation", 0},
		{"Finding your rhythm", "foundation", 5},
		{"Turning up the pace", "build", 10},
		{"Owning the routine", "build", 15},
	}
	for i, t := range themes {
		weeks = append(weeks, domain.WeekStructure{
			WeekNumber: i + 1, Theme: t.theme, Phase: t.phase,
			RestDays: []int{2, 5, 7}, VolumeDeltaPct: t.volume,
			Workouts: []domain.WorkoutTemplate{
				circuit("Home Circuit A", 1, true),
				circuit("Home Circuit B", 3, false),
				mobility,
			},
		})
	}

	return domain.TrainingTemplate{
		ID:                "home-bodyweight-foundation",
		Name:              "Home Foundation",
		Category:          "bodyweight",
		FitnessLevels:     []domain.FitnessLevel{domain.LevelBeginner, domain.LevelSomeExperience},
		Goals:             []domain.Goal{domain.GoalFitness, domain.GoalFatLoss, domain.GoalMobility},
		EquipmentOptions:  [][]string{{}},
		TimeCommitments:   []int{30, 20},
		WeeklyFrequencies: []string{"2-3", "3-4"},
		DurationWeeks:     4,
		Weeks:             weeks,
		ProgressionRules: []domain.ProgressionRule{
			{Trigger: domain.TriggerPerformanceBased, Condition: "completion_rate >= 85%",
				Adjust: domain.RuleAdjustment{VolumePct: 5}},
		},
		Adaptations: domain.AdaptationTable{
			TimeBuckets: map[int]domain.TimeBucketScaling{
				20: {SetScale: 0.7, RepScale: 1.0, RestScale: 0.8},
				30: {SetScale: 1.0, RepScale: 1.0, RestScale: 1.0},
			},
		},
	}
}

func gymHypertrophyIntermediate() domain.TrainingTemplate {
	upper := func(day int, key bool) domain.WorkoutTemplate {
		return domain.WorkoutTemplate{
			Name: "Upper Body", Type: "strength", Day: day, DurationMinutes: 60,
			Intensity: domain.IntensityHigh, IsKeyWorkout: key,
			Exercises: []domain.ExercisePrescription{
				{ExerciseID: "barbell-bench-press", Sets: 4, Reps: 8, RestSeconds: 120},
				{ExerciseID: "barbell-row", Sets: 4, Reps: 8, RestSeconds: 120},
				{ExerciseID: "overhead-press", Sets: 3, Reps: 10, RestSeconds: 90},
				{ExerciseID: "hanging-leg-raise", Sets: 3, Reps: 10, RestSeconds: 60},
			},
		}
	}
	lower := func(day int, key bool) domain.WorkoutTemplate {
		return domain.WorkoutTemplate{
			Name: "Lower Body", Type: "strength", Day: day, DurationMinutes: 60,
			Intensity: domain.IntensityHigh, IsKeyWorkout: key,
			Exercises: []domain.ExercisePrescription{
				{ExerciseID: "barbell-back-squat", Sets: 4, Reps: 8, RestSeconds: 150},
				{ExerciseID: "romanian-deadlift", Sets: 3, Reps: 10, RestSeconds: 120},
				{ExerciseID: "split-squat", Sets: 3, Reps: 10, RestSeconds: 90},
			},
		}
	}

	weeks := make([]domain.WeekStructure, 0, 6)
	phases := []struct {
		theme, phase      string
		volume, intensity float64
	}{
		{"Volume base", "foundation", 0, 0},
		{"Volume base II", "foundation", 5, 0},
		{"Load accumulation", "build", 10, 5},
		{"Load accumulation II", "build", 15, 10},
		{"Deload", "deload", -20, -10},
		{"Intensification", "peak", 10, 15},
	}
	for i, p := range phases {
		weeks = append(weeks, domain.WeekStructure{
			WeekNumber: i + 1, Theme: p.theme, Phase: p.phase,
			RestDays: []int{3, 6, 7}, VolumeDeltaPct: p.volume, IntensityDeltaPct: p.intensity,
			Workouts: []domain.WorkoutTemplate{
				upper(1, true), lower(2, true), upper(4, false), lower(5, false),
			},
		})
	}

	return domain.TrainingTemplate{
		ID:                "gym-hypertrophy-intermediate",
		Name:              "Gym Hypertrophy",
		Category:          "gym",
		FitnessLevels:     []domain.FitnessLevel{domain.LevelSomeExperience, domain.LevelAdvanced},
		Goals:             []domain.Goal{domain.GoalMuscleGain, domain.GoalStrength},
		EquipmentOptions:  [][]string{{"barbell", "bench", "rack"}},
		TimeCommitments:   []int{60, 45},
		WeeklyFrequencies: []string{"3-4", "4-5"},
		DurationWeeks:     6,
		Weeks:             weeks,
		ProgressionRules: []domain.ProgressionRule{
			{Trigger: domain.TriggerPerformanceBased, Condition: "completion_rate > 90%",
				Adjust: domain.RuleAdjustment{IntensityPct: 5}},
			{Trigger: domain.TriggerPerformanceBased, Condition: "average_rpe >= 9",
				Adjust: domain.RuleAdjustment{VolumePct: -10}},
		},
		Adaptations: domain.AdaptationTable{
			AgeBrackets: []domain.AgeBracketRule{
				{MinAge: 50, MaxAge: 120, IntensityMultiplier: 0.9},
			},
			EquipmentSubstitutions: map[string]string{
				"barbell-bench-press": "dumbbell-bench-press",
				"barbell-back-squat":  "goblet-squat",
				"barbell-row":         "dumbbell-row",
			},
			TimeBuckets: map[int]domain.TimeBucketScaling{
				45: {SetScale: 0.75, RepScale: 1.0, RestScale: 0.8},
				60: {SetScale: 1.0, RepScale: 1.0, RestScale: 1.0},
			},
		},
	}
}

func outdoorEnduranceBuilder() domain.TrainingTemplate {
	run := func(name string, day, minutes int, intensity domain.IntensityClass, key bool) domain.WorkoutTemplate {
		return domain.WorkoutTemplate{
			Name: name, Type: "cardio", Day: day, DurationMinutes: minutes,
			Intensity: intensity, IsKeyWorkout: key,
			Exercises: []domain.ExercisePrescription{
				{ExerciseID: "jog", Sets: 1, Reps: 1, RestSeconds: 0},
			},
		}
	}
	strength := domain.WorkoutTemplate{
		Name: "Runner's Strength", Type: "strength", Day: 4, DurationMinutes: 30,
		Intensity: domain.IntensityModerate,
		Exercises: []domain.ExercisePrescription{
			{ExerciseID: "bodyweight-squat", Sets: 3, Reps: 12, RestSeconds: 45},
			{ExerciseID: "glute-bridge", Sets: 3, Reps: 12, RestSeconds: 45},
			{ExerciseID: "plank", Sets: 3, Reps: 1, RestSeconds: 45},
		},
	}

	weeks := make([]domain.WeekStructure, 0, 4)
	plan := []struct {
		theme  string
		phase  string
		long   int
		volume float64
	}{
		{"Easy miles", "foundation", 30, 0},
		{"Stretching the long run", "build", 40, 10},
		{"Adding tempo", "build", 45, 15},
		{"Test week", "peak", 50, 20},
	}
	for i, p := range plan {
		weeks = append(weeks, domain.WeekStructure{
			WeekNumber: i + 1, Theme: p.theme, Phase: p.phase,
			RestDays: []int{3, 5, 7}, VolumeDeltaPct: p.volume,
			Workouts: []domain.WorkoutTemplate{
				run("Easy Run", 1, 25, domain.IntensityLow, false),
				run("Long Run", 6, p.long, domain.IntensityModerate, true),
				strength,
			},
		})
	}

	return domain.TrainingTemplate{
		ID:                "outdoor-endurance-builder",
		Name:              "Outdoor Endurance Builder",
		Category:          "cardio",
		FitnessLevels:     []domain.FitnessLevel{domain.LevelBeginner, domain.LevelSomeExperience, domain.LevelAdvanced},
		Goals:             []domain.Goal{domain.GoalEndurance, domain.GoalFatLoss},
		EquipmentOptions:  [][]string{{}},
		TimeCommitments:   []int{45, 30, 60},
		WeeklyFrequencies: []string{"2-3", "3-4"},
		DurationWeeks:     4,
		Weeks:             weeks,
		ProgressionRules: []domain.ProgressionRule{
			{Trigger: domain.TriggerWeekly, Condition: "week_number >= 2",
				Adjust: domain.RuleAdjustment{VolumePct: 5}},
			{Trigger: domain.TriggerPerformanceBased, Condition: "consistency_score >= 90",
				Adjust: domain.RuleAdjustment{VolumePct: 5}},
		},
		Adaptations: domain.AdaptationTable{
			AgeBrackets: []domain.AgeBracketRule{
				{MinAge: 60, MaxAge: 120, IntensityMultiplier: 0.85},
			},
			EquipmentSubstitutions: map[string]string{
				"jog": "brisk-walk",
			},
			TimeBuckets: map[int]domain.TimeBucketScaling{
				30: {SetScale: 0.8, RepScale: 1.0, RestScale: 0.9},
				45: {SetScale: 1.0, RepScale: 1.0, RestScale: 1.0},
				60: {SetScale: 1.2, RepScale: 1.0, RestScale: 1.1},
			},
		},
	}
}
