package engine

import (
	"testing"

	"alcyxob/adaptive-coach/internal/domain"

	"github.com/stretchr/testify/assert"
)

func weekOf(workouts ...domain.TrainingWorkout) *domain.TrainingWeek {
	return &domain.TrainingWeek{WeekNumber: 2, Workouts: workouts}
}

func done(name string, key bool) domain.TrainingWorkout {
	return domain.TrainingWorkout{Name: name, IsKeyWorkout: key, Completed: true}
}

func TestAnalyzeCompletionRate(t *testing.T) {
	a := NewAnalyzer(DefaultPolicy())

	analysis := a.Analyze(weekOf(
		done("A", true),
		done("B", false),
		domain.TrainingWorkout{Name: "C"},
		domain.TrainingWorkout{Name: "D", Skipped: true, SkipReason: "travel"},
	), nil)

	assert.Equal(t, 4, analysis.TotalWorkouts)
	assert.Equal(t, 2, analysis.CompletedWorkouts)
	assert.Equal(t, 1, analysis.SkippedWorkouts)
	assert.InDelta(t, 0.5, analysis.CompletionRate, 1e-9)
}

func TestAnalyzeKeyWorkoutPartition(t *testing.T) {
	a := NewAnalyzer(DefaultPolicy())

	analysis := a.Analyze(weekOf(
		done("Key Done", true),
		domain.TrainingWorkout{Name: "Key Skipped", IsKeyWorkout: true, Skipped: true, SkipReason: "sick"},
		domain.TrainingWorkout{Name: "Key Vanished", IsKeyWorkout: true},
		domain.TrainingWorkout{Name: "Key Silent Skip", IsKeyWorkout: true, Skipped: true},
	), nil)

	assert.Equal(t, []string{"Key Done"}, analysis.KeyWorkoutsCompleted)
	// Skipping with a reason is deliberate; skipping without one counts as
	// missing, same as not touching the workout at all.
	assert.Equal(t, []string{"Key Vanished", "Key Silent Skip"}, analysis.KeyWorkoutsMissed)
}

func TestAnalyzeConsistencyScore(t *testing.T) {
	a := NewAnalyzer(DefaultPolicy())

	analysis := a.Analyze(weekOf(
		domain.TrainingWorkout{Name: "A", Day: 1, CompletedDay: 1, Completed: true},
		domain.TrainingWorkout{Name: "B", Day: 3, CompletedDay: 4, Completed: true}, // within tolerance
		domain.TrainingWorkout{Name: "C", Day: 5, CompletedDay: 1, Completed: true}, // off by 4
	), nil)
	assert.Equal(t, 90, analysis.ConsistencyScore)

	// Unknown completion days never count against the score.
	analysis = a.Analyze(weekOf(
		domain.TrainingWorkout{Name: "A", Day: 1, Completed: true},
	), nil)
	assert.Equal(t, 100, analysis.ConsistencyScore)
}

func TestAnalyzeAverages(t *testing.T) {
	a := NewAnalyzer(DefaultPolicy())

	analysis := a.Analyze(weekOf(
		domain.TrainingWorkout{Name: "A", Completed: true, Feedback: &domain.WorkoutFeedback{RPE: 6, Enjoyment: 4}},
		domain.TrainingWorkout{Name: "B", Completed: true, Feedback: &domain.WorkoutFeedback{RPE: 8, Enjoyment: 2}},
		domain.TrainingWorkout{Name: "C", Completed: true},
	), nil)

	assert.InDelta(t, 7.0, analysis.AverageRPE, 1e-9)
	assert.InDelta(t, 3.0, analysis.AverageRating, 1e-9)
}

func TestPatternConcerningOverridesEverything(t *testing.T) {
	a := NewAnalyzer(DefaultPolicy())

	previous := &domain.WeekCompletionAnalysis{CompletionRate: 0.5}
	analysis := a.Analyze(weekOf(
		done("A", false), done("B", false),
		domain.TrainingWorkout{Name: "C", Completed: true, Feedback: &domain.WorkoutFeedback{RPE: 9, Enjoyment: 2}},
	), previous)

	assert.Equal(t, []domain.PatternLabel{domain.PatternConcerning}, analysis.Patterns)
}

func TestPatternsAcrossWeeks(t *testing.T) {
	a := NewAnalyzer(DefaultPolicy())

	// No previous week to compare against.
	analysis := a.Analyze(weekOf(done("A", false)), nil)
	assert.Equal(t, []domain.PatternLabel{domain.PatternInconsistent}, analysis.Patterns)

	// Rate up, rating steady: improving.
	previous := &domain.WeekCompletionAnalysis{CompletionRate: 0.5, AverageRating: 3}
	analysis = a.Analyze(weekOf(
		domain.TrainingWorkout{Name: "A", Completed: true, Feedback: &domain.WorkoutFeedback{RPE: 6, Enjoyment: 3}},
		domain.TrainingWorkout{Name: "B", Completed: true, Feedback: &domain.WorkoutFeedback{RPE: 6, Enjoyment: 3}},
	), previous)
	assert.Equal(t, []domain.PatternLabel{domain.PatternImproving}, analysis.Patterns)

	// Rate down, rating down: declining.
	previous = &domain.WeekCompletionAnalysis{CompletionRate: 1.0, AverageRating: 4}
	analysis = a.Analyze(weekOf(
		domain.TrainingWorkout{Name: "A", Completed: true, Feedback: &domain.WorkoutFeedback{RPE: 6, Enjoyment: 2}},
		domain.TrainingWorkout{Name: "B"},
	), previous)
	assert.Equal(t, []domain.PatternLabel{domain.PatternDeclining}, analysis.Patterns)

	// Within the stable band.
	previous = &domain.WeekCompletionAnalysis{CompletionRate: 1.0, AverageRating: 3}
	analysis = a.Analyze(weekOf(done("A", false), done("B", false)), previous)
	assert.Equal(t, []domain.PatternLabel{domain.PatternStable}, analysis.Patterns)

	// Rate up but rating down: inconsistent.
	previous = &domain.WeekCompletionAnalysis{CompletionRate: 0.5, AverageRating: 5}
	analysis = a.Analyze(weekOf(
		domain.TrainingWorkout{Name: "A", Completed: true, Feedback: &domain.WorkoutFeedback{RPE: 6, Enjoyment: 2}},
		domain.TrainingWorkout{Name: "B", Completed: true, Feedback: &domain.WorkoutFeedback{RPE: 6, Enjoyment: 2}},
	), previous)
	assert.Equal(t, []domain.PatternLabel{domain.PatternInconsistent}, analysis.Patterns)
}

func TestFoldCompletions(t *testing.T) {
	week := domain.TrainingWeek{
		WeekNumber: 1,
		Workouts: []domain.TrainingWorkout{
			{Name: "Full Body A", Day: 1, IsKeyWorkout: true},
			{Name: "Full Body B", Day: 3},
		},
	}

	folded := FoldCompletions(week, []domain.WorkoutCompletion{
		{WorkoutName: "Full Body A", Completed: true, DayOfWeek: 2, RPE: 7, Rating: 4},
		{WorkoutName: "Not In Week", Completed: true},
	})

	assert.True(t, folded.Workouts[0].Completed)
	assert.Equal(t, 2, folded.Workouts[0].CompletedDay)
	assert.Equal(t, 7, folded.Workouts[0].Feedback.RPE)
	assert.Equal(t, 4, folded.Workouts[0].Feedback.Enjoyment)
	assert.False(t, folded.Workouts[1].Completed)

	// The input week is untouched.
	assert.False(t, week.Workouts[0].Completed)
}
