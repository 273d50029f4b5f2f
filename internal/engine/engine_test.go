package engine

import (
	"testing"

	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/domain"

	"github.com/stretchr/testify/require"
)

func testCatalog() catalog.Catalog {
	return catalog.New(catalog.SeedExercises())
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cat := testCatalog()
	repo, err := NewTemplateRepository(BuiltinTemplates(), cat)
	require.NoError(t, err)
	return New(repo, cat, DefaultPolicy())
}

func beginnerProfile() domain.UserProfile {
	return domain.UserProfile{
		FitnessLevel:     domain.LevelBeginner,
		PrimaryGoal:      domain.GoalFitness,
		ActivityCategory: domain.ActivityGeneral,
		TimeCommitment:   30,
		WeeklyFrequency:  "2-3",
		Age:              30,
	}
}

// completeWeek marks every workout in the program's current week as done.
func completeWeek(week *domain.TrainingWeek) {
	for i := range week.Workouts {
		week.Workouts[i].Completed = true
		week.Workouts[i].CompletedDay = week.Workouts[i].Day
	}
	week.Completed = true
}
