package engine

import (
	"testing"

	"alcyxob/adaptive-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalTemplate() domain.TrainingTemplate {
	return domain.TrainingTemplate{
		ID:                "test-template",
		Name:              "Test",
		Category:          "bodyweight",
		FitnessLevels:     []domain.FitnessLevel{domain.LevelBeginner},
		Goals:             []domain.Goal{domain.GoalFitness},
		EquipmentOptions:  [][]string{{}},
		TimeCommitments:   []int{30},
		WeeklyFrequencies: []string{"2-3"},
		DurationWeeks:     1,
		Weeks: []domain.WeekStructure{
			{
				WeekNumber: 1, Theme: "t", Phase: "foundation",
				Workouts: []domain.WorkoutTemplate{
					{
						Name: "W", Type: "strength", Day: 1, DurationMinutes: 30,
						Intensity: domain.IntensityModerate,
						Exercises: []domain.ExercisePrescription{
							{ExerciseID: "push-up", Sets: 3, Reps: 10, RestSeconds: 60},
						},
					},
				},
			},
		},
	}
}

func TestBuiltinTemplatesLoad(t *testing.T) {
	repo, err := NewTemplateRepository(BuiltinTemplates(), testCatalog())
	require.NoError(t, err)
	assert.Len(t, repo.All(), 4)

	tmpl, ok := repo.Get("general-strength-beginner")
	require.True(t, ok)
	assert.Equal(t, 6, tmpl.DurationWeeks)
}

func TestRepositoryRejectsUnknownExercise(t *testing.T) {
	tmpl := minimalTemplate()
	tmpl.Weeks[0].Workouts[0].Exercises[0].ExerciseID = "does-not-exist"

	_, err := NewTemplateRepository([]domain.TrainingTemplate{tmpl}, testCatalog())
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "test-template", malformed.TemplateID)
}

func TestRepositoryRejectsWeeklyRuleWithPerformanceField(t *testing.T) {
	tmpl := minimalTemplate()
	tmpl.ProgressionRules = []domain.ProgressionRule{
		{Trigger: domain.TriggerWeekly, Condition: "completion_rate > 50%",
			Adjust: domain.RuleAdjustment{VolumePct: 5}},
	}

	_, err := NewTemplateRepository([]domain.TrainingTemplate{tmpl}, testCatalog())
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
}

func TestRepositoryRejectsUnparsableCondition(t *testing.T) {
	tmpl := minimalTemplate()
	tmpl.ProgressionRules = []domain.ProgressionRule{
		{Trigger: domain.TriggerPerformanceBased, Condition: "gibberish"},
	}

	_, err := NewTemplateRepository([]domain.TrainingTemplate{tmpl}, testCatalog())
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
}

func TestRepositoryRejectsDuplicateID(t *testing.T) {
	_, err := NewTemplateRepository([]domain.TrainingTemplate{minimalTemplate(), minimalTemplate()}, testCatalog())
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "duplicate")
}

func TestRepositoryRejectsWeekCountMismatch(t *testing.T) {
	tmpl := minimalTemplate()
	tmpl.DurationWeeks = 2

	_, err := NewTemplateRepository([]domain.TrainingTemplate{tmpl}, testCatalog())
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
}

func TestRepositoryRejectsUnknownSubstitutionHint(t *testing.T) {
	tmpl := minimalTemplate()
	tmpl.Adaptations.EquipmentSubstitutions = map[string]string{"push-up": "not-real"}

	_, err := NewTemplateRepository([]domain.TrainingTemplate{tmpl}, testCatalog())
	var malformed *MalformedTemplateError
	require.ErrorAs(t, err, &malformed)
}
