package engine

import (
	"testing"

	"alcyxob/adaptive-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomizer(t *testing.T) (*Customizer, *TemplateRepository) {
	t.Helper()
	cat := testCatalog()
	repo, err := NewTemplateRepository(BuiltinTemplates(), cat)
	require.NoError(t, err)
	return NewCustomizer(cat, DefaultPolicy()), repo
}

func TestGlobalIntensityRules(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		level   domain.FitnessLevel
		want    float64
	}{
		{"young beginner stays neutral", 22, domain.LevelBeginner, 1.0},
		{"mature gets 0.9", 55, domain.LevelSomeExperience, 0.9},
		{"senior gets 0.8", 65, domain.LevelSomeExperience, 0.8},
		{"mature beginner capped at 0.8", 55, domain.LevelBeginner, 0.8},
		{"young advanced gets 1.1", 24, domain.LevelAdvanced, 1.1},
		{"senior advanced floored at 1.1", 65, domain.LevelAdvanced, 1.1},
		{"mid-age some experience stays neutral", 40, domain.LevelSomeExperience, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profile := domain.UserProfile{Age: tc.age, FitnessLevel: tc.level}
			assert.InDelta(t, tc.want, deriveGlobalIntensity(profile), 1e-9)
		})
	}
}

func TestCustomizeSetsGlobalIntensity(t *testing.T) {
	c, repo := testCustomizer(t)
	tmpl, ok := repo.Get("general-strength-beginner")
	require.True(t, ok)

	profile := beginnerProfile()
	profile.Age = 22

	custom := c.Customize(tmpl, profile, [12]byte{1}, domain.ModeProgressive)
	assert.InDelta(t, 1.0, custom.IntensityAdjustments["global"], 1e-9)

	profile.Age = 65
	custom = c.Customize(tmpl, profile, [12]byte{1}, domain.ModeProgressive)
	assert.InDelta(t, 0.8, custom.IntensityAdjustments["global"], 1e-9)
	// The template's own 60+ bracket also applies.
	assert.InDelta(t, 0.9, custom.IntensityAdjustments["template_age"], 1e-9)
}

func TestEquipmentSubstitutionHonorsTemplateHints(t *testing.T) {
	c, repo := testCustomizer(t)
	tmpl, ok := repo.Get("gym-hypertrophy-intermediate")
	require.True(t, ok)

	profile := domain.UserProfile{
		FitnessLevel:     domain.LevelSomeExperience,
		PrimaryGoal:      domain.GoalMuscleGain,
		ActivityCategory: domain.ActivityGym,
		TimeCommitment:   60,
		WeeklyFrequency:  "3-4",
		Equipment:        []string{"dumbbell"},
		Age:              30,
	}

	custom := c.Customize(tmpl, profile, [12]byte{2}, domain.ModeProgressive)

	// goblet-squat and dumbbell-row hints satisfy the user's equipment and
	// take precedence over a catalog search.
	assert.Equal(t, "goblet-squat", custom.ExerciseSubstitutions["barbell-back-squat"])
	assert.Equal(t, "dumbbell-row", custom.ExerciseSubstitutions["barbell-row"])

	// The bench-press hint needs a bench the user lacks, so the catalog's
	// first compatible push exercise steps in.
	assert.Equal(t, "push-up", custom.ExerciseSubstitutions["barbell-bench-press"])
}

func TestNoSubstitutionWithFullEquipment(t *testing.T) {
	c, repo := testCustomizer(t)
	tmpl, ok := repo.Get("gym-hypertrophy-intermediate")
	require.True(t, ok)

	// Full gym access: no equipment substitution needed, no warnings from it.
	profile := domain.UserProfile{
		FitnessLevel:   domain.LevelSomeExperience,
		TimeCommitment: 60,
		Equipment:      []string{"barbell", "bench", "rack", "pullup-bar"},
		Age:            30,
	}
	custom := c.Customize(tmpl, profile, [12]byte{3}, domain.ModeProgressive)
	assert.Empty(t, custom.ExerciseSubstitutions)
	assert.Empty(t, custom.Warnings)
}

func TestAgeEasingReplacesHardExercises(t *testing.T) {
	c, repo := testCustomizer(t)
	tmpl, ok := repo.Get("gym-hypertrophy-intermediate")
	require.True(t, ok)

	profile := domain.UserProfile{
		FitnessLevel:   domain.LevelSomeExperience,
		TimeCommitment: 60,
		Equipment:      []string{"barbell", "bench", "rack", "pullup-bar"},
		Age:            55,
	}
	custom := c.Customize(tmpl, profile, [12]byte{4}, domain.ModeProgressive)

	cat := testCatalog()
	// Every difficulty >= 4 exercise must be substituted for something easier.
	for _, id := range tmpl.ReferencedExerciseIDs() {
		ex, err := cat.Get(id)
		require.NoError(t, err)
		if ex.Difficulty >= 4 {
			sub, ok := custom.ExerciseSubstitutions[id]
			require.True(t, ok, "expected easing substitution for %q", id)
			eased, err := cat.Get(sub)
			require.NoError(t, err)
			assert.LessOrEqual(t, eased.Difficulty, 3)
		}
	}
}

func TestTimeModifications(t *testing.T) {
	c, repo := testCustomizer(t)
	tmpl, ok := repo.Get("general-strength-beginner")
	require.True(t, ok)

	// Reference duration is the template's first declared commitment (30).
	profile := beginnerProfile()
	profile.TimeCommitment = 45
	custom := c.Customize(tmpl, profile, [12]byte{5}, domain.ModeProgressive)
	assert.InDelta(t, 1.5, custom.TimeModifications.DurationScale, 1e-9)
	// Rest never stretches past the cap.
	assert.InDelta(t, 1.2, custom.TimeModifications.RestScale, 1e-9)

	profile.TimeCommitment = 20
	custom = c.Customize(tmpl, profile, [12]byte{5}, domain.ModeProgressive)
	assert.InDelta(t, 20.0/30.0, custom.TimeModifications.DurationScale, 1e-9)
	assert.InDelta(t, 20.0/30.0, custom.TimeModifications.RestScale, 1e-9)
}

func TestCustomizeIsPure(t *testing.T) {
	c, repo := testCustomizer(t)
	tmpl, ok := repo.Get("general-strength-beginner")
	require.True(t, ok)
	profile := beginnerProfile()

	a := c.Customize(tmpl, profile, [12]byte{6}, domain.ModeProgressive)
	b := c.Customize(tmpl, profile, [12]byte{6}, domain.ModeProgressive)
	assert.Equal(t, a.ExerciseSubstitutions, b.ExerciseSubstitutions)
	assert.Equal(t, a.IntensityAdjustments, b.IntensityAdjustments)
	assert.Equal(t, a.TimeModifications, b.TimeModifications)
}
