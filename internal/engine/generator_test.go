package engine

import (
	"testing"

	"alcyxob/adaptive-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startProgressive(t *testing.T, eng *Engine) *domain.CustomizedTemplate {
	t.Helper()
	custom, err := eng.SelectAndCustomize(beginnerProfile(), [12]byte{9}, domain.ModeProgressive)
	require.NoError(t, err)
	require.Equal(t, "general-strength-beginner", custom.TemplateID)
	return custom
}

func TestGenerateFirstWeek(t *testing.T) {
	eng := testEngine(t)
	custom := startProgressive(t, eng)

	week, err := eng.GenerateNextWeek(custom, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, week.WeekNumber)
	assert.Equal(t, "Learning the movements", week.Theme)
	assert.Len(t, week.Workouts, 3)
	assert.Len(t, custom.GeneratedWeeks, 1)

	// Week 1 structure has no deltas and no rule fires yet.
	assert.Equal(t, 0.0, week.VolumeAdjustmentPct)
	assert.Equal(t, 0.0, week.IntensityAdjustmentPct)
}

func TestProgressiveModeRefusesWhileWeekInProgress(t *testing.T) {
	eng := testEngine(t)
	custom := startProgressive(t, eng)

	_, err := eng.GenerateNextWeek(custom, nil)
	require.NoError(t, err)

	_, err = eng.GenerateNextWeek(custom, nil)
	rejection, ok := IsGateRejection(err)
	require.True(t, ok)
	assert.False(t, rejection.Result.CanProceed)
	assert.Len(t, custom.GeneratedWeeks, 1)
}

func TestWeeksAreSequentialWithoutGaps(t *testing.T) {
	eng := testEngine(t)
	custom := startProgressive(t, eng)

	for i := 1; i <= 6; i++ {
		var prior *domain.WeekCompletionAnalysis
		if cur := custom.CurrentWeek(); cur != nil {
			completeWeek(cur)
			a := eng.AnalyzeWeek(cur, nil)
			prior = &a
		}
		week, err := eng.GenerateNextWeek(custom, prior)
		require.NoError(t, err)
		assert.Equal(t, i, week.WeekNumber)
	}

	for i, week := range custom.GeneratedWeeks {
		assert.Equal(t, i+1, week.WeekNumber)
	}

	// The template is exhausted.
	completeWeek(custom.CurrentWeek())
	a := eng.AnalyzeWeek(custom.CurrentWeek(), nil)
	_, err := eng.GenerateNextWeek(custom, &a)
	assert.ErrorIs(t, err, ErrProgramComplete)
}

func TestProgressionRulesAccumulateAdditively(t *testing.T) {
	eng := testEngine(t)
	custom := startProgressive(t, eng)

	week1, err := eng.GenerateNextWeek(custom, nil)
	require.NoError(t, err)
	completeWeek(week1)

	// Full completion: rate 1.0 fires the completion_rate > 90% rule (+5/+5)
	// on top of week 2's structural +5 volume.
	analysis := eng.AnalyzeWeek(week1, nil)
	week2, err := eng.GenerateNextWeek(custom, &analysis)
	require.NoError(t, err)
	assert.Equal(t, 10.0, week2.VolumeAdjustmentPct)
	assert.Equal(t, 5.0, week2.IntensityAdjustmentPct)
}

func TestWarningBandHoldsVolumeFlat(t *testing.T) {
	eng := testEngine(t)
	custom := startProgressive(t, eng)

	week1, err := eng.GenerateNextWeek(custom, nil)
	require.NoError(t, err)

	// Complete 2 of 3 (the key workout included); skip the last with a
	// reason. Rate 0.67 lands in the warning band.
	week1.Workouts[0].Completed = true
	week1.Workouts[1].Completed = true
	week1.Workouts[2].Skipped = true
	week1.Workouts[2].SkipReason = "no time"

	analysis := eng.AnalyzeWeek(week1, nil)
	require.True(t, analysis.CompletionRate > 0.6 && analysis.CompletionRate < 0.8)

	week2, err := eng.GenerateNextWeek(custom, &analysis)
	require.NoError(t, err)
	// Volume is pinned to the prior week's level instead of the structural +5.
	assert.Equal(t, week1.VolumeAdjustmentPct, week2.VolumeAdjustmentPct)
}

func TestGateBlocksLowCompletionWeek(t *testing.T) {
	eng := testEngine(t)
	custom := startProgressive(t, eng)

	week1, err := eng.GenerateNextWeek(custom, nil)
	require.NoError(t, err)

	// Only one of three done; the rest skipped with reasons so the week
	// counts as finished but the rate is 0.33.
	week1.Workouts[0].Completed = true
	for i := 1; i < len(week1.Workouts); i++ {
		week1.Workouts[i].Skipped = true
		week1.Workouts[i].SkipReason = "sick"
	}

	analysis := eng.AnalyzeWeek(week1, nil)
	_, err = eng.GenerateNextWeek(custom, &analysis)
	rejection, ok := IsGateRejection(err)
	require.True(t, ok)
	assert.False(t, rejection.Result.CanProceed)
	assert.NotEmpty(t, rejection.Result.Blockers)
	assert.Len(t, custom.GeneratedWeeks, 1)
}

func TestTimeScalingAppliedToGeneratedWeek(t *testing.T) {
	eng := testEngine(t)
	profile := beginnerProfile()
	profile.TimeCommitment = 20

	custom, err := eng.SelectAndCustomize(profile, [12]byte{10}, domain.ModeProgressive)
	require.NoError(t, err)

	week, err := eng.GenerateNextWeek(custom, nil)
	require.NoError(t, err)

	// The 20-minute bucket shrinks sets to 70% and the duration scale (20/30)
	// shortens every session.
	strengthWorkout := week.Workouts[0]
	assert.Equal(t, 20, strengthWorkout.DurationMinutes)
	assert.Equal(t, 2, strengthWorkout.Exercises[0].Sets) // round(3 * 0.7)
}

func TestSubstitutionsFlowIntoGeneratedWeek(t *testing.T) {
	eng := testEngine(t)
	profile := domain.UserProfile{
		FitnessLevel:     domain.LevelSomeExperience,
		PrimaryGoal:      domain.GoalMuscleGain,
		ActivityCategory: domain.ActivityGym,
		TimeCommitment:   60,
		WeeklyFrequency:  "3-4",
		Equipment:        []string{"barbell", "bench", "rack", "pullup-bar"},
		Age:              55,
	}

	custom, err := eng.SelectAndCustomize(profile, [12]byte{11}, domain.ModeProgressive)
	require.NoError(t, err)
	require.NotEmpty(t, custom.ExerciseSubstitutions)

	week, err := eng.GenerateNextWeek(custom, nil)
	require.NoError(t, err)

	// No generated exercise may reference an id the customization replaced.
	for _, w := range week.Workouts {
		for _, ex := range w.Exercises {
			_, replaced := custom.ExerciseSubstitutions[ex.ExerciseID]
			assert.False(t, replaced, "unsubstituted exercise %q in generated week", ex.ExerciseID)
		}
	}
}

func TestFullPlanFrameworkAndMaterialization(t *testing.T) {
	eng := testEngine(t)

	custom, err := eng.SelectAndCustomize(beginnerProfile(), [12]byte{12}, domain.ModeFullPlan)
	require.NoError(t, err)
	require.Len(t, custom.FrameworkWeeks, 6)

	assert.True(t, custom.FrameworkWeeks[0].CanAccess)
	for _, fw := range custom.FrameworkWeeks[1:] {
		assert.False(t, fw.CanAccess)
		assert.Equal(t, domain.DetailFramework, fw.DetailLevel)
	}

	week, err := eng.MaterializeWeek(custom, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, week.WeekNumber)
	assert.Equal(t, domain.DetailDetailed, custom.FrameworkWeeks[0].DetailLevel)

	// Idempotent: a second access returns the stored week, not a new one.
	generatedAt := week.GeneratedAt
	again, err := eng.MaterializeWeek(custom, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, generatedAt, again.GeneratedAt)
	assert.Len(t, custom.GeneratedWeeks, 1)
}

func TestMaterializeWeekRangeAndSequenceChecks(t *testing.T) {
	eng := testEngine(t)

	custom, err := eng.SelectAndCustomize(beginnerProfile(), [12]byte{13}, domain.ModeFullPlan)
	require.NoError(t, err)

	_, err = eng.MaterializeWeek(custom, 99, nil)
	assert.ErrorIs(t, err, ErrWeekOutOfRange)

	_, err = eng.MaterializeWeek(custom, 3, nil)
	assert.ErrorIs(t, err, ErrNonSequentialWeek)
}

func TestUnlockWeekAdvancesFramework(t *testing.T) {
	eng := testEngine(t)

	custom, err := eng.SelectAndCustomize(beginnerProfile(), [12]byte{14}, domain.ModeFullPlan)
	require.NoError(t, err)

	week, err := eng.MaterializeWeek(custom, 1, nil)
	require.NoError(t, err)
	completeWeek(week)

	eng.UnlockWeek(custom, 2)
	assert.True(t, custom.FrameworkWeeks[1].CanAccess)
	assert.Equal(t, domain.DetailCompleted, custom.FrameworkWeeks[0].DetailLevel)
}

func TestAbandonedWeekUnblocksProgressiveGeneration(t *testing.T) {
	eng := testEngine(t)
	custom := startProgressive(t, eng)

	week1, err := eng.GenerateNextWeek(custom, nil)
	require.NoError(t, err)

	week1.Abandoned = true
	analysis := eng.AnalyzeWeek(week1, nil)
	// Nothing was completed, so the gate still blocks; abandoning only clears
	// the in-progress refusal, not the completion requirements.
	_, err = eng.GenerateNextWeek(custom, &analysis)
	_, isGate := IsGateRejection(err)
	assert.True(t, isGate)

	// With a passing analysis the abandoned week no longer stands in the way.
	week1.Workouts[0].Completed = true
	week1.Workouts[1].Completed = true
	week1.Workouts[2].Completed = true
	analysis = eng.AnalyzeWeek(week1, nil)
	week2, err := eng.GenerateNextWeek(custom, &analysis)
	require.NoError(t, err)
	assert.Equal(t, 2, week2.WeekNumber)
}
