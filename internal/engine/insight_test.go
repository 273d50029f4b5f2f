package engine

import (
	"strings"
	"testing"

	"alcyxob/adaptive-coach/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCategorizePrecedence(t *testing.T) {
	ig := NewInsightGenerator(DefaultPolicy())
	gate := domain.GateResult{}

	tests := []struct {
		name     string
		analysis domain.WeekCompletionAnalysis
		want     domain.MessageCategory
	}{
		{
			"concerning pattern beats missed key workouts",
			domain.WeekCompletionAnalysis{
				Patterns:          []domain.PatternLabel{domain.PatternConcerning},
				KeyWorkoutsMissed: []string{"Long Run"},
				CompletionRate:    0.3,
			},
			domain.CategoryInjuryConcern,
		},
		{
			"missed key workouts beat low completion",
			domain.WeekCompletionAnalysis{
				KeyWorkoutsMissed: []string{"Long Run"},
				CompletionRate:    0.3,
			},
			domain.CategoryMissingKeyWorkouts,
		},
		{
			"low completion",
			domain.WeekCompletionAnalysis{CompletionRate: 0.5},
			domain.CategoryLowCompletion,
		},
		{
			"warning band maps to behind schedule",
			domain.WeekCompletionAnalysis{CompletionRate: 0.7, ConsistencyScore: 100},
			domain.CategoryBehindSchedule,
		},
		{
			"improving at high completion maps to ahead of schedule",
			domain.WeekCompletionAnalysis{
				CompletionRate: 0.95,
				Patterns:       []domain.PatternLabel{domain.PatternImproving},
			},
			domain.CategoryAheadSchedule,
		},
		{
			"high consistency",
			domain.WeekCompletionAnalysis{
				CompletionRate:   0.9,
				ConsistencyScore: 95,
				Patterns:         []domain.PatternLabel{domain.PatternStable},
			},
			domain.CategoryHighConsistency,
		},
		{
			"default motivation boost",
			domain.WeekCompletionAnalysis{
				CompletionRate:   0.85,
				ConsistencyScore: 80,
				Patterns:         []domain.PatternLabel{domain.PatternStable},
			},
			domain.CategoryMotivationBoost,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			insight := ig.Generate(tc.analysis, gate, domain.GoalFitness, "user-1")
			assert.Equal(t, tc.want, insight.Category)
			assert.NotEmpty(t, insight.Message)
		})
	}
}

func TestInsightIsDeterministic(t *testing.T) {
	ig := NewInsightGenerator(DefaultPolicy())
	analysis := domain.WeekCompletionAnalysis{WeekNumber: 3, CompletionRate: 0.85, ConsistencyScore: 80}

	first := ig.Generate(analysis, domain.GateResult{}, domain.GoalStrength, "user-42")
	for i := 0; i < 20; i++ {
		again := ig.Generate(analysis, domain.GateResult{}, domain.GoalStrength, "user-42")
		assert.Equal(t, first.Message, again.Message)
		assert.Equal(t, first.Category, again.Category)
	}
}

func TestInsightSubstitutesGoal(t *testing.T) {
	ig := NewInsightGenerator(DefaultPolicy())
	analysis := domain.WeekCompletionAnalysis{WeekNumber: 1, CompletionRate: 0.85, ConsistencyScore: 80}

	insight := ig.Generate(analysis, domain.GateResult{}, domain.GoalMuscleGain, "user-7")
	assert.Contains(t, insight.Message, "muscle gain")
	assert.NotContains(t, insight.Message, "{goal}")

	// An empty goal degrades gracefully.
	insight = ig.Generate(analysis, domain.GateResult{}, "", "user-7")
	assert.Contains(t, insight.Message, "your goal")
}

func TestInsightRecommendedAdjustments(t *testing.T) {
	ig := NewInsightGenerator(DefaultPolicy())

	insight := ig.Generate(domain.WeekCompletionAnalysis{
		Patterns: []domain.PatternLabel{domain.PatternConcerning},
	}, domain.GateResult{}, domain.GoalFitness, "u")
	assert.Equal(t, -30.0, insight.RecommendedVolumeDeltaPct)
	assert.Equal(t, -20.0, insight.RecommendedIntensityDeltaPct)

	insight = ig.Generate(domain.WeekCompletionAnalysis{CompletionRate: 0.4}, domain.GateResult{}, domain.GoalFitness, "u")
	assert.Equal(t, -20.0, insight.RecommendedVolumeDeltaPct)

	insight = ig.Generate(domain.WeekCompletionAnalysis{
		CompletionRate: 0.95,
		Patterns:       []domain.PatternLabel{domain.PatternImproving},
	}, domain.GateResult{}, domain.GoalFitness, "u")
	assert.Equal(t, 5.0, insight.RecommendedVolumeDeltaPct)
}

func TestMessagePoolsCoverEveryCategory(t *testing.T) {
	for _, category := range []domain.MessageCategory{
		domain.CategoryInjuryConcern,
		domain.CategoryMissingKeyWorkouts,
		domain.CategoryLowCompletion,
		domain.CategoryBehindSchedule,
		domain.CategoryAheadSchedule,
		domain.CategoryHighConsistency,
		domain.CategoryMotivationBoost,
	} {
		pool, ok := messagePools[category]
		assert.True(t, ok, "no message pool for %s", category)
		assert.NotEmpty(t, pool)
		for _, msg := range pool {
			assert.True(t, strings.Contains(msg, "{goal}"), "message without goal placeholder in %s", category)
		}
	}
}
