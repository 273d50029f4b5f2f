package engine

import (
	"testing"

	"alcyxob/adaptive-coach/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestGatePassesWithoutPriorAnalysis(t *testing.T) {
	g := NewGate(DefaultPolicy())

	result := g.Check(nil)
	assert.True(t, result.CanProceed)
	assert.Equal(t, 1.0, result.CompletionRate)
	assert.Empty(t, result.Blockers)
}

func TestGateCompletionRateBoundaries(t *testing.T) {
	g := NewGate(DefaultPolicy())

	tests := []struct {
		name       string
		rate       float64
		canProceed bool
		holdVolume bool
	}{
		{"just below block threshold", 0.59, false, false},
		{"exactly at block threshold", 0.60, true, true},
		{"just above block threshold", 0.61, true, true},
		{"inside warning band", 0.70, true, true},
		{"just below warn threshold", 0.79, true, true},
		{"exactly at warn threshold", 0.80, true, false},
		{"comfortably above", 0.95, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Check(&domain.WeekCompletionAnalysis{CompletionRate: tc.rate})
			assert.Equal(t, tc.canProceed, result.CanProceed)
			assert.Equal(t, tc.holdVolume, result.HoldVolume)
			if !tc.canProceed {
				assert.NotEmpty(t, result.Blockers)
				assert.NotEmpty(t, result.CoachingMessage)
			}
			if tc.holdVolume {
				assert.NotEmpty(t, result.Warnings)
			}
		})
	}
}

func TestGateWarnsOnExactSixtyPercentWeek(t *testing.T) {
	a := NewAnalyzer(DefaultPolicy())
	g := NewGate(DefaultPolicy())

	// Five workouts, three completed including both key ones, two skipped
	// without a reason. The rate is exactly 60%: warn, not block.
	week := weekOf(
		done("Intervals", true),
		done("Long Run", true),
		done("Tempo", false),
		domain.TrainingWorkout{Name: "Easy Run", Skipped: true},
		domain.TrainingWorkout{Name: "Strength", Skipped: true},
	)

	analysis := a.Analyze(week, nil)
	assert.InDelta(t, 0.6, analysis.CompletionRate, 1e-9)

	result := g.Check(&analysis)
	assert.True(t, result.CanProceed)
	assert.True(t, result.HoldVolume)
	assert.Empty(t, result.Blockers)
	assert.NotEmpty(t, result.Warnings)
}

func TestGateBlocksOnMissedKeyWorkoutRegardlessOfRate(t *testing.T) {
	g := NewGate(DefaultPolicy())

	result := g.Check(&domain.WeekCompletionAnalysis{
		CompletionRate:    0.95,
		KeyWorkoutsMissed: []string{"Long Run"},
	})
	assert.False(t, result.CanProceed)
	assert.Equal(t, []string{"Long Run"}, result.MissingWorkouts)
	assert.NotEmpty(t, result.Blockers)
}

func TestGateRespectsConfiguredThresholds(t *testing.T) {
	policy := DefaultPolicy()
	policy.BlockThreshold = 0.5
	policy.WarnThreshold = 0.9
	g := NewGate(policy)

	result := g.Check(&domain.WeekCompletionAnalysis{CompletionRate: 0.55})
	assert.True(t, result.CanProceed)
	assert.True(t, result.HoldVolume)

	result = g.Check(&domain.WeekCompletionAnalysis{CompletionRate: 0.45})
	assert.False(t, result.CanProceed)
}
