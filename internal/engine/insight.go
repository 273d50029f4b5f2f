package engine

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"alcyxob/adaptive-coach/internal/domain"
)

// messagePools holds the coaching-message templates per category. The {goal}
// placeholder is substituted from the program's goal. Selection within a pool
// is deterministic (hash of userId+weekNumber), so identical inputs always
// reproduce the same message.
var messagePools = map[domain.MessageCategory][]string{
	domain.CategoryInjuryConcern: {
		"One of your sessions felt brutal and unrewarding. Back off the intensity this week — protecting your body is part of chasing {goal}.",
		"That very hard, low-rated workout is a red flag. Ease up, recover well, and we'll keep moving toward {goal} safely.",
	},
	domain.CategoryMissingKeyWorkouts: {
		"You missed a key workout last week without logging it. Those sessions anchor your {goal} progress — complete or skip them deliberately.",
		"A cornerstone session went missing. If life got in the way, mark it skipped; your {goal} plan adapts better with honest data.",
	},
	domain.CategoryLowCompletion: {
		"Last week under half landed. Let's reset: a lighter week first, then back on the road to {goal}.",
		"Completion dipped low. That's a signal to shrink the plan, not abandon {goal} — we'll rebuild from a smaller base.",
		"Tough week. Before adding anything new, let's repeat a lighter version and keep {goal} in reach.",
	},
	domain.CategoryBehindSchedule: {
		"You're a bit behind plan, so this week holds steady rather than adding volume. Consistency first, {goal} second.",
		"Slightly under target last week — no added load this week. Nail the sessions and momentum toward {goal} returns.",
	},
	domain.CategoryAheadSchedule: {
		"You're ahead of plan and climbing. Expect a nudge in volume this week — {goal} is getting closer.",
		"Everything landed and then some. We'll press a little harder this week on the way to {goal}.",
	},
	domain.CategoryHighConsistency: {
		"Textbook week: right sessions, right days. That kind of consistency is what actually delivers {goal}.",
		"You hit your planned days almost perfectly. Keep that rhythm and {goal} takes care of itself.",
	},
	domain.CategoryMotivationBoost: {
		"Solid work last week. Stack another one like it and {goal} stops being a goal and starts being a habit.",
		"Progress is rarely dramatic — it's weeks like this one, repeated. Keep going; {goal} is built exactly this way.",
		"Good week in the books. Show up again this week and {goal} gets another step closer.",
	},
}

// Recommended next-week deltas per category, additive percentages.
var categoryAdjustments = map[domain.MessageCategory]domain.RuleAdjustment{
	domain.CategoryInjuryConcern:      {VolumePct: -30, IntensityPct: -20},
	domain.CategoryLowCompletion:      {VolumePct: -20, IntensityPct: -10},
	domain.CategoryMissingKeyWorkouts: {},
	domain.CategoryBehindSchedule:     {},
	domain.CategoryAheadSchedule:      {VolumePct: 5, IntensityPct: 5},
	domain.CategoryHighConsistency:    {},
	domain.CategoryMotivationBoost:    {},
}

// InsightGenerator maps a completion analysis and gate verdict to exactly one
// coaching-message category and renders the templated message.
type InsightGenerator struct {
	policy Policy
}

// NewInsightGenerator creates an insight generator with the given policy.
func NewInsightGenerator(policy Policy) *InsightGenerator {
	return &InsightGenerator{policy: policy}
}

// Generate picks the highest-precedence applicable category:
// injury_concern > missing_key_workouts > low_completion > behind_schedule >
// ahead_schedule > high_consistency > motivation_boost (default).
func (ig *InsightGenerator) Generate(analysis domain.WeekCompletionAnalysis, gate domain.GateResult, goal domain.Goal, userID string) domain.CoachingInsight {
	category := ig.categorize(analysis, gate)
	adjust := categoryAdjustments[category]

	return domain.CoachingInsight{
		Category:                     category,
		Message:                      pickMessage(category, userID, analysis.WeekNumber, goal),
		RecommendedVolumeDeltaPct:    adjust.VolumePct,
		RecommendedIntensityDeltaPct: adjust.IntensityPct,
		GeneratedAt:                  time.Now().UTC(),
	}
}

func (ig *InsightGenerator) categorize(analysis domain.WeekCompletionAnalysis, gate domain.GateResult) domain.MessageCategory {
	switch {
	case analysis.HasPattern(domain.PatternConcerning):
		return domain.CategoryInjuryConcern
	case len(analysis.KeyWorkoutsMissed) > 0:
		return domain.CategoryMissingKeyWorkouts
	case analysis.CompletionRate < ig.policy.BlockThreshold:
		return domain.CategoryLowCompletion
	case analysis.CompletionRate < ig.policy.WarnThreshold || analysis.HasPattern(domain.PatternDeclining):
		return domain.CategoryBehindSchedule
	case analysis.HasPattern(domain.PatternImproving) && analysis.CompletionRate >= 0.9:
		return domain.CategoryAheadSchedule
	case analysis.ConsistencyScore >= 90 && analysis.CompletionRate >= ig.policy.WarnThreshold:
		return domain.CategoryHighConsistency
	default:
		return domain.CategoryMotivationBoost
	}
}

// pickMessage deterministically selects a message from the category's pool
// and substitutes the {goal} placeholder. The FNV hash of userId+weekNumber
// keeps the choice stable across calls with identical inputs.
func pickMessage(category domain.MessageCategory, userID string, weekNumber int, goal domain.Goal) string {
	pool := messagePools[category]
	if len(pool) == 0 {
		return ""
	}

	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d", userID, weekNumber)
	msg := pool[h.Sum32()%uint32(len(pool))]

	goalText := strings.ReplaceAll(string(goal), "_", " ")
	if goalText == "" {
		goalText = "your goal"
	}
	return strings.ReplaceAll(msg, "{goal}", goalText)
}
