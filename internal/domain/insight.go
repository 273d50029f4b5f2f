package domain

import "time"

// MessageCategory identifies which coaching-message pool an insight draws
// from. When several apply, precedence is (highest first): injury_concern >
// missing_key_workouts > low_completion > behind_schedule > ahead_schedule >
// high_consistency > motivation_boost.
type MessageCategory string

const (
	CategoryInjuryConcern      MessageCategory = "injury_concern"
	CategoryMissingKeyWorkouts MessageCategory = "missing_key_workouts"
	CategoryLowCompletion      MessageCategory = "low_completion"
	CategoryBehindSchedule     MessageCategory = "behind_schedule"
	CategoryAheadSchedule      MessageCategory = "ahead_schedule"
	CategoryHighConsistency    MessageCategory = "high_consistency"
	CategoryMotivationBoost    MessageCategory = "motivation_boost"
)

// CoachingInsight is a templated, goal-aware message summarizing a user's
// recent adherence, plus the adjustment the engine recommends for the next
// generated week.
type CoachingInsight struct {
	Category MessageCategory `json:"category"`
	Message  string          `json:"message"`
	// Recommended deltas for the next week, additive percentages. Zero means
	// "follow the template's progression rules unchanged".
	RecommendedVolumeDeltaPct    float64   `json:"recommendedVolumeDeltaPct"`
	RecommendedIntensityDeltaPct float64   `json:"recommendedIntensityDeltaPct"`
	GeneratedAt                  time.Time `json:"generatedAt"`
}
