package engine

import (
	"fmt"

	"alcyxob/adaptive-coach/internal/domain"
)

// Gate is the prerequisite check that permits or blocks generating/unlocking
// the next week. This is a hard business rule: when CanProceed is false the
// caller must not invoke the week generator.
type Gate struct {
	policy Policy
}

// NewGate creates a gate with the given policy thresholds.
func NewGate(policy Policy) *Gate {
	return &Gate{policy: policy}
}

// Check evaluates the prior week's completion analysis.
//
//   - nil analysis (first generation): trivially passes.
//   - any key workout neither completed nor explicitly skipped with a reason
//     is a blocker, regardless of overall completion rate.
//   - completion rate below the block threshold is a blocker.
//   - completion rate in the warning band passes with a warning and
//     instructs the generator to hold volume flat for the next week.
func (g *Gate) Check(prior *domain.WeekCompletionAnalysis) domain.GateResult {
	if prior == nil {
		return domain.GateResult{CanProceed: true, CompletionRate: 1.0}
	}

	result := domain.GateResult{
		CompletionRate: prior.CompletionRate,
	}

	for _, name := range prior.KeyWorkoutsMissed {
		result.MissingWorkouts = append(result.MissingWorkouts, name)
		result.Blockers = append(result.Blockers,
			fmt.Sprintf("key workout %q was neither completed nor skipped with a reason", name))
	}

	if prior.CompletionRate < g.policy.BlockThreshold {
		result.Blockers = append(result.Blockers,
			fmt.Sprintf("completion rate %.0f%% is below the %.0f%% minimum",
				prior.CompletionRate*100, g.policy.BlockThreshold*100))
		result.CoachingMessage = pickMessage(domain.CategoryLowCompletion, "", prior.WeekNumber, "")
	} else if prior.CompletionRate < g.policy.WarnThreshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("completion rate %.0f%% is below the %.0f%% target; next week's volume will be held flat",
				prior.CompletionRate*100, g.policy.WarnThreshold*100))
		result.HoldVolume = true
	}

	result.CanProceed = len(result.Blockers) == 0
	return result
}
