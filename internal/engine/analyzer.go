package engine

import (
	"alcyxob/adaptive-coach/internal/domain"
)

// Analyzer reduces a training week's workouts to a completion analysis. The
// analysis is derived and ephemeral: it is computed fresh on each request and
// never persisted by the engine.
type Analyzer struct {
	policy Policy
}

// NewAnalyzer creates an analyzer with the given policy.
func NewAnalyzer(policy Policy) *Analyzer {
	return &Analyzer{policy: policy}
}

// Analyze summarizes the week. previous is the prior week's analysis and may
// be nil; pattern labels that compare across weeks degrade to "inconsistent"
// without it.
func (a *Analyzer) Analyze(week *domain.TrainingWeek, previous *domain.WeekCompletionAnalysis) domain.WeekCompletionAnalysis {
	analysis := domain.WeekCompletionAnalysis{
		WeekNumber:    week.WeekNumber,
		TotalWorkouts: len(week.Workouts),
	}

	dayMismatches := 0
	feedbackCount := 0
	rpeSum, ratingSum := 0, 0

	for _, w := range week.Workouts {
		if w.Completed {
			analysis.CompletedWorkouts++
		}
		if w.Skipped {
			analysis.SkippedWorkouts++
		}

		if w.IsKeyWorkout {
			switch {
			case w.Completed:
				analysis.KeyWorkoutsCompleted = append(analysis.KeyWorkoutsCompleted, w.Name)
			case w.Skipped && w.SkipReason != "":
				// Explicitly skipped with a reason: not completed, but also
				// not silently missing, so not a gate blocker.
			default:
				analysis.KeyWorkoutsMissed = append(analysis.KeyWorkoutsMissed, w.Name)
			}
		}

		if w.Completed && w.CompletedDay != 0 && w.Day != 0 {
			if abs(w.CompletedDay-w.Day) > a.policy.DayMismatchTolerance {
				dayMismatches++
			}
		}

		if w.Feedback != nil {
			feedbackCount++
			rpeSum += w.Feedback.RPE
			ratingSum += w.Feedback.Enjoyment
		}
	}

	if analysis.TotalWorkouts > 0 {
		analysis.CompletionRate = float64(analysis.CompletedWorkouts) / float64(analysis.TotalWorkouts)
	}

	analysis.ConsistencyScore = 100 - a.policy.ConsistencyPenalty*dayMismatches
	if analysis.ConsistencyScore < 0 {
		analysis.ConsistencyScore = 0
	}

	if feedbackCount > 0 {
		analysis.AverageRPE = float64(rpeSum) / float64(feedbackCount)
		analysis.AverageRating = float64(ratingSum) / float64(feedbackCount)
	}

	analysis.Patterns = a.classifyPatterns(week, &analysis, previous)
	return analysis
}

// classifyPatterns picks pattern labels from the fixed vocabulary. A single
// workout at concerning RPE with a bottomed-out rating overrides everything
// else; cross-week labels need the previous analysis.
func (a *Analyzer) classifyPatterns(week *domain.TrainingWeek, current *domain.WeekCompletionAnalysis, previous *domain.WeekCompletionAnalysis) []domain.PatternLabel {
	for _, w := range week.Workouts {
		if w.Feedback != nil && w.Feedback.RPE >= a.policy.ConcerningRPE && w.Feedback.Enjoyment <= a.policy.ConcerningRating {
			return []domain.PatternLabel{domain.PatternConcerning}
		}
	}

	if previous == nil {
		return []domain.PatternLabel{domain.PatternInconsistent}
	}

	delta := current.CompletionRate - previous.CompletionRate
	if delta >= -a.policy.StableBand && delta <= a.policy.StableBand {
		return []domain.PatternLabel{domain.PatternStable}
	}

	switch {
	case delta > 0 && current.AverageRating >= previous.AverageRating:
		return []domain.PatternLabel{domain.PatternImproving}
	case delta < 0 && current.AverageRating <= previous.AverageRating:
		return []domain.PatternLabel{domain.PatternDeclining}
	default:
		// Completion and rating moved in opposite directions.
		return []domain.PatternLabel{domain.PatternInconsistent}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FoldCompletions merges persisted workout completion records into a copy of
// the training week so it can be analyzed. Records are matched by workout
// name; unmatched records are ignored.
func FoldCompletions(week domain.TrainingWeek, completions []domain.WorkoutCompletion) domain.TrainingWeek {
	byName := make(map[string]*domain.WorkoutCompletion, len(completions))
	for i := range completions {
		byName[completions[i].WorkoutName] = &completions[i]
	}

	workouts := make([]domain.TrainingWorkout, len(week.Workouts))
	copy(workouts, week.Workouts)
	for i := range workouts {
		rec, ok := byName[workouts[i].Name]
		if !ok {
			continue
		}
		workouts[i].Completed = rec.Completed
		workouts[i].Skipped = rec.Skipped
		workouts[i].SkipReason = rec.SkipReason
		workouts[i].CompletedDay = rec.DayOfWeek
		if rec.RPE > 0 || rec.Rating > 0 {
			workouts[i].Feedback = &domain.WorkoutFeedback{
				RPE:       rec.RPE,
				Enjoyment: rec.Rating,
			}
		}
	}

	week.Workouts = workouts
	return week
}
