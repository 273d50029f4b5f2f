package engine

import (
	"math"
	"time"

	"alcyxob/adaptive-coach/internal/domain"
)

// Generator materializes training weeks from a customized template.
//
// In progressive mode exactly one training week exists ahead of the user at a
// time; in full_plan mode all weeks exist as framework placeholders and are
// detailed on first (gated) access. Materialization is idempotent: accessing
// an already-detailed week returns the stored result.
type Generator struct {
	repo   *TemplateRepository
	gate   *Gate
	policy Policy
}

// NewGenerator creates a generator over the template repository.
func NewGenerator(repo *TemplateRepository, gate *Gate, policy Policy) *Generator {
	return &Generator{repo: repo, gate: gate, policy: policy}
}

// BuildFrameworkPlan produces the cheap placeholder weeks for full_plan mode:
// theme, phase, workout-type summary and an hour estimate only. Week 1 starts
// accessible; later weeks are unlocked by the gate.
func (g *Generator) BuildFrameworkPlan(custom *domain.CustomizedTemplate) ([]domain.FrameworkWeek, error) {
	tmpl, ok := g.repo.Get(custom.TemplateID)
	if !ok {
		return nil, ErrUnknownTemplate
	}

	weeks := make([]domain.FrameworkWeek, 0, len(tmpl.Weeks))
	for _, ws := range tmpl.Weeks {
		var types []string
		seen := make(map[string]bool)
		minutes := 0
		for _, w := range ws.Workouts {
			if !seen[w.Type] {
				seen[w.Type] = true
				types = append(types, w.Type)
			}
			minutes += w.DurationMinutes
		}

		weeks = append(weeks, domain.FrameworkWeek{
			WeekNumber:     ws.WeekNumber,
			Theme:          ws.Theme,
			Phase:          ws.Phase,
			WorkoutTypes:   types,
			EstimatedHours: math.Round(float64(minutes)*custom.TimeModifications.DurationScale/60*10) / 10,
			DetailLevel:    domain.DetailFramework,
			CanAccess:      ws.WeekNumber == 1,
		})
	}
	return weeks, nil
}

// GenerateNextWeek materializes the next sequential week and appends it to
// the customized template. It refuses with a GateRejectionError when the
// prior analysis fails the prerequisite gate, or (progressive mode) when the
// current week is neither finished nor abandoned.
//
// The caller must serialize concurrent calls for the same program; the
// engine provides no mutual exclusion.
func (g *Generator) GenerateNextWeek(custom *domain.CustomizedTemplate, prior *domain.WeekCompletionAnalysis) (*domain.TrainingWeek, error) {
	tmpl, ok := g.repo.Get(custom.TemplateID)
	if !ok {
		return nil, ErrUnknownTemplate
	}

	next := custom.NextWeekNumber()
	if next > tmpl.DurationWeeks {
		return nil, ErrProgramComplete
	}

	if custom.Mode == domain.ModeProgressive {
		if cur := custom.CurrentWeek(); cur != nil && !cur.Completed && !cur.Abandoned && !cur.IsFinished() {
			return nil, &GateRejectionError{Result: domain.GateResult{
				CanProceed: false,
				Blockers:   []string{"current week is still in progress; finish or abandon it first"},
			}}
		}
	}

	gateRes := g.gate.Check(prior)
	if !gateRes.CanProceed {
		return nil, &GateRejectionError{Result: gateRes}
	}

	week := g.buildWeek(tmpl, custom, next, gateRes, prior)
	custom.GeneratedWeeks = append(custom.GeneratedWeeks, week)
	g.advanceFramework(custom, next)

	return &custom.GeneratedWeeks[len(custom.GeneratedWeeks)-1], nil
}

// MaterializeWeek details a framework week on first access (full_plan mode).
// Re-accessing an already-detailed week returns the stored result unchanged;
// it is never regenerated. Weeks must be detailed sequentially.
func (g *Generator) MaterializeWeek(custom *domain.CustomizedTemplate, weekNumber int, prior *domain.WeekCompletionAnalysis) (*domain.TrainingWeek, error) {
	if existing := custom.WeekByNumber(weekNumber); existing != nil {
		return existing, nil
	}

	tmpl, ok := g.repo.Get(custom.TemplateID)
	if !ok {
		return nil, ErrUnknownTemplate
	}
	if weekNumber < 1 || weekNumber > tmpl.DurationWeeks {
		return nil, ErrWeekOutOfRange
	}
	if weekNumber != custom.NextWeekNumber() {
		return nil, ErrNonSequentialWeek
	}

	return g.GenerateNextWeek(custom, prior)
}

// advanceFramework moves the framework placeholders forward after week n is
// generated: week n becomes detailed and accessible. Detail levels only ever
// move forward.
func (g *Generator) advanceFramework(custom *domain.CustomizedTemplate, n int) {
	for i := range custom.FrameworkWeeks {
		fw := &custom.FrameworkWeeks[i]
		if fw.WeekNumber == n {
			if fw.DetailLevel == domain.DetailFramework {
				fw.DetailLevel = domain.DetailDetailed
			}
			fw.CanAccess = true
		}
	}
}

// UnlockWeek marks framework week n accessible after its predecessor's
// analysis passed the gate, and marks finished weeks completed.
func (g *Generator) UnlockWeek(custom *domain.CustomizedTemplate, n int) {
	for i := range custom.FrameworkWeeks {
		fw := &custom.FrameworkWeeks[i]
		if fw.WeekNumber == n {
			fw.CanAccess = true
		}
		if week := custom.WeekByNumber(fw.WeekNumber); week != nil && week.Completed && fw.DetailLevel == domain.DetailDetailed {
			fw.DetailLevel = domain.DetailCompleted
		}
	}
}

// buildWeek assembles the concrete training week: structure deltas plus any
// progression rules that fire, substitutions applied, durations and rests
// scaled to the user's time commitment.
func (g *Generator) buildWeek(tmpl *domain.TrainingTemplate, custom *domain.CustomizedTemplate, weekNumber int, gateRes domain.GateResult, prior *domain.WeekCompletionAnalysis) domain.TrainingWeek {
	ws := tmpl.Weeks[weekNumber-1]

	volumeAdj := ws.VolumeDeltaPct
	intensityAdj := ws.IntensityDeltaPct

	// Progression rules fire in declaration order; their effects are
	// additive percentage deltas, summed, never compounded.
	env := ConditionEnv{WeekNumber: weekNumber, Analysis: prior}
	for _, pr := range g.repo.rulesFor(tmpl.ID) {
		switch pr.rule.Trigger {
		case domain.TriggerWeekly:
			if pr.cond.Evaluate(ConditionEnv{WeekNumber: weekNumber}) {
				volumeAdj += pr.rule.Adjust.VolumePct
				intensityAdj += pr.rule.Adjust.IntensityPct
			}
		case domain.TriggerPerformanceBased:
			if prior != nil && pr.cond.Evaluate(env) {
				volumeAdj += pr.rule.Adjust.VolumePct
				intensityAdj += pr.rule.Adjust.IntensityPct
			}
		}
	}

	// Warning-band verdicts hold volume flat at the current week's level,
	// regardless of what the rules would otherwise add.
	if gateRes.HoldVolume {
		if cur := custom.CurrentWeek(); cur != nil {
			volumeAdj = cur.VolumeAdjustmentPct
		} else {
			volumeAdj = 0
		}
	}

	bucket, hasBucket := tmpl.Adaptations.TimeBuckets[custom.TimeCommitment]

	workouts := make([]domain.TrainingWorkout, 0, len(ws.Workouts))
	for _, wt := range ws.Workouts {
		exercises := make([]domain.WorkoutExercise, 0, len(wt.Exercises))
		for _, p := range wt.Exercises {
			sets, reps, rest := p.Sets, p.Reps, float64(p.RestSeconds)
			if hasBucket {
				sets = atLeast(int(math.Round(float64(p.Sets)*bucket.SetScale)), 1)
				reps = atLeast(int(math.Round(float64(p.Reps)*bucket.RepScale)), 1)
				rest *= bucket.RestScale
			}
			rest *= custom.TimeModifications.RestScale

			exercises = append(exercises, domain.WorkoutExercise{
				ExerciseID:  custom.SubstituteExercise(p.ExerciseID),
				Sets:        sets,
				Reps:        reps,
				RestSeconds: int(math.Round(rest)),
			})
		}

		workouts = append(workouts, domain.TrainingWorkout{
			Name:            wt.Name,
			Type:            wt.Type,
			Day:             wt.Day,
			DurationMinutes: atLeast(int(math.Round(float64(wt.DurationMinutes)*custom.TimeModifications.DurationScale)), 1),
			Intensity:       wt.Intensity,
			Exercises:       exercises,
			IsKeyWorkout:    wt.IsKeyWorkout,
		})
	}

	return domain.TrainingWeek{
		WeekNumber:             weekNumber,
		Theme:                  ws.Theme,
		Phase:                  ws.Phase,
		Workouts:               workouts,
		VolumeAdjustmentPct:    volumeAdj,
		IntensityAdjustmentPct: intensityAdj,
		GeneratedAt:            time.Now().UTC(),
	}
}

func atLeast(n, minimum int) int {
	if n < minimum {
		return minimum
	}
	return n
}
