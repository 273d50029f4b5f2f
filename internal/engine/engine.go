// Package engine implements the adaptive training progression core: template
// selection and customization, progressive week generation, prerequisite
// gating, completion analysis and coaching insights.
//
// Every operation is a synchronous, pure computation over in-memory values.
// The engine holds no locks: callers must keep at most one outstanding
// generation per (user, program) pair, e.g. via an external lock keyed by
// program id.
package engine

import (
	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Engine bundles the progression components behind the four operations the
// surrounding application consumes.
type Engine struct {
	templates  *TemplateRepository
	cat        catalog.Catalog
	policy     Policy
	selector   *Selector
	customizer *Customizer
	generator  *Generator
	gate       *Gate
	analyzer   *Analyzer
	insights   *InsightGenerator
}

// New wires an engine over an explicit template repository and catalog.
func New(templates *TemplateRepository, cat catalog.Catalog, policy Policy) *Engine {
	gate := NewGate(policy)
	return &Engine{
		templates:  templates,
		cat:        cat,
		policy:     policy,
		selector:   NewSelector(templates, cat),
		customizer: NewCustomizer(cat, policy),
		generator:  NewGenerator(templates, gate, policy),
		gate:       gate,
		analyzer:   NewAnalyzer(policy),
		insights:   NewInsightGenerator(policy),
	}
}

// Templates exposes the read-only template repository.
func (e *Engine) Templates() *TemplateRepository {
	return e.templates
}

// SelectAndCustomize picks the best-matching template for the profile and
// binds it to the user. In full_plan mode the framework placeholders are
// populated immediately. Returns a NoTemplateError when nothing matches.
func (e *Engine) SelectAndCustomize(profile domain.UserProfile, userID primitive.ObjectID, mode domain.GenerationMode) (*domain.CustomizedTemplate, error) {
	tmpl, _, err := e.selector.Select(profile)
	if err != nil {
		return nil, err
	}

	custom := e.customizer.Customize(tmpl, profile, userID, mode)

	if mode == domain.ModeFullPlan {
		framework, err := e.generator.BuildFrameworkPlan(custom)
		if err != nil {
			return nil, err
		}
		custom.FrameworkWeeks = framework
	}

	return custom, nil
}

// GenerateNextWeek materializes the next week for the program, appending it
// to the customized template. A failed gate comes back as a
// *GateRejectionError the caller branches on.
func (e *Engine) GenerateNextWeek(custom *domain.CustomizedTemplate, prior *domain.WeekCompletionAnalysis) (*domain.TrainingWeek, error) {
	return e.generator.GenerateNextWeek(custom, prior)
}

// MaterializeWeek details a framework week on first access; idempotent.
func (e *Engine) MaterializeWeek(custom *domain.CustomizedTemplate, weekNumber int, prior *domain.WeekCompletionAnalysis) (*domain.TrainingWeek, error) {
	return e.generator.MaterializeWeek(custom, weekNumber, prior)
}

// AnalyzeWeek computes a fresh completion analysis for the week.
func (e *Engine) AnalyzeWeek(week *domain.TrainingWeek, previous *domain.WeekCompletionAnalysis) domain.WeekCompletionAnalysis {
	return e.analyzer.Analyze(week, previous)
}

// CheckPrerequisites runs the gate without generating anything.
func (e *Engine) CheckPrerequisites(prior *domain.WeekCompletionAnalysis) domain.GateResult {
	return e.gate.Check(prior)
}

// GenerateCoachingInsight maps the analysis and gate verdict onto one
// coaching message category and renders its templated, goal-aware message.
func (e *Engine) GenerateCoachingInsight(analysis domain.WeekCompletionAnalysis, gate domain.GateResult, goal domain.Goal, userID string) domain.CoachingInsight {
	return e.insights.Generate(analysis, gate, goal, userID)
}

// UnlockWeek marks framework week n accessible (full_plan mode bookkeeping).
func (e *Engine) UnlockWeek(custom *domain.CustomizedTemplate, n int) {
	e.generator.UnlockWeek(custom, n)
}
