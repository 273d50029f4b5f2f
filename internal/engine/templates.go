package engine

import (
	"fmt"

	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/domain"
)

// parsedRule pairs a template's progression rule with its pre-parsed
// condition so nothing is re-parsed at generation time.
type parsedRule struct {
	rule domain.ProgressionRule
	cond Condition
}

// TemplateRepository holds the validated, read-only set of training
// templates. It is constructed once at process start and passed explicitly
// to the selector and generator; there is no process-wide registry.
// Declaration order is preserved and is the documented selector tie-break.
type TemplateRepository struct {
	templates []domain.TrainingTemplate
	byID      map[string]int
	rules     map[string][]parsedRule
}

// NewTemplateRepository validates every template against the catalog and
// parses every rule condition. Any defect aborts construction with a
// MalformedTemplateError; templates are never partially loaded.
func NewTemplateRepository(templates []domain.TrainingTemplate, cat catalog.Catalog) (*TemplateRepository, error) {
	repo := &TemplateRepository{
		templates: make([]domain.TrainingTemplate, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
		rules:     make(map[string][]parsedRule, len(templates)),
	}

	for _, tmpl := range templates {
		if err := validateTemplate(&tmpl, cat); err != nil {
			return nil, err
		}

		parsed := make([]parsedRule, 0, len(tmpl.ProgressionRules))
		for _, rule := range tmpl.ProgressionRules {
			cond, err := ParseCondition(rule.Condition)
			if err != nil {
				return nil, &MalformedTemplateError{TemplateID: tmpl.ID, Reason: err.Error()}
			}
			if rule.Trigger == domain.TriggerWeekly && cond.RequiresAnalysis() {
				return nil, &MalformedTemplateError{
					TemplateID: tmpl.ID,
					Reason:     fmt.Sprintf("weekly rule condition %q references performance data", rule.Condition),
				}
			}
			parsed = append(parsed, parsedRule{rule: rule, cond: cond})
		}

		if _, dup := repo.byID[tmpl.ID]; dup {
			return nil, &MalformedTemplateError{TemplateID: tmpl.ID, Reason: "duplicate template id"}
		}
		repo.byID[tmpl.ID] = len(repo.templates)
		repo.templates = append(repo.templates, tmpl)
		repo.rules[tmpl.ID] = parsed
	}

	return repo, nil
}

func validateTemplate(tmpl *domain.TrainingTemplate, cat catalog.Catalog) error {
	malformed := func(format string, args ...interface{}) error {
		return &MalformedTemplateError{TemplateID: tmpl.ID, Reason: fmt.Sprintf(format, args...)}
	}

	if tmpl.ID == "" {
		return malformed("missing template id")
	}
	if len(tmpl.FitnessLevels) == 0 {
		return malformed("no compatible fitness levels declared")
	}
	if len(tmpl.Goals) == 0 {
		return malformed("no compatible goals declared")
	}
	if len(tmpl.TimeCommitments) == 0 {
		return malformed("no supported time commitments declared")
	}
	if len(tmpl.EquipmentOptions) == 0 {
		return malformed("no equipment option-sets declared")
	}
	if tmpl.DurationWeeks <= 0 {
		return malformed("duration_weeks must be positive")
	}
	if len(tmpl.Weeks) != tmpl.DurationWeeks {
		return malformed("declares %d weeks but duration_weeks is %d", len(tmpl.Weeks), tmpl.DurationWeeks)
	}

	for i, week := range tmpl.Weeks {
		if week.WeekNumber != i+1 {
			return malformed("week structures must be numbered 1..%d in order", tmpl.DurationWeeks)
		}
		if len(week.Workouts) == 0 {
			return malformed("week %d has no workouts", week.WeekNumber)
		}
	}

	for _, id := range tmpl.ReferencedExerciseIDs() {
		if !cat.Has(id) {
			return malformed("references exercise %q absent from catalog", id)
		}
	}
	for from, to := range tmpl.Adaptations.EquipmentSubstitutions {
		if !cat.Has(from) || !cat.Has(to) {
			return malformed("equipment substitution %q -> %q references an unknown exercise", from, to)
		}
	}

	return nil
}

// All returns the templates in declaration order.
func (r *TemplateRepository) All() []domain.TrainingTemplate {
	return r.templates
}

// Get returns the template with the given id.
func (r *TemplateRepository) Get(id string) (*domain.TrainingTemplate, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &r.templates[idx], true
}

// rulesFor returns the pre-parsed progression rules for a template id.
func (r *TemplateRepository) rulesFor(id string) []parsedRule {
	return r.rules[id]
}
