package engine

import (
	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/domain"
)

// Scoring weights for template selection.
const (
	scoreFitnessLevel = 30
	scoreGoal         = 25
	scoreActivity     = 20
	scoreTime         = 15
	scoreEquipment    = 10
)

// activityCategories maps a profile's activity category to the template
// categories it is compatible with. This table is fixed product behavior.
var activityCategories = map[domain.ActivityCategory][]string{
	domain.ActivityGym:     {"gym", "strength"},
	domain.ActivityHome:    {"home", "bodyweight", "strength"},
	domain.ActivityOutdoor: {"outdoor", "cardio"},
	domain.ActivityGeneral: {"strength", "cardio", "bodyweight", "home", "gym"},
}

// Selector filters and scores templates against a user profile.
type Selector struct {
	repo *TemplateRepository
	cat  catalog.Catalog
}

// NewSelector creates a selector over an explicit template repository.
func NewSelector(repo *TemplateRepository, cat catalog.Catalog) *Selector {
	return &Selector{repo: repo, cat: cat}
}

// Select returns the best-matching template for the profile with its score.
// When no template passes the compatibility filter it returns a
// NoTemplateError; the caller must surface that, never silently default.
//
// Ties are broken by template declaration order: the first-registered
// template wins. This is documented behavior, not incidental.
func (s *Selector) Select(profile domain.UserProfile) (*domain.TrainingTemplate, int, error) {
	var (
		best      *domain.TrainingTemplate
		bestScore = -1
	)

	for i := range s.repo.templates {
		tmpl := &s.repo.templates[i]
		if !s.compatible(tmpl, profile) {
			continue
		}
		score := s.Score(tmpl, profile)
		if score > bestScore { // strictly greater keeps the earliest on ties
			best = tmpl
			bestScore = score
		}
	}

	if best == nil {
		return nil, 0, &NoTemplateError{Profile: profile}
	}
	return best, bestScore, nil
}

// compatible applies the hard filter: every constraint must hold.
func (s *Selector) compatible(tmpl *domain.TrainingTemplate, profile domain.UserProfile) bool {
	if !tmpl.SupportsLevel(profile.FitnessLevel) {
		return false
	}
	if !tmpl.SupportsGoal(profile.PrimaryGoal) {
		return false
	}
	if !activityMatches(profile.ActivityCategory, tmpl.Category) {
		return false
	}
	if !tmpl.SupportsTimeCommitment(profile.TimeCommitment) {
		return false
	}
	if !tmpl.SupportsWeeklyFrequency(profile.WeeklyFrequency) {
		return false
	}
	return equipmentOptionSatisfied(tmpl, profile)
}

// Score computes the fit score for a template independent of the filter, so
// each matched constraint contributes its weight. Adding a constraint match
// strictly increases the score; removing one strictly decreases it.
func (s *Selector) Score(tmpl *domain.TrainingTemplate, profile domain.UserProfile) int {
	score := 0
	if tmpl.SupportsLevel(profile.FitnessLevel) {
		score += scoreFitnessLevel
	}
	if tmpl.SupportsGoal(profile.PrimaryGoal) {
		score += scoreGoal
	}
	if activityMatches(profile.ActivityCategory, tmpl.Category) {
		score += scoreActivity
	}
	if tmpl.SupportsTimeCommitment(profile.TimeCommitment) {
		score += scoreTime
	}
	if s.equipmentExercised(tmpl, profile) {
		score += scoreEquipment
	}
	return score
}

func activityMatches(activity domain.ActivityCategory, templateCategory string) bool {
	for _, cat := range activityCategories[activity] {
		if cat == templateCategory {
			return true
		}
	}
	return false
}

func equipmentOptionSatisfied(tmpl *domain.TrainingTemplate, profile domain.UserProfile) bool {
	for _, option := range tmpl.EquipmentOptions {
		if profile.SatisfiesEquipmentSet(option) {
			return true
		}
	}
	return false
}

// equipmentExercised reports whether the user's equipment is actually used by
// the template's exercises, not just nominally compatible: at least one
// referenced exercise must require a piece of equipment the user owns.
func (s *Selector) equipmentExercised(tmpl *domain.TrainingTemplate, profile domain.UserProfile) bool {
	if len(profile.Equipment) == 0 {
		return false
	}
	for _, id := range tmpl.ReferencedExerciseIDs() {
		ex, err := s.cat.Get(id)
		if err != nil {
			continue
		}
		for _, tag := range ex.Equipment {
			if profile.HasEquipment(tag) {
				return true
			}
		}
	}
	return false
}
