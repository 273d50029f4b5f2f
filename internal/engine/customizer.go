package engine

import (
	"fmt"

	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Intensity adjustment rule constants. See deriveGlobalIntensity for the
// precedence chain they participate in.
const (
	seniorIntensity       = 0.8 // age >= 60
	matureIntensity       = 0.9 // age 50-59
	youngAdvancedIntensity = 1.1 // age <= 25 and advanced
	beginnerIntensityCap  = 0.8
	advancedIntensityFloor = 1.1

	easedMaxDifficulty = 3 // age-based easing targets difficulty <= 3
	hardDifficulty     = 4 // exercises at or above this get eased for age >= 50
	easingAge          = 50
)

// Customizer produces per-user customizations of a template. Customize is a
// pure function of its inputs: it touches no storage and has no side effects.
type Customizer struct {
	cat    catalog.Catalog
	policy Policy
}

// NewCustomizer creates a customizer over the given catalog.
func NewCustomizer(cat catalog.Catalog, policy Policy) *Customizer {
	return &Customizer{cat: cat, policy: policy}
}

// Customize binds a template to one user: exercise substitutions, the
// "global" intensity multiplier, and time-scaling factors. Timestamps and the
// document id are left for the persistence layer to fill in.
func (c *Customizer) Customize(tmpl *domain.TrainingTemplate, profile domain.UserProfile, userID primitive.ObjectID, mode domain.GenerationMode) *domain.CustomizedTemplate {
	custom := &domain.CustomizedTemplate{
		UserID:                userID,
		TemplateID:            tmpl.ID,
		Goal:                  profile.PrimaryGoal,
		Mode:                  mode,
		TimeCommitment:        profile.TimeCommitment,
		ExerciseSubstitutions: make(map[string]string),
		IntensityAdjustments:  make(map[string]float64),
	}

	c.substituteExercises(tmpl, profile, custom)
	custom.IntensityAdjustments["global"] = deriveGlobalIntensity(profile)
	if mult, ok := templateAgeMultiplier(tmpl, profile.Age); ok {
		custom.IntensityAdjustments["template_age"] = mult
	}
	custom.TimeModifications = c.deriveTimeModifications(tmpl, profile)

	return custom
}

// substituteExercises walks every exercise referenced by the template.
// Equipment need takes precedence: the equipment substitution is evaluated
// first, and the age-based easing second, on the possibly already substituted
// exercise id. When no candidate exists the original id stays and the issue
// is flagged as a warning; the customizer never invents an exercise.
func (c *Customizer) substituteExercises(tmpl *domain.TrainingTemplate, profile domain.UserProfile, custom *domain.CustomizedTemplate) {
	for _, originalID := range tmpl.ReferencedExerciseIDs() {
		currentID := originalID

		ex, err := c.cat.Get(currentID)
		if err != nil {
			// Load-time validation makes this unreachable for a well-formed
			// repository; flag rather than fail.
			custom.Warnings = append(custom.Warnings, fmt.Sprintf("exercise %q missing from catalog", currentID))
			continue
		}

		// 1. Equipment substitution: required when none of the exercise's
		// equipment is available to the user.
		if ex.RequiresEquipment() && !anyEquipmentAvailable(ex, profile) {
			if subID, ok := c.findEquipmentSubstitute(tmpl, ex, profile); ok {
				currentID = subID
				ex, _ = c.cat.Get(currentID)
			} else {
				custom.Warnings = append(custom.Warnings,
					fmt.Sprintf("no equipment-compatible substitution for %q", currentID))
			}
		}

		// 2. Age-based easing on the (possibly substituted) exercise.
		if profile.Age >= easingAge && ex.Difficulty >= hardDifficulty {
			if easedID, ok := c.findEasedSubstitute(ex, profile, currentID); ok {
				currentID = easedID
			} else {
				custom.Warnings = append(custom.Warnings,
					fmt.Sprintf("no lower-difficulty substitution for %q", currentID))
			}
		}

		if currentID != originalID {
			custom.ExerciseSubstitutions[originalID] = currentID
		}
	}
}

func anyEquipmentAvailable(ex catalog.Exercise, profile domain.UserProfile) bool {
	for _, tag := range ex.Equipment {
		if profile.HasEquipment(tag) {
			return true
		}
	}
	return false
}

// findEquipmentSubstitute looks for a same-category exercise the user can
// perform. The template's substitution hints are honored first when they
// satisfy the user's equipment; otherwise the catalog is searched in its
// stable order.
func (c *Customizer) findEquipmentSubstitute(tmpl *domain.TrainingTemplate, ex catalog.Exercise, profile domain.UserProfile) (string, bool) {
	if hint, ok := tmpl.Adaptations.EquipmentSubstitutions[ex.ID]; ok {
		if hinted, err := c.cat.Get(hint); err == nil && profile.SatisfiesEquipmentSet(hinted.Equipment) {
			return hint, true
		}
	}

	for _, candidate := range c.cat.FindCandidates(ex.Category, profile.Equipment, 0) {
		if candidate.ID != ex.ID {
			return candidate.ID, true
		}
	}
	return "", false
}

// findEasedSubstitute looks for a same-category exercise of difficulty <= 3
// that the user's equipment supports.
func (c *Customizer) findEasedSubstitute(ex catalog.Exercise, profile domain.UserProfile, currentID string) (string, bool) {
	for _, candidate := range c.cat.FindCandidates(ex.Category, profile.Equipment, easedMaxDifficulty) {
		if candidate.ID != currentID {
			return candidate.ID, true
		}
	}
	return "", false
}

// deriveGlobalIntensity applies the age/level rule chain. A later rule
// overrides an earlier one only when it is stricter. The beginner cap
// engages only when an earlier rule already produced an adjustment; a
// beginner with no age rule applied keeps the neutral 1.0.
func deriveGlobalIntensity(profile domain.UserProfile) float64 {
	global := 1.0
	adjusted := false

	switch {
	case profile.Age >= 60:
		global = seniorIntensity
		adjusted = true
	case profile.Age >= 50:
		global = matureIntensity
		adjusted = true
	}

	if profile.Age <= 25 && profile.FitnessLevel == domain.LevelAdvanced {
		global = youngAdvancedIntensity
		adjusted = true
	}

	if profile.FitnessLevel == domain.LevelBeginner && adjusted && global > beginnerIntensityCap {
		global = beginnerIntensityCap
	}
	if profile.FitnessLevel == domain.LevelAdvanced && global < advancedIntensityFloor {
		global = advancedIntensityFloor
	}

	return global
}

// templateAgeMultiplier consults the template's own age-bracket rules.
func templateAgeMultiplier(tmpl *domain.TrainingTemplate, age int) (float64, bool) {
	for _, bracket := range tmpl.Adaptations.AgeBrackets {
		if age >= bracket.MinAge && age <= bracket.MaxAge && bracket.IntensityMultiplier != 1.0 {
			return bracket.IntensityMultiplier, true
		}
	}
	return 0, false
}

// deriveTimeModifications scales session duration toward the user's target.
// The template's first declared time commitment is its reference duration.
// Rest periods never stretch past the policy cap even when the overall
// duration scale is larger.
func (c *Customizer) deriveTimeModifications(tmpl *domain.TrainingTemplate, profile domain.UserProfile) domain.TimeModifications {
	reference := tmpl.TimeCommitments[0]
	durationScale := float64(profile.TimeCommitment) / float64(reference)

	restScale := durationScale
	if restScale > c.policy.RestScaleCap {
		restScale = c.policy.RestScaleCap
	}

	return domain.TimeModifications{DurationScale: durationScale, RestScale: restScale}
}
