package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerationMode controls how weeks are produced for a program.
type GenerationMode string

const (
	// ModeProgressive keeps exactly one training week ahead of the user.
	ModeProgressive GenerationMode = "progressive"
	// ModeFullPlan creates all weeks as framework placeholders immediately;
	// each is detailed on first (gated) access.
	ModeFullPlan GenerationMode = "full_plan"
)

// TimeModifications holds the scale factors derived from the user's target
// session duration. Rest periods are never stretched more than the configured
// cap even when the duration scale is larger.
type TimeModifications struct {
	DurationScale float64 `bson:"durationScale" json:"durationScale"`
	RestScale     float64 `bson:"restScale" json:"restScale"`
}

// CustomizedTemplate is a training template bound to one user: the template
// plus per-user substitutions, intensity adjustments, time scaling, and the
// weeks materialized so far. Created once per user-program pair; mutated only
// by appending newly generated weeks (prior weeks are never rewritten).
//
// Single-writer: only the owning user's generation flow appends to it, and
// the caller must serialize concurrent generation requests per program.
type CustomizedTemplate struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	TemplateID string             `bson:"templateId" json:"templateId"`
	Goal       Goal               `bson:"goal" json:"goal"`
	Mode       GenerationMode     `bson:"mode" json:"mode"`
	// TimeCommitment echoes the profile's target session minutes at
	// customization time; the generator uses it to pick the template's
	// time-bucket scaling.
	TimeCommitment int `bson:"timeCommitment" json:"timeCommitment"`

	// ExerciseSubstitutions maps template exercise id -> substituted catalog
	// exercise id. Every value must exist in the catalog and satisfy the
	// user's equipment set.
	ExerciseSubstitutions map[string]string `bson:"exerciseSubstitutions" json:"exerciseSubstitutions"`
	// IntensityAdjustments holds named multipliers; "global" is the one the
	// customizer derives from age and fitness level.
	IntensityAdjustments map[string]float64 `bson:"intensityAdjustments" json:"intensityAdjustments"`
	TimeModifications    TimeModifications  `bson:"timeModifications" json:"timeModifications"`

	// GeneratedWeeks is append-only and monotonically increasing in
	// weekNumber: no gaps, no duplicates.
	GeneratedWeeks []TrainingWeek `bson:"generatedWeeks" json:"generatedWeeks"`
	// FrameworkWeeks is populated only in full_plan mode.
	FrameworkWeeks []FrameworkWeek `bson:"frameworkWeeks,omitempty" json:"frameworkWeeks,omitempty"`

	// Warnings accumulates non-fatal customization issues, e.g. exercises
	// with no viable substitution.
	Warnings []string `bson:"warnings,omitempty" json:"warnings,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NextWeekNumber is the week number the next successful generation must carry.
func (c *CustomizedTemplate) NextWeekNumber() int {
	return len(c.GeneratedWeeks) + 1
}

// CurrentWeek returns the most recently generated week, or nil if none.
func (c *CustomizedTemplate) CurrentWeek() *TrainingWeek {
	if len(c.GeneratedWeeks) == 0 {
		return nil
	}
	return &c.GeneratedWeeks[len(c.GeneratedWeeks)-1]
}

// WeekByNumber returns the generated week with the given number, or nil.
func (c *CustomizedTemplate) WeekByNumber(n int) *TrainingWeek {
	for i := range c.GeneratedWeeks {
		if c.GeneratedWeeks[i].WeekNumber == n {
			return &c.GeneratedWeeks[i]
		}
	}
	return nil
}

// SubstituteExercise resolves an exercise id through the substitution map.
func (c *CustomizedTemplate) SubstituteExercise(id string) string {
	if sub, ok := c.ExerciseSubstitutions[id]; ok {
		return sub
	}
	return id
}
