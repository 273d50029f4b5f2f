package domain

// TriggerKind identifies when a progression rule is evaluated.
type TriggerKind string

const (
	// TriggerWeekly fires based on the week number alone.
	TriggerWeekly TriggerKind = "weekly"
	// TriggerPerformanceBased fires only when a prior week's completion
	// analysis is available and satisfies the rule condition.
	TriggerPerformanceBased TriggerKind = "performance_based"
)

// ProgressionRule adjusts volume/intensity for a generated week when its
// condition holds. Rules are data interpreted by the engine, not code; the
// Condition string (e.g. "completion_rate > 90%") is parsed and validated
// once at template load.
type ProgressionRule struct {
	Trigger   TriggerKind    `bson:"trigger" json:"trigger"`
	Condition string         `bson:"condition" json:"condition"`
	Adjust    RuleAdjustment `bson:"adjust" json:"adjust"`
}

// RuleAdjustment is an additive percentage delta applied to the week's base
// volume/intensity. Multiple qualifying rules sum; they do not compound.
type RuleAdjustment struct {
	VolumePct    float64 `bson:"volumePct" json:"volumePct"`
	IntensityPct float64 `bson:"intensityPct" json:"intensityPct"`
}

// AgeBracketRule scales intensity for users in an (inclusive) age range.
type AgeBracketRule struct {
	MinAge              int     `bson:"minAge" json:"minAge"`
	MaxAge              int     `bson:"maxAge" json:"maxAge"`
	IntensityMultiplier float64 `bson:"intensityMultiplier" json:"intensityMultiplier"`
}

// TimeBucketScaling holds set/rep/rest multipliers for a session-duration bucket.
type TimeBucketScaling struct {
	SetScale  float64 `bson:"setScale" json:"setScale"`
	RepScale  float64 `bson:"repScale" json:"repScale"`
	RestScale float64 `bson:"restScale" json:"restScale"`
}

// AdaptationTable collects the per-template customization rules applied by
// the customizer: age brackets, equipment substitution hints and
// per-time-bucket scaling.
type AdaptationTable struct {
	AgeBrackets            []AgeBracketRule          `bson:"ageBrackets" json:"ageBrackets"`
	EquipmentSubstitutions map[string]string         `bson:"equipmentSubstitutions" json:"equipmentSubstitutions"`
	TimeBuckets            map[int]TimeBucketScaling `bson:"timeBuckets" json:"timeBuckets"`
}

// ExercisePrescription is one exercise slot with its base set/rep/rest
// prescription. The time-bucket multipliers in the adaptation table scale
// these at generation time.
type ExercisePrescription struct {
	ExerciseID  string `bson:"exerciseId" json:"exerciseId"`
	Sets        int    `bson:"sets" json:"sets"`
	Reps        int    `bson:"reps" json:"reps"`
	RestSeconds int    `bson:"restSeconds" json:"restSeconds"`
}

// WorkoutTemplate is a single workout slot inside a week structure.
type WorkoutTemplate struct {
	Name            string                 `bson:"name" json:"name"`
	Type            string                 `bson:"type" json:"type"` // e.g. "strength", "cardio", "mobility"
	Day             int                    `bson:"day" json:"day"`   // planned day of week, 1 (Mon) - 7 (Sun)
	DurationMinutes int                    `bson:"durationMinutes" json:"durationMinutes"`
	Intensity       IntensityClass         `bson:"intensity" json:"intensity"`
	Exercises       []ExercisePrescription `bson:"exercises" json:"exercises"`
	IsKeyWorkout    bool                   `bson:"isKeyWorkout" json:"isKeyWorkout"`
}

// WeekStructure describes one week of a template relative to week 1.
type WeekStructure struct {
	WeekNumber int               `bson:"weekNumber" json:"weekNumber"`
	Theme      string            `bson:"theme" json:"theme"`
	Phase      string            `bson:"phase" json:"phase"` // e.g. "foundation", "build", "peak", "deload"
	Workouts   []WorkoutTemplate `bson:"workouts" json:"workouts"`
	// RestDays lists days of week (1-7) with no scheduled workout.
	RestDays []int `bson:"restDays" json:"restDays"`
	// Volume/intensity deltas are additive percentages relative to week 1.
	VolumeDeltaPct    float64 `bson:"volumeDeltaPct" json:"volumeDeltaPct"`
	IntensityDeltaPct float64 `bson:"intensityDeltaPct" json:"intensityDeltaPct"`
}

// TrainingTemplate is a reusable, parameterized multi-week training blueprint.
// Templates are read-only reference data loaded once at process start.
type TrainingTemplate struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Category    string `bson:"category" json:"category"`
	Subcategory string `bson:"subcategory,omitempty" json:"subcategory,omitempty"`

	FitnessLevels []FitnessLevel `bson:"fitnessLevels" json:"fitnessLevels"`
	Goals         []Goal         `bson:"goals" json:"goals"`
	// EquipmentOptions is a list of equipment sets; the user must satisfy at
	// least one full set. An empty set means bodyweight-only is supported.
	EquipmentOptions  [][]string `bson:"equipmentOptions" json:"equipmentOptions"`
	TimeCommitments   []int      `bson:"timeCommitments" json:"timeCommitments"`
	WeeklyFrequencies []string   `bson:"weeklyFrequencies" json:"weeklyFrequencies"`

	DurationWeeks    int               `bson:"durationWeeks" json:"durationWeeks"`
	Weeks            []WeekStructure   `bson:"weeks" json:"weeks"`
	ProgressionRules []ProgressionRule `bson:"progressionRules" json:"progressionRules"`
	Adaptations      AdaptationTable   `bson:"adaptations" json:"adaptations"`
}

// SupportsLevel reports whether the template is compatible with the level.
func (t *TrainingTemplate) SupportsLevel(level FitnessLevel) bool {
	for _, l := range t.FitnessLevels {
		if l == level {
			return true
		}
	}
	return false
}

// SupportsGoal reports whether the template is compatible with the goal.
func (t *TrainingTemplate) SupportsGoal(goal Goal) bool {
	for _, g := range t.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// SupportsTimeCommitment reports whether the session duration is supported.
func (t *TrainingTemplate) SupportsTimeCommitment(minutes int) bool {
	for _, m := range t.TimeCommitments {
		if m == minutes {
			return true
		}
	}
	return false
}

// SupportsWeeklyFrequency reports whether the frequency range is supported.
func (t *TrainingTemplate) SupportsWeeklyFrequency(freq string) bool {
	for _, f := range t.WeeklyFrequencies {
		if f == freq {
			return true
		}
	}
	return false
}

// ReferencedExerciseIDs returns every exercise id referenced anywhere in the
// template's week structures, de-duplicated, in first-appearance order.
func (t *TrainingTemplate) ReferencedExerciseIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, week := range t.Weeks {
		for _, w := range week.Workouts {
			for _, p := range w.Exercises {
				if !seen[p.ExerciseID] {
					seen[p.ExerciseID] = true
					ids = append(ids, p.ExerciseID)
				}
			}
		}
	}
	return ids
}
