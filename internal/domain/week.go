package domain

import "time"

// DetailLevel tracks how far a week has been materialized. Transitions only
// move forward: framework -> detailed -> completed, never backward.
type DetailLevel string

const (
	DetailFramework DetailLevel = "framework"
	DetailDetailed  DetailLevel = "detailed"
	DetailCompleted DetailLevel = "completed"
)

// IntensityClass buckets a workout's overall intensity.
type IntensityClass string

const (
	IntensityLow      IntensityClass = "low"
	IntensityModerate IntensityClass = "moderate"
	IntensityHigh     IntensityClass = "high"
)

// FrameworkWeek is a cheap, high-level week placeholder used in full-plan
// generation mode until the week is detailed. Only theme/phase/workout-type
// summary are computed up front.
type FrameworkWeek struct {
	WeekNumber     int         `bson:"weekNumber" json:"weekNumber"`
	Theme          string      `bson:"theme" json:"theme"`
	Phase          string      `bson:"phase" json:"phase"`
	WorkoutTypes   []string    `bson:"workoutTypes" json:"workoutTypes"`
	EstimatedHours float64     `bson:"estimatedHours" json:"estimatedHours"`
	DetailLevel    DetailLevel `bson:"detailLevel" json:"detailLevel"`
	// CanAccess is set by the prerequisite gate; week N+1 becomes accessible
	// only after week N's analysis passes.
	CanAccess bool `bson:"canAccess" json:"canAccess"`
}

// WorkoutFeedback is optional per-workout user feedback.
type WorkoutFeedback struct {
	Difficulty int `bson:"difficulty" json:"difficulty"` // 1-5
	Enjoyment  int `bson:"enjoyment" json:"enjoyment"`   // 1-5
	RPE        int `bson:"rpe" json:"rpe"`               // 1-10
}

// WorkoutExercise is a concrete exercise inside a generated workout, with
// the scaled set/rep/rest numbers the user should actually perform.
type WorkoutExercise struct {
	ExerciseID  string `bson:"exerciseId" json:"exerciseId"`
	Sets        int    `bson:"sets" json:"sets"`
	Reps        int    `bson:"reps" json:"reps"`
	RestSeconds int    `bson:"restSeconds" json:"restSeconds"`
}

// TrainingWorkout is a concrete, assignable-to-a-day workout inside a
// generated training week.
type TrainingWorkout struct {
	Name            string            `bson:"name" json:"name"`
	Type            string            `bson:"type" json:"type"`
	Day             int               `bson:"day" json:"day"` // planned day of week, 1-7
	DurationMinutes int               `bson:"durationMinutes" json:"durationMinutes"`
	Intensity       IntensityClass    `bson:"intensity" json:"intensity"`
	Exercises       []WorkoutExercise `bson:"exercises" json:"exercises"`
	IsKeyWorkout    bool              `bson:"isKeyWorkout" json:"isKeyWorkout"`

	Completed  bool   `bson:"completed" json:"completed"`
	Skipped    bool   `bson:"skipped" json:"skipped"`
	SkipReason string `bson:"skipReason,omitempty" json:"skipReason,omitempty"`
	// CompletedDay is the actual day of week (1-7) the workout was done on;
	// 0 when unknown. Used by the consistency heuristic.
	CompletedDay int              `bson:"completedDay,omitempty" json:"completedDay,omitempty"`
	Feedback     *WorkoutFeedback `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// TrainingWeek is a fully detailed week of concrete workouts. A week is
// complete once every workout is either completed or explicitly skipped; it
// is never deleted, only marked complete.
type TrainingWeek struct {
	WeekNumber int               `bson:"weekNumber" json:"weekNumber"`
	Theme      string            `bson:"theme" json:"theme"`
	Phase      string            `bson:"phase" json:"phase"`
	Workouts   []TrainingWorkout `bson:"workouts" json:"workouts"`
	// Net adjustments applied at generation (week-structure deltas plus any
	// progression rules that fired), relative to the customized base.
	VolumeAdjustmentPct    float64   `bson:"volumeAdjustmentPct" json:"volumeAdjustmentPct"`
	IntensityAdjustmentPct float64   `bson:"intensityAdjustmentPct" json:"intensityAdjustmentPct"`
	GeneratedAt            time.Time `bson:"generatedAt" json:"generatedAt"`
	Completed              bool      `bson:"completed" json:"completed"`
	// Abandoned marks a week the user explicitly gave up on; it unblocks
	// progressive-mode generation of the following week.
	Abandoned bool `bson:"abandoned,omitempty" json:"abandoned,omitempty"`
}

// IsFinished reports whether every workout is completed or explicitly skipped.
func (w *TrainingWeek) IsFinished() bool {
	if len(w.Workouts) == 0 {
		return false
	}
	for _, workout := range w.Workouts {
		if !workout.Completed && !workout.Skipped {
			return false
		}
	}
	return true
}
