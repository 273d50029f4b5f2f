package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PatternLabel classifies a week's adherence pattern. Labels come from a
// fixed vocabulary; "concerning" overrides the others when any workout shows
// very high RPE with very low rating.
type PatternLabel string

const (
	PatternImproving    PatternLabel = "improving"
	PatternDeclining    PatternLabel = "declining"
	PatternStable       PatternLabel = "stable"
	PatternInconsistent PatternLabel = "inconsistent"
	PatternConcerning   PatternLabel = "concerning"
)

// WorkoutCompletion is the persisted record of one workout's outcome, written
// by the surrounding application as the user trains. The analyzer folds these
// into a TrainingWeek before computing an analysis.
type WorkoutCompletion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	ProgramID   primitive.ObjectID `bson:"programId" json:"programId"`
	WeekNumber  int                `bson:"weekNumber" json:"weekNumber"`
	WorkoutName string             `bson:"workoutName" json:"workoutName"`

	Completed       bool   `bson:"completed" json:"completed"`
	Skipped         bool   `bson:"skipped" json:"skipped"`
	SkipReason      string `bson:"skipReason,omitempty" json:"skipReason,omitempty"`
	RPE             int    `bson:"rpe,omitempty" json:"rpe,omitempty"`       // 1-10
	Rating          int    `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5
	DurationMinutes int    `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	// DayOfWeek is the actual day (1-7) the workout happened on; 0 if unknown.
	DayOfWeek int `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"`

	// MediaUploadID optionally links a form-check video upload.
	MediaUploadID *primitive.ObjectID `bson:"mediaUploadId,omitempty" json:"mediaUploadId,omitempty"`

	RecordedAt time.Time `bson:"recordedAt" json:"recordedAt"`
}

// WeekCompletionAnalysis summarizes a finished week's workout completions.
// It is derived and ephemeral: computed fresh from a TrainingWeek each time
// it is requested, never persisted independently.
type WeekCompletionAnalysis struct {
	WeekNumber        int     `json:"weekNumber"`
	TotalWorkouts     int     `json:"totalWorkouts"`
	CompletedWorkouts int     `json:"completedWorkouts"`
	SkippedWorkouts   int     `json:"skippedWorkouts"`
	CompletionRate    float64 `json:"completionRate"` // 0..1

	KeyWorkoutsCompleted []string `json:"keyWorkoutsCompleted"`
	// KeyWorkoutsMissed lists key workouts neither completed nor explicitly
	// skipped with a reason. Any entry here is a gate blocker.
	KeyWorkoutsMissed []string `json:"keyWorkoutsMissed"`

	ConsistencyScore int            `json:"consistencyScore"` // 0-100
	AverageRPE       float64        `json:"averageRpe"`
	AverageRating    float64        `json:"averageRating"`
	Patterns         []PatternLabel `json:"patterns"`
}

// HasPattern reports whether the analysis carries the given label.
func (a *WeekCompletionAnalysis) HasPattern(label PatternLabel) bool {
	for _, p := range a.Patterns {
		if p == label {
			return true
		}
	}
	return false
}

// GateResult is the prerequisite gate's verdict on whether the next week may
// be generated or unlocked. When CanProceed is false callers must not invoke
// the week generator.
type GateResult struct {
	CanProceed     bool     `json:"canProceed"`
	CompletionRate float64  `json:"completionRate"`
	MissingWorkouts []string `json:"missingWorkouts"`
	Warnings       []string `json:"warnings"`
	Blockers       []string `json:"blockers"`
	// HoldVolume instructs the generator to keep volume flat for the next
	// week (warning band) regardless of progression rules.
	HoldVolume      bool   `json:"holdVolume"`
	CoachingMessage string `json:"coachingMessage,omitempty"`
}
