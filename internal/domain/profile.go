package domain

import "errors"

// FitnessLevel describes the user's self-reported training experience.
type FitnessLevel string

const (
	LevelBeginner       FitnessLevel = "beginner"
	LevelSomeExperience FitnessLevel = "some_experience"
	LevelAdvanced       FitnessLevel = "advanced"
)

// Goal is the user's primary training goal.
type Goal string

const (
	GoalFitness     Goal = "fitness" // general fitness / health
	GoalStrength    Goal = "strength"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalFatLoss     Goal = "fat_loss"
	GoalEndurance   Goal = "endurance"
	GoalMobility    Goal = "mobility"
)

// ActivityCategory is the kind of training environment/activity the user prefers.
type ActivityCategory string

const (
	ActivityGym      ActivityCategory = "gym"
	ActivityHome     ActivityCategory = "home"
	ActivityOutdoor  ActivityCategory = "outdoor"
	ActivityGeneral  ActivityCategory = "general"
)

// UserProfile is the immutable per-generation input describing the user.
// It is owned by the caller; the engine never mutates it.
type UserProfile struct {
	FitnessLevel     FitnessLevel     `bson:"fitnessLevel" json:"fitnessLevel"`
	PrimaryGoal      Goal             `bson:"primaryGoal" json:"primaryGoal"`
	ActivityCategory ActivityCategory `bson:"activityCategory" json:"activityCategory"`
	// TimeCommitment is the target session duration in minutes (one of a fixed set,
	// e.g. 20/30/45/60).
	TimeCommitment  int      `bson:"timeCommitment" json:"timeCommitment"`
	// WeeklyFrequency is a string range, e.g. "3-4".
	WeeklyFrequency string   `bson:"weeklyFrequency" json:"weeklyFrequency"`
	Equipment       []string `bson:"equipment" json:"equipment"`
	Age             int      `bson:"age" json:"age"`
}

// Validate checks the enum fields and numeric ranges before the profile is
// persisted or handed to the engine.
func (p *UserProfile) Validate() error {
	switch p.FitnessLevel {
	case LevelBeginner, LevelSomeExperience, LevelAdvanced:
	default:
		return errors.New("invalid fitness level")
	}
	switch p.PrimaryGoal {
	case GoalFitness, GoalStrength, GoalMuscleGain, GoalFatLoss, GoalEndurance, GoalMobility:
	default:
		return errors.New("invalid primary goal")
	}
	switch p.ActivityCategory {
	case ActivityGym, ActivityHome, ActivityOutdoor, ActivityGeneral:
	default:
		return errors.New("invalid activity category")
	}
	if p.TimeCommitment <= 0 {
		return errors.New("time commitment must be positive")
	}
	if p.Age < 0 {
		return errors.New("age must not be negative")
	}
	return nil
}

// HasEquipment reports whether the user has the given equipment tag available.
func (p UserProfile) HasEquipment(tag string) bool {
	for _, e := range p.Equipment {
		if e == tag {
			return true
		}
	}
	return false
}

// SatisfiesEquipmentSet reports whether every tag in the set is available to
// the user. The empty set is trivially satisfied (bodyweight-only option).
func (p UserProfile) SatisfiesEquipmentSet(set []string) bool {
	for _, tag := range set {
		if !p.HasEquipment(tag) {
			return false
		}
	}
	return true
}
