package repository

import (
	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound      = RepositoryError("not found")
	ErrUpdateFailed  = RepositoryError("update failed")
	ErrWeekConflict  = RepositoryError("week append conflict")
	ErrDuplicateUser = RepositoryError("user already exists")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile *domain.UserProfile) error
}

// ProgramRepository persists customized templates (user programs).
// AppendWeek is the only mutation of generated weeks and must be guarded:
// the append succeeds only when the stored program still has expectedWeeks
// weeks, preserving the no-gaps/no-duplicates invariant under the documented
// one-outstanding-generation-per-program precondition.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.CustomizedTemplate) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CustomizedTemplate, error)
	GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.CustomizedTemplate, error)
	AppendWeek(ctx context.Context, programID primitive.ObjectID, expectedWeeks int, week *domain.TrainingWeek) error
	UpdateWeekStatus(ctx context.Context, programID primitive.ObjectID, weekNumber int, completed, abandoned bool) error
	UpdateFramework(ctx context.Context, programID primitive.ObjectID, weeks []domain.FrameworkWeek) error
}

// CompletionRepository persists per-workout completion records.
type CompletionRepository interface {
	Upsert(ctx context.Context, completion *domain.WorkoutCompletion) (primitive.ObjectID, error)
	GetByProgramWeek(ctx context.Context, programID primitive.ObjectID, weekNumber int) ([]domain.WorkoutCompletion, error)
}

// ExerciseRepository sources the read-only exercise catalog.
type ExerciseRepository interface {
	GetAll(ctx context.Context) ([]catalog.Exercise, error)
	// SeedIfEmpty inserts the built-in library when the collection is empty,
	// so a fresh deployment has a usable catalog.
	SeedIfEmpty(ctx context.Context, exercises []catalog.Exercise) error
}

// MediaRepository persists metadata for uploaded form-check videos.
type MediaRepository interface {
	Create(ctx context.Context, upload *domain.MediaUpload) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MediaUpload, error)
}
