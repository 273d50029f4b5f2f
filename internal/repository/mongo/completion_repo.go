package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/adaptive-coach/internal/domain"
	"alcyxob/adaptive-coach/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const completionCollectionName = "workout_completions"

// mongoCompletionRepository implements repository.CompletionRepository
type mongoCompletionRepository struct {
	collection *mongo.Collection
}

// NewMongoCompletionRepository creates a new Completion repository backed by MongoDB.
func NewMongoCompletionRepository(db *mongo.Database) repository.CompletionRepository {
	return &mongoCompletionRepository{
		collection: db.Collection(completionCollectionName),
	}
}

// Upsert writes the completion record for one workout in one program week.
// Re-logging the same workout replaces the earlier record rather than
// duplicating it.
func (r *mongoCompletionRepository) Upsert(ctx context.Context, completion *domain.WorkoutCompletion) (primitive.ObjectID, error) {
	if completion.ProgramID == primitive.NilObjectID || completion.WorkoutName == "" {
		return primitive.NilObjectID, errors.New("program ID and workout name are required")
	}
	if completion.WeekNumber < 1 {
		return primitive.NilObjectID, errors.New("week number must be positive")
	}

	completion.RecordedAt = time.Now().UTC()

	filter := bson.M{
		"programId":   completion.ProgramID,
		"weekNumber":  completion.WeekNumber,
		"workoutName": completion.WorkoutName,
	}
	update := bson.M{"$set": bson.M{
		"userId":          completion.UserID,
		"programId":       completion.ProgramID,
		"weekNumber":      completion.WeekNumber,
		"workoutName":     completion.WorkoutName,
		"completed":       completion.Completed,
		"skipped":         completion.Skipped,
		"skipReason":      completion.SkipReason,
		"rpe":             completion.RPE,
		"rating":          completion.Rating,
		"durationMinutes": completion.DurationMinutes,
		"dayOfWeek":       completion.DayOfWeek,
		"mediaUploadId":   completion.MediaUploadID,
		"recordedAt":      completion.RecordedAt,
	}}

	opts := options.Update().SetUpsert(true)
	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if result.UpsertedID != nil {
		if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
			completion.ID = id
			return id, nil
		}
	}

	// Updated an existing record; fetch its id.
	var existing domain.WorkoutCompletion
	if err := r.collection.FindOne(ctx, filter).Decode(&existing); err != nil {
		return primitive.NilObjectID, err
	}
	completion.ID = existing.ID
	return existing.ID, nil
}

// GetByProgramWeek returns all completion records for one program week.
func (r *mongoCompletionRepository) GetByProgramWeek(ctx context.Context, programID primitive.ObjectID, weekNumber int) ([]domain.WorkoutCompletion, error) {
	filter := bson.M{"programId": programID, "weekNumber": weekNumber}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var completions []domain.WorkoutCompletion
	if err = cursor.All(ctx, &completions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return completions, nil
}

// EnsureCompletionIndexes creates the unique (program, week, workout) index
// backing the upsert.
func EnsureCompletionIndexes(ctx context.Context, collection *mongo.Collection) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "programId", Value: 1},
			{Key: "weekNumber", Value: 1},
			{Key: "workoutName", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	_, err := collection.Indexes().CreateOne(ctx, model)
	return err
}
