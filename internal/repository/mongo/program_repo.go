package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alcyxob/adaptive-coach/internal/domain"
	"alcyxob/adaptive-coach/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const programCollectionName = "programs"

// mongoProgramRepository implements repository.ProgramRepository
type mongoProgramRepository struct {
	collection *mongo.Collection
}

// NewMongoProgramRepository creates a new Program repository backed by MongoDB.
func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		collection: db.Collection(programCollectionName),
	}
}

// Create inserts a new customized template.
func (r *mongoProgramRepository) Create(ctx context.Context, program *domain.CustomizedTemplate) (primitive.ObjectID, error) {
	if program.UserID == primitive.NilObjectID || program.TemplateID == "" {
		return primitive.NilObjectID, errors.New("program user ID and template ID are required")
	}

	program.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, program)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a program by its id.
func (r *mongoProgramRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CustomizedTemplate, error) {
	var program domain.CustomizedTemplate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// GetActiveByUserID retrieves the user's most recent program.
func (r *mongoProgramRepository) GetActiveByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.CustomizedTemplate, error) {
	var program domain.CustomizedTemplate
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// AppendWeek pushes a newly generated week onto the program. The filter
// matches only when the stored document still holds expectedWeeks generated
// weeks, so a lost race surfaces as ErrWeekConflict instead of a duplicate
// or gapped week number.
func (r *mongoProgramRepository) AppendWeek(ctx context.Context, programID primitive.ObjectID, expectedWeeks int, week *domain.TrainingWeek) error {
	filter := bson.M{
		"_id":            programID,
		"generatedWeeks": bson.M{"$size": expectedWeeks},
	}
	update := bson.M{
		"$push": bson.M{"generatedWeeks": week},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the program is missing or another writer appended first.
		if exists, checkErr := r.exists(ctx, programID); checkErr == nil && exists {
			return repository.ErrWeekConflict
		}
		return repository.ErrNotFound
	}
	return nil
}

// UpdateWeekStatus marks a generated week completed and/or abandoned. Weeks
// are never deleted or rewritten beyond these flags.
func (r *mongoProgramRepository) UpdateWeekStatus(ctx context.Context, programID primitive.ObjectID, weekNumber int, completed, abandoned bool) error {
	filter := bson.M{
		"_id":                       programID,
		"generatedWeeks.weekNumber": weekNumber,
	}
	update := bson.M{"$set": bson.M{
		"generatedWeeks.$.completed": completed,
		"generatedWeeks.$.abandoned": abandoned,
		"updatedAt":                  time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateFramework replaces the framework placeholder list (full_plan mode
// bookkeeping: detail levels and access flags only move forward).
func (r *mongoProgramRepository) UpdateFramework(ctx context.Context, programID primitive.ObjectID, weeks []domain.FrameworkWeek) error {
	update := bson.M{"$set": bson.M{
		"frameworkWeeks": weeks,
		"updatedAt":      time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": programID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoProgramRepository) exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureProgramIndexes creates the userId lookup index.
func EnsureProgramIndexes(ctx context.Context, collection *mongo.Collection) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	}
	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create program indexes: %w", err)
	}
	return nil
}
