package mongo

import (
	"context"

	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository. The
// exercise collection is reference data: written once by SeedIfEmpty, read
// at startup to hydrate the in-memory catalog, never mutated per request.
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// GetAll returns the whole exercise library in insertion order.
func (r *mongoExerciseRepository) GetAll(ctx context.Context) ([]catalog.Exercise, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []catalog.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// SeedIfEmpty inserts the built-in library on a fresh deployment.
func (r *mongoExerciseRepository) SeedIfEmpty(ctx context.Context, exercises []catalog.Exercise) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(exercises))
	for i, ex := range exercises {
		docs[i] = ex
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}

var _ repository.ExerciseRepository = (*mongoExerciseRepository)(nil)
