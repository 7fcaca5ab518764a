package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"exertrack/internal/model"
)

// LogFilter narrows an exercise query to one user and an optional inclusive
// date range. A nil bound leaves that side open.
type LogFilter struct {
	UserID primitive.ObjectID
	From   *time.Time
	To     *time.Time
}

// ExerciseRepository defines exercise persistence operations. Exercises are
// never updated or deleted.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	Find(ctx context.Context, filter LogFilter, limit int64) ([]model.Exercise, error)
}

type exerciseRepository struct {
	coll *mongo.Collection
}

// NewExerciseRepository builds a Mongo-backed repository over the exercises
// collection.
func NewExerciseRepository(database *mongo.Database) ExerciseRepository {
	return &exerciseRepository{coll: database.Collection("exercises")}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	res, err := r.coll.InsertOne(ctx, exercise)
	if err != nil {
		return err
	}
	exercise.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Find returns matching exercises in insertion order (_id ascending), capped
// at limit.
func (r *exerciseRepository) Find(ctx context.Context, filter LogFilter, limit int64) ([]model.Exercise, error) {
	query := bson.M{"userId": filter.UserID}
	dateRange := bson.M{}
	if filter.From != nil {
		dateRange["$gte"] = *filter.From
	}
	if filter.To != nil {
		dateRange["$lte"] = *filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var exercises []model.Exercise
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}
