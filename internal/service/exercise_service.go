package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exertrack/internal/model"
	"exertrack/internal/repository"
)

// ExerciseService exposes exercise domain operations.
type ExerciseService interface {
	Create(ctx context.Context, userID primitive.ObjectID, description string, duration int, date time.Time) (*model.Exercise, error)
	Logs(ctx context.Context, userID primitive.ObjectID, from, to *time.Time, limit int64) (*model.User, []model.Exercise, error)
}

type exerciseService struct {
	users     UserService
	exercises repository.ExerciseRepository
}

// NewExerciseService builds an ExerciseService. User existence is checked
// through the user service so lookups share its cache.
func NewExerciseService(users UserService, exercises repository.ExerciseRepository) ExerciseService {
	return &exerciseService{users: users, exercises: exercises}
}

// Create records an exercise for an existing user. The user check happens at
// request time; the store itself holds no reference constraint.
func (s *exerciseService) Create(ctx context.Context, userID primitive.ObjectID, description string, duration int, date time.Time) (*model.Exercise, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}

	exercise := &model.Exercise{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	if err := s.exercises.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// Logs returns the user and their exercises within the optional inclusive
// date range, in insertion order, capped at limit.
func (s *exerciseService) Logs(ctx context.Context, userID primitive.ObjectID, from, to *time.Time, limit int64) (*model.User, []model.Exercise, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	exercises, err := s.exercises.Find(ctx, repository.LogFilter{UserID: userID, From: from, To: to}, limit)
	if err != nil {
		return nil, nil, err
	}
	return user, exercises, nil
}
