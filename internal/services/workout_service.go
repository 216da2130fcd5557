package services

import (
	"context"

	"github.com/google/uuid"

	"fitlife/internal/models/db_models"
	"fitlife/internal/repositories"
	"fitlife/pkg/utils"
)

// The workout surface is read-only: plans come from the system seed or from
// earlier server-side customization, never from this API.
type WorkoutServiceInterface interface {
	ListPlans(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error)
}

type WorkoutService struct {
	workoutRepo repositories.WorkoutRepository
}

func NewWorkoutService(workoutRepo repositories.WorkoutRepository) WorkoutServiceInterface {
	return &WorkoutService{workoutRepo: workoutRepo}
}

func (s *WorkoutService) ListPlans(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error) {
	plans, err := s.workoutRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}
