package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	resp "fitlife/internal/models/response_models"
	"fitlife/internal/repositories"
	"fitlife/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildSummary(ctx context.Context, userID uuid.UUID) (*resp.DashboardSummary, error)
}

type DashboardService struct {
	workoutRepo  repositories.WorkoutRepository
	dietRepo     repositories.DietRepository
	progressRepo repositories.ProgressRepository
	profileRepo  repositories.ProfileRepository
}

func NewDashboardService(
	workoutRepo repositories.WorkoutRepository,
	dietRepo repositories.DietRepository,
	progressRepo repositories.ProgressRepository,
	profileRepo repositories.ProfileRepository,
) DashboardServiceInterface {
	return &DashboardService{
		workoutRepo:  workoutRepo,
		dietRepo:     dietRepo,
		progressRepo: progressRepo,
		profileRepo:  profileRepo,
	}
}

func countStat(n int64, err error) resp.CountStat {
	if err != nil {
		log.Printf("dashboard count failed: %v", err)
		return resp.CountStat{Value: 0, Status: resp.CountError}
	}
	return resp.CountStat{Value: n, Status: resp.CountOK}
}

// BuildSummary issues the three per-collection counts concurrently. A failed
// count does not fail the summary: it shows up as value 0 with status "error",
// so the client can tell an empty collection from a broken query.
func (s *DashboardService) BuildSummary(ctx context.Context, userID uuid.UUID) (*resp.DashboardSummary, error) {
	var (
		wg                                     sync.WaitGroup
		workouts, dietEntries, progressRecords resp.CountStat
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		n, err := s.workoutRepo.CountByUser(ctx, userID)
		workouts = countStat(n, err)
	}()
	go func() {
		defer wg.Done()
		n, err := s.dietRepo.CountByUser(ctx, userID)
		dietEntries = countStat(n, err)
	}()
	go func() {
		defer wg.Done()
		n, err := s.progressRepo.CountByUser(ctx, userID)
		progressRecords = countStat(n, err)
	}()
	wg.Wait()

	summary := &resp.DashboardSummary{
		WorkoutPlans:    workouts,
		DietEntries:     dietEntries,
		ProgressRecords: progressRecords,
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile != nil {
		summary.Profile = &resp.ProfileSnapshot{
			FullName:      profile.FullName,
			FitnessGoal:   profile.FitnessGoal,
			WeightKg:      profile.WeightKg,
			ActivityLevel: string(profile.ActivityLevel),
			Complete:      profile.Age != nil,
		}

		if profile.HeightCm != nil && profile.WeightKg != nil {
			if bmi, err := utils.CalculateBMI(*profile.HeightCm, *profile.WeightKg); err == nil {
				summary.BMI = &resp.BMIReadout{
					Value:    bmi,
					Category: utils.BMICategory(bmi),
				}
			}
		}
	}

	return summary, nil
}
