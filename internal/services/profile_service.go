package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"fitlife/internal/models/db_models"
	"fitlife/internal/models/request_models"
	"fitlife/internal/repositories"
	"fitlife/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, request request_models.SaveProfileRequest) (*db_models.Profile, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile returns nil without error when the user has not filled in a
// profile yet; the client renders an empty form in that case.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profile, nil
}

func (s *ProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, request request_models.SaveProfileRequest) (*db_models.Profile, error) {
	if err := utils.ValidateProfile(request.FullName, request.Age, request.HeightCm, request.WeightKg); err != nil {
		return nil, err
	}

	level := db_models.ActivityLevel(request.ActivityLevel)
	if request.ActivityLevel != "" && !level.Valid() {
		return nil, utils.NewValidationError("Invalid activity level")
	}

	age := request.Age
	height := request.HeightCm
	weight := request.WeightKg

	profile := &db_models.Profile{
		UserID:        userID,
		FullName:      strings.TrimSpace(request.FullName),
		Age:           &age,
		Gender:        request.Gender,
		HeightCm:      &height,
		WeightKg:      &weight,
		ActivityLevel: level,
		FitnessGoal:   request.FitnessGoal,
		Location:      request.Location,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	saved, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return saved, nil
}
