package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlife/internal/models/db_models"
	"fitlife/internal/models/request_models"
	"fitlife/internal/repositories"
	"fitlife/pkg/utils"
)

type DietServiceInterface interface {
	ListEntries(ctx context.Context, userID uuid.UUID) ([]db_models.DietEntry, error)
	CreateEntry(ctx context.Context, userID uuid.UUID, request request_models.CreateDietEntryRequest) (*db_models.DietEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
}

type DietService struct {
	dietRepo repositories.DietRepository
}

func NewDietService(dietRepo repositories.DietRepository) DietServiceInterface {
	return &DietService{dietRepo: dietRepo}
}

func (s *DietService) ListEntries(ctx context.Context, userID uuid.UUID) ([]db_models.DietEntry, error) {
	entries, err := s.dietRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (s *DietService) CreateEntry(ctx context.Context, userID uuid.UUID, request request_models.CreateDietEntryRequest) (*db_models.DietEntry, error) {
	mealType := db_models.MealType(request.MealType)
	if !mealType.Valid() {
		return nil, utils.NewValidationError("Invalid meal type")
	}

	foodName := strings.TrimSpace(request.FoodName)
	if foodName == "" {
		return nil, utils.NewValidationError("Food name is required")
	}
	if request.Calories < 0 {
		return nil, utils.NewValidationError("Calories cannot be negative")
	}

	date := time.Now().UTC()
	if request.Date != nil {
		date = *request.Date
	}

	entry := &db_models.DietEntry{
		UserID:   userID,
		Date:     date,
		MealType: mealType,
		FoodName: foodName,
		Calories: request.Calories,
		ProteinG: request.ProteinG,
		CarbsG:   request.CarbsG,
		FatG:     request.FatG,
	}

	if err := s.dietRepo.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entry, nil
}

func (s *DietService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	err := s.dietRepo.DeleteOwned(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRecordNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}
