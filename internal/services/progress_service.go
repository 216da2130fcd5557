package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitlife/internal/models/db_models"
	"fitlife/internal/models/request_models"
	"fitlife/internal/repositories"
	"fitlife/pkg/utils"
)

type ProgressServiceInterface interface {
	ListRecords(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressRecord, error)
	CreateRecord(ctx context.Context, userID uuid.UUID, request request_models.CreateProgressRecordRequest) (*db_models.ProgressRecord, error)
}

type ProgressService struct {
	progressRepo repositories.ProgressRepository
}

func NewProgressService(progressRepo repositories.ProgressRepository) ProgressServiceInterface {
	return &ProgressService{progressRepo: progressRepo}
}

func (s *ProgressService) ListRecords(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressRecord, error) {
	records, err := s.progressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return records, nil
}

func (s *ProgressService) CreateRecord(ctx context.Context, userID uuid.UUID, request request_models.CreateProgressRecordRequest) (*db_models.ProgressRecord, error) {
	if err := utils.ValidateWeight(request.WeightKg); err != nil {
		return nil, err
	}
	if request.BodyFatPercentage != nil {
		if *request.BodyFatPercentage < 0 || *request.BodyFatPercentage > 100 {
			return nil, utils.NewValidationError("Invalid body fat percentage")
		}
	}

	date := time.Now().UTC()
	if request.Date != nil {
		date = *request.Date
	}

	record := &db_models.ProgressRecord{
		UserID:            userID,
		Date:              date,
		WeightKg:          request.WeightKg,
		BodyFatPercentage: request.BodyFatPercentage,
		Notes:             request.Notes,
		PhotoURLs:         request.PhotoURLs,
	}

	if err := s.progressRepo.Insert(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return record, nil
}
