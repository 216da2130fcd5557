package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlife/internal/models/request_models"
)

func TestCreateRecordRequiresValidWeight(t *testing.T) {
	svc := NewProgressService(&fakeProgressRepo{})
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.CreateRecord(ctx, userID, request_models.CreateProgressRecordRequest{WeightKg: 19.9})
	require.Error(t, err)
	assert.Equal(t, "Invalid weight", err.Error())

	record, err := svc.CreateRecord(ctx, userID, request_models.CreateProgressRecordRequest{WeightKg: 72.5})
	require.NoError(t, err)
	assert.Equal(t, 72.5, record.WeightKg)
	assert.Nil(t, record.BodyFatPercentage)
}

func TestCreateRecordOptionalFields(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewProgressService(repo)
	userID := uuid.New()

	bf := 18.2
	record, err := svc.CreateRecord(context.Background(), userID, request_models.CreateProgressRecordRequest{
		WeightKg:          72.5,
		BodyFatPercentage: &bf,
		Notes:             "Feeling strong",
		PhotoURLs:         []string{"photos/week-12.jpg"},
	})
	require.NoError(t, err)
	require.NotNil(t, record.BodyFatPercentage)
	assert.Equal(t, 18.2, *record.BodyFatPercentage)
	assert.Equal(t, []string(record.PhotoURLs), []string{"photos/week-12.jpg"})

	bad := 101.0
	_, err = svc.CreateRecord(context.Background(), userID, request_models.CreateProgressRecordRequest{
		WeightKg:          72.5,
		BodyFatPercentage: &bad,
	})
	assert.Error(t, err)
}
