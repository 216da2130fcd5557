package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlife/internal/models/db_models"
)

func TestListPlansMergesSystemAndOwn(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()

	repo := &fakeWorkoutRepo{plans: []db_models.WorkoutPlan{
		{Name: "Full Body Strength"},                     // system plan
		{Name: "My Custom Plan", UserID: &userID, IsCustom: true},
		{Name: "Someone Else's Plan", UserID: &other, IsCustom: true},
	}}

	svc := NewWorkoutService(repo)

	plans, err := svc.ListPlans(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	names := []string{plans[0].Name, plans[1].Name}
	assert.Contains(t, names, "Full Body Strength")
	assert.Contains(t, names, "My Custom Plan")
}
