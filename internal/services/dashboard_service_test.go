package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlife/internal/models/db_models"
	resp "fitlife/internal/models/response_models"
)

func TestSummaryCountsPerUser(t *testing.T) {
	userID := uuid.New()
	other := uuid.New()

	diet := &fakeDietRepo{entries: []db_models.DietEntry{
		{UserID: userID}, {UserID: userID}, {UserID: other},
	}}
	progress := &fakeProgressRepo{records: []db_models.ProgressRecord{{UserID: userID}}}
	workouts := &fakeWorkoutRepo{plans: []db_models.WorkoutPlan{{UserID: &userID}}}
	profiles := newFakeProfileRepo()

	svc := NewDashboardService(workouts, diet, progress, profiles)

	summary, err := svc.BuildSummary(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, resp.CountStat{Value: 2, Status: resp.CountOK}, summary.DietEntries)
	assert.Equal(t, resp.CountStat{Value: 1, Status: resp.CountOK}, summary.ProgressRecords)
	assert.Equal(t, resp.CountStat{Value: 1, Status: resp.CountOK}, summary.WorkoutPlans)
	assert.Nil(t, summary.Profile)
}

func TestSummarySurvivesFailedCounts(t *testing.T) {
	userID := uuid.New()

	diet := &fakeDietRepo{countErr: assert.AnError}
	progress := &fakeProgressRepo{countErr: assert.AnError}
	workouts := &fakeWorkoutRepo{countErr: assert.AnError}

	svc := NewDashboardService(workouts, diet, progress, newFakeProfileRepo())

	summary, err := svc.BuildSummary(context.Background(), userID)
	require.NoError(t, err, "broken counts must not fail the whole summary")

	// values render as zero, but the status tells the client they are unknown
	for _, stat := range []resp.CountStat{summary.DietEntries, summary.ProgressRecords, summary.WorkoutPlans} {
		assert.Equal(t, int64(0), stat.Value)
		assert.Equal(t, resp.CountError, stat.Status)
	}
}

func TestSummaryIncludesProfileAndBMI(t *testing.T) {
	userID := uuid.New()
	profiles := newFakeProfileRepo()

	age := 30
	height := 180.0
	weight := 81.0
	profiles.byUser[userID] = &db_models.Profile{
		UserID:      userID,
		FullName:    "Jane Doe",
		Age:         &age,
		HeightCm:    &height,
		WeightKg:    &weight,
		FitnessGoal: "Build muscle",
	}

	svc := NewDashboardService(&fakeWorkoutRepo{}, &fakeDietRepo{}, &fakeProgressRepo{}, profiles)

	summary, err := svc.BuildSummary(context.Background(), userID)
	require.NoError(t, err)

	require.NotNil(t, summary.Profile)
	assert.True(t, summary.Profile.Complete)
	assert.Equal(t, "Build muscle", summary.Profile.FitnessGoal)

	require.NotNil(t, summary.BMI)
	assert.InDelta(t, 25.0, summary.BMI.Value, 0.01)
	assert.Equal(t, "Overweight", summary.BMI.Category)
}
