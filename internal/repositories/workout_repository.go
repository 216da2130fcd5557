package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlife/internal/models/db_models"
)

type WorkoutRepository interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	InsertSystemPlans(ctx context.Context, plans []db_models.WorkoutPlan) error
	CountSystemPlans(ctx context.Context) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{
		db: db,
	}
}

// ListForUser returns the user's own plans plus the system-provided set.
func (w *workoutRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutPlan, error) {
	var plans []db_models.WorkoutPlan
	err := w.db.WithContext(ctx).
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (w *workoutRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := w.db.WithContext(ctx).
		Model(&db_models.WorkoutPlan{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (w *workoutRepository) InsertSystemPlans(ctx context.Context, plans []db_models.WorkoutPlan) error {
	return w.db.WithContext(ctx).Create(&plans).Error
}

func (w *workoutRepository) CountSystemPlans(ctx context.Context) (int64, error) {
	var n int64
	err := w.db.WithContext(ctx).
		Model(&db_models.WorkoutPlan{}).
		Where("user_id IS NULL").
		Count(&n).Error
	return n, err
}
