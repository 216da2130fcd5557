package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitlife/internal/models/db_models"
)

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error)
	Upsert(ctx context.Context, profile *db_models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (p *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

// Upsert keys on user_id, not on the row id, so saving the same input twice
// leaves exactly one profile row per user.
func (p *profileRepository) Upsert(ctx context.Context, profile *db_models.Profile) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "age", "gender", "height_cm", "weight_kg",
				"activity_level", "fitness_goal", "location", "updated_at",
			}),
		}).
		Create(profile).Error
}
