package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlife/internal/models/db_models"
)

type DietRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.DietEntry, error)
	Insert(ctx context.Context, entry *db_models.DietEntry) error
	DeleteOwned(ctx context.Context, userID, entryID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type dietRepository struct {
	db *gorm.DB
}

func NewDietRepository(db *gorm.DB) DietRepository {
	return &dietRepository{
		db: db,
	}
}

func (d *dietRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.DietEntry, error) {
	var entries []db_models.DietEntry
	err := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (d *dietRepository) Insert(ctx context.Context, entry *db_models.DietEntry) error {
	return d.db.WithContext(ctx).Create(entry).Error
}

// DeleteOwned scopes the delete by owner so one user can never remove
// another's entry by guessing ids.
func (d *dietRepository) DeleteOwned(ctx context.Context, userID, entryID uuid.UUID) error {
	res := d.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&db_models.DietEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *dietRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).
		Model(&db_models.DietEntry{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}
