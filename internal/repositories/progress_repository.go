package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlife/internal/models/db_models"
)

type ProgressRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressRecord, error)
	Insert(ctx context.Context, record *db_models.ProgressRecord) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

func (p *progressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressRecord, error) {
	var records []db_models.ProgressRecord
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (p *progressRepository) Insert(ctx context.Context, record *db_models.ProgressRecord) error {
	return p.db.WithContext(ctx).Create(record).Error
}

func (p *progressRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).
		Model(&db_models.ProgressRecord{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}
