package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProgressRecord is append-only: no edit or delete path is exposed.
type ProgressRecord struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Date              time.Time      `gorm:"index" json:"date"`
	WeightKg          float64        `json:"weight_kg"`
	BodyFatPercentage *float64       `json:"body_fat_percentage"`
	Notes             string         `json:"notes"`
	PhotoURLs         pq.StringArray `gorm:"type:text[]" json:"photo_urls"`
}
