package request_models

import "time"

type CreateProgressRecordRequest struct {
	Date              *time.Time `json:"date"`
	WeightKg          float64    `json:"weight_kg" binding:"required"`
	BodyFatPercentage *float64   `json:"body_fat_percentage"`
	Notes             string     `json:"notes"`
	PhotoURLs         []string   `json:"photo_urls"`
}
