package db_models

import (
	"time"

	"github.com/google/uuid"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}

// DietEntry rows are created and deleted, never updated in place.
type DietEntry struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Date     time.Time `gorm:"index" json:"date"`
	MealType MealType  `json:"meal_type"`
	FoodName string    `json:"food_name"`
	Calories int       `json:"calories"`
	ProteinG *float64  `json:"protein_g"`
	CarbsG   *float64  `json:"carbs_g"`
	FatG     *float64  `json:"fat_g"`
}
