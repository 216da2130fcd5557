package request_models

import "time"

type CreateDietEntryRequest struct {
	Date     *time.Time `json:"date"`
	MealType string     `json:"meal_type" binding:"required"`
	FoodName string     `json:"food_name" binding:"required"`
	Calories int        `json:"calories"`
	ProteinG *float64   `json:"protein_g"`
	CarbsG   *float64   `json:"carbs_g"`
	FatG     *float64   `json:"fat_g"`
}
