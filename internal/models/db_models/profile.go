package db_models

import "github.com/google/uuid"

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (l ActivityLevel) Valid() bool {
	switch l {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	default:
		return false
	}
}

// Profile is the one-per-user health record. user_id carries a unique index so
// the upsert path can key on it.
type Profile struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`

	FullName      string        `json:"full_name"`
	Age           *int          `json:"age"`
	Gender        string        `json:"gender"`
	HeightCm      *float64      `json:"height_cm"`
	WeightKg      *float64      `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	FitnessGoal   string        `json:"fitness_goal"`
	Location      string        `json:"location"`
}
