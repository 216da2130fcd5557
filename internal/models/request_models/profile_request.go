package request_models

type SaveProfileRequest struct {
	FullName      string  `json:"full_name" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender"`
	HeightCm      float64 `json:"height_cm" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	ActivityLevel string  `json:"activity_level"`
	FitnessGoal   string  `json:"fitness_goal" binding:"max=200"`
	Location      string  `json:"location" binding:"max=100"`
}
