package response_models

// CountStatus distinguishes "zero records" from "the count query failed".
type CountStatus string

const (
	CountOK    CountStatus = "ok"
	CountError CountStatus = "error"
)

// CountStat defaults Value to 0 when Status is "error", matching the product
// behaviour of rendering 0, while still telling the client the number is not
// trustworthy.
type CountStat struct {
	Value  int64       `json:"value"`
	Status CountStatus `json:"status"`
}

type ProfileSnapshot struct {
	FullName      string   `json:"full_name"`
	FitnessGoal   string   `json:"fitness_goal"`
	WeightKg      *float64 `json:"weight_kg"`
	ActivityLevel string   `json:"activity_level"`
	Complete      bool     `json:"complete"`
}

type BMIReadout struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

type DashboardSummary struct {
	WorkoutPlans    CountStat        `json:"workout_plans"`
	DietEntries     CountStat        `json:"diet_entries"`
	ProgressRecords CountStat        `json:"progress_records"`
	Profile         *ProfileSnapshot `json:"profile"`
	BMI             *BMIReadout      `json:"bmi,omitempty"`
}
