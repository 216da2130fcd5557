package db_models

type Account struct {
	BaseModel
	FullName     string `json:"full_name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`

	Profile         *Profile         `json:"-"`
	DietEntries     []DietEntry      `json:"-"`
	ProgressRecords []ProgressRecord `json:"-"`
	WorkoutPlans    []WorkoutPlan    `json:"-"`
}
