package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is one entry of a plan. Exactly one of Reps or DurationSeconds is
// meaningful depending on Kind.
type Exercise struct {
	Kind            string `json:"kind"` // "reps" | "timed"
	Name            string `json:"name"`
	Sets            int    `json:"sets,omitempty"`
	Reps            int    `json:"reps,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// ExerciseList is stored as a jsonb column but stays typed in Go, so plans
// round-trip without degrading to a free-form map.
type ExerciseList []Exercise

func (l ExerciseList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ExerciseList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for ExerciseList")
	}
}

// WorkoutPlan rows with a nil UserID are system-provided; IsCustom marks the
// user-customized ones.
type WorkoutPlan struct {
	BaseModel
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Difficulty      Difficulty   `json:"difficulty"`
	DurationMinutes int          `json:"duration_minutes"`
	Exercises       ExerciseList `gorm:"type:jsonb" json:"exercises"`
	IsCustom        bool         `json:"is_custom"`
}
