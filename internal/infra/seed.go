package infra

import (
	"context"
	"log"

	"fitlife/internal/models/db_models"
	"fitlife/internal/repositories"
)

// SeedWorkoutPlans inserts the system-provided plans once. User rows are never
// touched; the workout listing merges these with the user's own plans.
func SeedWorkoutPlans(repo repositories.WorkoutRepository) {
	ctx := context.Background()

	n, err := repo.CountSystemPlans(ctx)
	if err != nil {
		log.Printf("Error checking system workout plans: %v", err)
		return
	}
	if n > 0 {
		return
	}

	plans := []db_models.WorkoutPlan{
		{
			Name:            "Full Body Strength",
			Description:     "Compound lifts covering every major muscle group.",
			Difficulty:      db_models.DifficultyIntermediate,
			DurationMinutes: 45,
			Exercises: db_models.ExerciseList{
				{Kind: "reps", Name: "Squat", Sets: 4, Reps: 8},
				{Kind: "reps", Name: "Bench Press", Sets: 4, Reps: 8},
				{Kind: "reps", Name: "Bent-Over Row", Sets: 3, Reps: 10},
				{Kind: "timed", Name: "Plank", Sets: 3, DurationSeconds: 60},
			},
		},
		{
			Name:            "HIIT Cardio Blast",
			Description:     "Short high-intensity intervals for conditioning.",
			Difficulty:      db_models.DifficultyAdvanced,
			DurationMinutes: 30,
			Exercises: db_models.ExerciseList{
				{Kind: "timed", Name: "Burpees", Sets: 5, DurationSeconds: 40},
				{Kind: "timed", Name: "Mountain Climbers", Sets: 5, DurationSeconds: 40},
				{Kind: "timed", Name: "Jump Rope", Sets: 5, DurationSeconds: 60},
			},
		},
		{
			Name:            "Yoga Flow for Beginners",
			Description:     "A gentle introduction to mobility and balance.",
			Difficulty:      db_models.DifficultyBeginner,
			DurationMinutes: 20,
			Exercises: db_models.ExerciseList{
				{Kind: "timed", Name: "Sun Salutation", Sets: 3, DurationSeconds: 90},
				{Kind: "timed", Name: "Warrior Pose", Sets: 2, DurationSeconds: 45},
				{Kind: "timed", Name: "Child's Pose", Sets: 1, DurationSeconds: 120},
			},
		},
	}

	if err := repo.InsertSystemPlans(ctx, plans); err != nil {
		log.Printf("Error seeding workout plans: %v", err)
		return
	}
	log.Printf("Seeded %d system workout plans", len(plans))
}
