package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlife/internal/infra"
	"fitlife/internal/repositories"
	"fitlife/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideWorkoutRepo, provideWorkoutService),
	fx.Invoke(infra.SeedWorkoutPlans),
)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func provideWorkoutService(workoutRepo repositories.WorkoutRepository) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo)
}
