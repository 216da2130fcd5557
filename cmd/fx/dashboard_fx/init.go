package dashboard_fx

import (
	"go.uber.org/fx"

	"fitlife/internal/repositories"
	"fitlife/internal/services"
)

var Module = fx.Provide(
	provideDashboardService)

func provideDashboardService(
	workoutRepo repositories.WorkoutRepository,
	dietRepo repositories.DietRepository,
	progressRepo repositories.ProgressRepository,
	profileRepo repositories.ProfileRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(workoutRepo, dietRepo, progressRepo, profileRepo)
}
