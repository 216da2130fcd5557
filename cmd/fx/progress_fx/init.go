package progress_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlife/internal/repositories"
	"fitlife/internal/services"
)

var Module = fx.Provide(
	provideProgressRepo, provideProgressService)

func provideProgressRepo(db *gorm.DB) repositories.ProgressRepository {
	return repositories.NewProgressRepository(db)
}

func provideProgressService(progressRepo repositories.ProgressRepository) services.ProgressServiceInterface {
	return services.NewProgressService(progressRepo)
}
