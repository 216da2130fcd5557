package diet_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlife/internal/repositories"
	"fitlife/internal/services"
)

var Module = fx.Provide(
	provideDietRepo, provideDietService)

func provideDietRepo(db *gorm.DB) repositories.DietRepository {
	return repositories.NewDietRepository(db)
}

func provideDietService(dietRepo repositories.DietRepository) services.DietServiceInterface {
	return services.NewDietService(dietRepo)
}
