package controllers_fx

import (
	"go.uber.org/fx"

	"fitlife/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewDietController),
	fx.Provide(controllers.NewProgressController),
	fx.Provide(controllers.NewWorkoutController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewSearchController))
