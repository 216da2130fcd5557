package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlife/cmd/fx/auth_fx"
	"fitlife/cmd/fx/controllers_fx"
	"fitlife/cmd/fx/dashboard_fx"
	"fitlife/cmd/fx/db_fx"
	"fitlife/cmd/fx/diet_fx"
	"fitlife/cmd/fx/profile_fx"
	"fitlife/cmd/fx/progress_fx"
	"fitlife/cmd/fx/search_fx"
	"fitlife/cmd/fx/workout_fx"
	"fitlife/internal/api/controllers"
	"fitlife/internal/config"
	"fitlife/internal/infra"
	mem "fitlife/pkg/memcache"
	"fitlife/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		auth_fx.Module,
		profile_fx.Module,
		diet_fx.Module,
		progress_fx.Module,
		workout_fx.Module,
		dashboard_fx.Module,
		search_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	dietController *controllers.DietController,
	progressController *controllers.ProgressController,
	workoutController *controllers.WorkoutController,
	dashboardController *controllers.DashboardController,
	searchController *controllers.SearchController,
	revoked mem.RevokedTokenStore) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, revoked,
		authController, profileController, dietController,
		progressController, workoutController, dashboardController, searchController)

	return r
}

func RegisterRoutes(r *gin.Engine, revoked mem.RevokedTokenStore,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	dietController *controllers.DietController,
	progressController *controllers.ProgressController,
	workoutController *controllers.WorkoutController,
	dashboardController *controllers.DashboardController,
	searchController *controllers.SearchController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", authController.Register)
	accounts.POST("/login", authController.Login)

	// Everything below requires a resolved session.
	authed := r.Group("/", middleware.JWTAuthMiddleware(revoked))
	authed.POST("accounts/logout", authController.Logout)
	authed.GET("accounts/me", authController.Me)

	authed.GET("profile", profileController.GetProfile)
	authed.PUT("profile", profileController.SaveProfile)

	authed.GET("diet/entries", dietController.ListEntries)
	authed.POST("diet/entries", dietController.CreateEntry)
	authed.DELETE("diet/entries/:id", dietController.DeleteEntry)

	authed.GET("progress/records", progressController.ListRecords)
	authed.POST("progress/records", progressController.CreateRecord)

	authed.GET("workouts", workoutController.ListPlans)

	authed.GET("dashboard/summary", dashboardController.GetSummary)

	authed.GET("search", searchController.Discover)
}
