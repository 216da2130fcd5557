package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlife/internal/config"
	"fitlife/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg.PostgresURL)
	infra.AutoMigrate(db)
	return db
}
