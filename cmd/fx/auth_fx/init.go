package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitlife/internal/config"
	"fitlife/internal/repositories"
	"fitlife/internal/services"
	mem "fitlife/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideRevokedTokens, provideAuthService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

func provideAuthService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	revoked mem.RevokedTokenStore,
	cfg *config.Config,
) services.AuthServiceInterface {
	return services.NewAuthService(accountRepo, profileRepo, revoked, cfg.TokenTTL)
}
