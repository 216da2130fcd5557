package search_fx

import (
	"go.uber.org/fx"

	"fitlife/internal/services"
)

var Module = fx.Provide(
	provideSearchService)

func provideSearchService() services.SearchServiceInterface {
	return services.NewSearchService()
}
