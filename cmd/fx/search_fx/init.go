package search_fx

import (
	"go.uber.org/fx"

	"wadi/internal/api/controllers"
	"wadi/internal/repositories"
	"wadi/internal/services"
)

var Module = fx.Provide(
	provideSearchService,
	controllers.NewSearchController)

func provideSearchService(
	attractionRepo repositories.AttractionRepository,
	lodgingRepo repositories.LodgingRepository,
	productRepo repositories.ProductRepository,
) services.SearchServiceInterface {
	return services.NewSearchService(attractionRepo, lodgingRepo, productRepo)
}
