package attractions_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wadi/internal/api/controllers"
	"wadi/internal/repositories"
	"wadi/internal/services"
)

var Module = fx.Provide(
	provideAttractionRepo,
	provideAttractionService,
	controllers.NewAttractionsController)

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideAttractionService(attractionRepo repositories.AttractionRepository) services.AttractionServiceInterface {
	return services.NewAttractionService(attractionRepo)
}
