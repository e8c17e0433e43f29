package lodgings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wadi/internal/api/controllers"
	"wadi/internal/repositories"
	"wadi/internal/services"
)

var Module = fx.Provide(
	provideLodgingRepo,
	provideLodgingService,
	controllers.NewLodgingsController)

func provideLodgingRepo(db *gorm.DB) repositories.LodgingRepository {
	return repositories.NewLodgingRepository(db)
}

func provideLodgingService(lodgingRepo repositories.LodgingRepository) services.LodgingServiceInterface {
	return services.NewLodgingService(lodgingRepo)
}
