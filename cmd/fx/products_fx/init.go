package products_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wadi/internal/api/controllers"
	"wadi/internal/repositories"
	"wadi/internal/services"
)

var Module = fx.Provide(
	provideProductRepo,
	provideProductService,
	controllers.NewProductsController)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideProductService(productRepo repositories.ProductRepository) services.ProductServiceInterface {
	return services.NewProductService(productRepo)
}
