package planner_fx

import (
	"go.uber.org/fx"

	"wadi/internal/api/controllers"
	"wadi/internal/repositories"
	"wadi/internal/services"
)

var Module = fx.Provide(
	providePlannerService,
	controllers.NewPlannerController)

func providePlannerService(attractionRepo repositories.AttractionRepository) services.PlannerServiceInterface {
	return services.NewPlannerService(attractionRepo)
}
