package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"wadi/internal/models/request_models"
	"wadi/internal/services"
	"wadi/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{plannerService: plannerService}
}

func (p *PlannerController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := p.plannerService.GeneratePlan(c.Request.Context(), req.Days, req.Budget, req.Interests)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}
