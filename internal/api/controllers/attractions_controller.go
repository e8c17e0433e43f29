package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wadi/internal/models/request_models"
	"wadi/internal/services"
	"wadi/pkg/utils"
)

type AttractionsController struct {
	attractionService services.AttractionServiceInterface
}

func NewAttractionsController(attractionService services.AttractionServiceInterface) *AttractionsController {
	return &AttractionsController{attractionService: attractionService}
}

func (a *AttractionsController) GetAttractionByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	attraction, err := a.attractionService.GetAttractionByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attraction, "Attraction fetched successfully")
}

func (a *AttractionsController) ListAttractions(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	attractions, err := a.attractionService.ListAttractions(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

func (a *AttractionsController) CreateAttraction(c *gin.Context) {
	var req request_models.CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.attractionService.CreateAttraction(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attraction created successfully")
}

func (a *AttractionsController) UpdateAttraction(c *gin.Context) {
	var req request_models.UpdateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.attractionService.UpdateAttraction(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attraction updated successfully")
}

func (a *AttractionsController) DeleteAttraction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid attraction ID")
		return
	}

	if err := a.attractionService.DeleteAttraction(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attraction deleted successfully")
}

func parsePagination(c *gin.Context) (page, pageSize int, ok bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err = strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}
