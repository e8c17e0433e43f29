package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wadi/internal/models/request_models"
	"wadi/internal/services"
	"wadi/pkg/utils"
)

type LodgingsController struct {
	lodgingService services.LodgingServiceInterface
}

func NewLodgingsController(lodgingService services.LodgingServiceInterface) *LodgingsController {
	return &LodgingsController{lodgingService: lodgingService}
}

func (l *LodgingsController) GetLodgingByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Lodging ID is required")
		return
	}

	lodging, err := l.lodgingService.GetLodgingByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lodging, "Lodging fetched successfully")
}

func (l *LodgingsController) ListLodgings(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	lodgings, err := l.lodgingService.ListLodgings(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lodgings, "Lodgings fetched successfully")
}

func (l *LodgingsController) CreateLodging(c *gin.Context) {
	var req request_models.CreateLodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := l.lodgingService.CreateLodging(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Lodging created successfully")
}

func (l *LodgingsController) UpdateLodging(c *gin.Context) {
	var req request_models.UpdateLodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := l.lodgingService.UpdateLodging(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Lodging updated successfully")
}

func (l *LodgingsController) DeleteLodging(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid lodging ID")
		return
	}

	if err := l.lodgingService.DeleteLodging(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Lodging deleted successfully")
}
