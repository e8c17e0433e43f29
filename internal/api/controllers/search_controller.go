package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"wadi/internal/models/response_models"
	"wadi/internal/services"
	"wadi/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{searchService: searchService}
}

// GlobalSearch serves the site-wide search box. A missing q parameter is a
// client error; an explicitly empty one means browse everything.
func (s *SearchController) GlobalSearch(c *gin.Context) {
	query, ok := c.GetQuery("q")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	hits, err := s.searchService.GlobalSearch(c.Request.Context(), query, requestOrigin(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SearchResult{
		Results: hits,
		Count:   len(hits),
		Query:   query,
	}, "Search completed successfully")
}

func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
