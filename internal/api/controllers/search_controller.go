package controllers

import (
	"github.com/gin-gonic/gin"

	"fitlife/internal/services"
	"fitlife/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{searchService: searchService}
}

// Discover godoc
// @Summary Search & discover catalog
// @Description Curated discover content; the query is echoed, not executed
// @Tags Search
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /search [get]
func (s *SearchController) Discover(c *gin.Context) {
	catalog := s.searchService.Catalog(c.Query("q"))
	utils.RespondSuccess(c, catalog, "Catalog fetched successfully")
}
