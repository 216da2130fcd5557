package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlife/internal/services"
	"fitlife/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetSummary godoc
// @Summary Get dashboard summary
// @Description Per-collection counts (with per-count status), profile snapshot and BMI
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (d *DashboardController) GetSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	summary, err := d.dashboardService.BuildSummary(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Dashboard summary fetched successfully")
}
