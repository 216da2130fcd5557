package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlife/internal/models/request_models"
	"fitlife/internal/services"
	"fitlife/pkg/utils"
)

type ProgressController struct {
	progressService services.ProgressServiceInterface
}

func NewProgressController(progressService services.ProgressServiceInterface) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// ListRecords godoc
// @Summary List progress records
// @Tags Progress
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /progress/records [get]
func (p *ProgressController) ListRecords(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	records, err := p.progressService.ListRecords(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Progress records fetched successfully")
}

// CreateRecord godoc
// @Summary Log a progress checkpoint
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body request_models.CreateProgressRecordRequest true "Progress payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /progress/records [post]
func (p *ProgressController) CreateRecord(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.CreateProgressRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	record, err := p.progressService.CreateRecord(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Progress recorded")
}
