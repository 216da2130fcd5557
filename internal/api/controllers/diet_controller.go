package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitlife/internal/models/request_models"
	"fitlife/internal/services"
	"fitlife/pkg/utils"
)

type DietController struct {
	dietService services.DietServiceInterface
}

func NewDietController(dietService services.DietServiceInterface) *DietController {
	return &DietController{dietService: dietService}
}

// ListEntries godoc
// @Summary List diet entries
// @Description Caller's diet entries, most recent date first
// @Tags Diet
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /diet/entries [get]
func (d *DietController) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	entries, err := d.dietService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Diet entries fetched successfully")
}

// CreateEntry godoc
// @Summary Log a meal
// @Tags Diet
// @Accept json
// @Produce json
// @Param request body request_models.CreateDietEntryRequest true "Diet entry payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /diet/entries [post]
func (d *DietController) CreateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.CreateDietEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := d.dietService.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Entry added successfully")
}

// DeleteEntry godoc
// @Summary Delete a diet entry
// @Tags Diet
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /diet/entries/{id} [delete]
func (d *DietController) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	if err := d.dietService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Entry deleted")
}
