package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlife/internal/models/request_models"
	"fitlife/internal/services"
	"fitlife/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	profile, err := p.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// A missing profile is not an error: the client renders an empty form.
	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// SaveProfile godoc
// @Summary Save the caller's profile
// @Description Validate and upsert the health profile, keyed by user id
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.SaveProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [put]
func (p *ProfileController) SaveProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.profileService.SaveProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile saved successfully")
}
