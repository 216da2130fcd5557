package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlife/internal/services"
	"fitlife/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutController(workoutService services.WorkoutServiceInterface) *WorkoutController {
	return &WorkoutController{workoutService: workoutService}
}

// ListPlans godoc
// @Summary List workout plans
// @Description Caller's plans plus the system-provided set, newest first
// @Tags Workouts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts [get]
func (w *WorkoutController) ListPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	plans, err := w.workoutService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Workout plans fetched successfully")
}
