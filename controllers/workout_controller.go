package controllers

import (
	"net/http"

	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Users    *services.UserService
	Workouts *services.WorkoutService
}

func NewWorkoutController(users *services.UserService, workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Users: users, Workouts: workouts}
}

func (wc *WorkoutController) CreateForDay(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}
	progress, err := wc.Workouts.CreateForDay(c.Request.Context(), user, dayParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, progress)
}

func (wc *WorkoutController) Get(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}
	progress, err := wc.Workouts.ForDay(user, dayParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (wc *WorkoutController) AddExercise(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}

	var req struct {
		ExerciseUID string `json:"exercise_uid" binding:"required"`
		Sets        int    `json:"sets"`
		Reps        int    `json:"reps"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := wc.Workouts.AddExercise(c.Request.Context(), user, dayParam(c), req.ExerciseUID, req.Sets, req.Reps)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (wc *WorkoutController) PatchExercise(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch services.ExercisePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := wc.Workouts.PatchExercise(c.Request.Context(), user, dayParam(c), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (wc *WorkoutController) RemoveExercise(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	progress, err := wc.Workouts.RemoveExercise(c.Request.Context(), user, dayParam(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
