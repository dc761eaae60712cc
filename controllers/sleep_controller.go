package controllers

import (
	"net/http"
	"time"

	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
)

type SleepController struct {
	Users *services.UserService
	Sleep *services.SleepService
}

func NewSleepController(users *services.UserService, sleep *services.SleepService) *SleepController {
	return &SleepController{Users: users, Sleep: sleep}
}

func (sc *SleepController) CreateForDay(c *gin.Context) {
	user, ok := currentUser(c, sc.Users)
	if !ok {
		return
	}
	record, err := sc.Sleep.CreateForDay(c.Request.Context(), user, dayParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (sc *SleepController) Get(c *gin.Context) {
	user, ok := currentUser(c, sc.Users)
	if !ok {
		return
	}
	record, err := sc.Sleep.ForDay(user, dayParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (sc *SleepController) LogSleep(c *gin.Context) {
	user, ok := currentUser(c, sc.Users)
	if !ok {
		return
	}

	var req struct {
		BedTime  time.Time `json:"bed_time" binding:"required"`
		WakeTime time.Time `json:"wake_time" binding:"required"`
		Quality  string    `json:"quality"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := sc.Sleep.LogSleep(c.Request.Context(), user, dayParam(c), req.BedTime, req.WakeTime, req.Quality)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
