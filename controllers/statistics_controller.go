package controllers

import (
	"net/http"

	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Users *services.UserService
	Stats *services.StatisticsService
}

func NewStatisticsController(users *services.UserService, stats *services.StatisticsService) *StatisticsController {
	return &StatisticsController{Users: users, Stats: stats}
}

func (sc *StatisticsController) Get(c *gin.Context) {
	user, ok := currentUser(c, sc.Users)
	if !ok {
		return
	}
	stat, err := sc.Stats.ForDay(user.UID, dayParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stat)
}

func (sc *StatisticsController) History(c *gin.Context) {
	user, ok := currentUser(c, sc.Users)
	if !ok {
		return
	}
	stats, err := sc.Stats.History(user.UID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
