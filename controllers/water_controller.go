package controllers

import (
	"net/http"
	"time"

	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Users *services.UserService
	Water *services.WaterService
}

func NewWaterController(users *services.UserService, water *services.WaterService) *WaterController {
	return &WaterController{Users: users, Water: water}
}

func (wc *WaterController) CreateForDay(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}
	intake, err := wc.Water.CreateForDay(c.Request.Context(), user, dayParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, intake)
}

func (wc *WaterController) Get(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}
	intake, err := wc.Water.ForDay(user, dayParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, intake)
}

func (wc *WaterController) AddLog(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}

	var req struct {
		LoggedAt time.Time `json:"logged_at"`
		Liters   float64   `json:"liters" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.LoggedAt.IsZero() {
		req.LoggedAt = time.Now()
	}

	intake, err := wc.Water.AddLog(c.Request.Context(), user, dayParam(c), req.LoggedAt, req.Liters)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, intake)
}

func (wc *WaterController) UpdateLog(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		LoggedAt time.Time `json:"logged_at"`
		Liters   float64   `json:"liters" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.LoggedAt.IsZero() {
		req.LoggedAt = time.Now()
	}

	intake, err := wc.Water.UpdateLog(c.Request.Context(), user, id, req.LoggedAt, req.Liters)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, intake)
}

func (wc *WaterController) RemoveLog(c *gin.Context) {
	user, ok := currentUser(c, wc.Users)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	intake, err := wc.Water.RemoveLog(c.Request.Context(), user, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, intake)
}
