package controllers

import (
	"net/http"
	"time"

	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Users *services.UserService
	Food  *services.FoodService
}

func NewFoodController(users *services.UserService, food *services.FoodService) *FoodController {
	return &FoodController{Users: users, Food: food}
}

func (fc *FoodController) CreateForDay(c *gin.Context) {
	user, ok := currentUser(c, fc.Users)
	if !ok {
		return
	}
	intake, err := fc.Food.CreateForDay(c.Request.Context(), user, dayParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, intake)
}

func (fc *FoodController) Get(c *gin.Context) {
	user, ok := currentUser(c, fc.Users)
	if !ok {
		return
	}
	intake, err := fc.Food.ForDay(user, dayParam(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, intake)
}

func (fc *FoodController) AddMeal(c *gin.Context) {
	user, ok := currentUser(c, fc.Users)
	if !ok {
		return
	}

	var req struct {
		Type  string                     `json:"type" binding:"required"`
		AteAt time.Time                  `json:"ate_at"`
		Items []services.MealItemRequest `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AteAt.IsZero() {
		req.AteAt = time.Now()
	}

	meal, err := fc.Food.AddMeal(c.Request.Context(), user, dayParam(c), req.Type, req.AteAt, req.Items)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (fc *FoodController) RemoveMeal(c *gin.Context) {
	user, ok := currentUser(c, fc.Users)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := fc.Food.RemoveMeal(c.Request.Context(), user, id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
