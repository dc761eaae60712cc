package controllers

import (
	"net/http"
	"time"

	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	Users *services.UserService
	Subs  *services.SubscriptionService
}

func NewSubscriptionController(users *services.UserService, subs *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{Users: users, Subs: subs}
}

func (sc *SubscriptionController) Create(c *gin.Context) {
	user, ok := currentUser(c, sc.Users)
	if !ok {
		return
	}

	var req struct {
		PlanID    uint       `json:"plan_id" binding:"required"`
		StartDate time.Time  `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
		Activate  bool       `json:"activate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.StartDate.IsZero() {
		req.StartDate = time.Now()
	}

	sub, err := sc.Subs.Create(user.UID, req.PlanID, req.StartDate, req.EndDate, req.Activate)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (sc *SubscriptionController) Activate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	sub, err := sc.Subs.Activate(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (sc *SubscriptionController) Deactivate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := sc.Subs.Deactivate(id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (sc *SubscriptionController) ListMine(c *gin.Context) {
	user, ok := currentUser(c, sc.Users)
	if !ok {
		return
	}
	subs, err := sc.Subs.ListFor(user.UID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (sc *SubscriptionController) Active(c *gin.Context) {
	user, ok := currentUser(c, sc.Users)
	if !ok {
		return
	}
	sub, err := sc.Subs.ActiveFor(user.UID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
