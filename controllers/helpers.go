package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/brahimakil/OneLife-sub001/models"
	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context, users *services.UserService) (*models.User, bool) {
	identity := c.GetString("identity")
	if identity == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}
	user, err := users.ByIdentifier(identity)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return user, true
}

// dayParam returns the date query param when given, today otherwise. The
// services reject values that do not normalize to a calendar day.
func dayParam(c *gin.Context) any {
	if d := c.Query("date"); d != "" {
		return d
	}
	return time.Now()
}

func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrActiveSubscriptionExists),
		errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidDay):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
