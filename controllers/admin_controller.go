package controllers

import (
	"net/http"
	"time"

	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Provisioning *services.ProvisioningService
}

func NewAdminController(prov *services.ProvisioningService) *AdminController {
	return &AdminController{Provisioning: prov}
}

// RunProvisioning triggers the daily provisioning routine synchronously.
func (ac *AdminController) RunProvisioning(c *gin.Context) {
	summary, err := ac.Provisioning.RunOnce(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "summary": summary})
}
