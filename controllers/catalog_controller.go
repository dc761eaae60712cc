package controllers

import (
	"net/http"
	"strconv"

	"github.com/brahimakil/OneLife-sub001/models"
	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(cat *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: cat}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// Plans

func (ct *CatalogController) CreatePlan(c *gin.Context) {
	var plan models.Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ct.Catalog.CreatePlan(&plan); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (ct *CatalogController) GetPlan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	plan, err := ct.Catalog.Plan(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ct *CatalogController) ListPlans(c *gin.Context) {
	plans, err := ct.Catalog.ListPlans()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (ct *CatalogController) DeletePlan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ct.Catalog.DeletePlan(id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Routines

func (ct *CatalogController) CreateRoutine(c *gin.Context) {
	var routine models.Routine
	if err := c.ShouldBindJSON(&routine); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ct.Catalog.CreateRoutine(&routine); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, routine)
}

func (ct *CatalogController) GetRoutine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	routine, err := ct.Catalog.Routine(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (ct *CatalogController) ListRoutines(c *gin.Context) {
	routines, err := ct.Catalog.ListRoutines()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, routines)
}

func (ct *CatalogController) DeleteRoutine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ct.Catalog.DeleteRoutine(id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Exercise catalog

func (ct *CatalogController) CreateExercise(c *gin.Context) {
	var ex models.Exercise
	if err := c.ShouldBindJSON(&ex); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ct.Catalog.CreateExercise(&ex); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, ex)
}

func (ct *CatalogController) GetExercise(c *gin.Context) {
	ex, err := ct.Catalog.ExerciseByUID(c.Param("uid"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (ct *CatalogController) ListExercises(c *gin.Context) {
	list, err := ct.Catalog.ListExercises()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ct *CatalogController) UpdateExercise(c *gin.Context) {
	ex, err := ct.Catalog.ExerciseByUID(c.Param("uid"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if err := c.ShouldBindJSON(ex); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ct.Catalog.UpdateExercise(ex); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (ct *CatalogController) DeleteExercise(c *gin.Context) {
	if err := ct.Catalog.DeleteExercise(c.Param("uid")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
