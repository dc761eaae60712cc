package routes

import (
	"github.com/brahimakil/OneLife-sub001/controllers"
	"github.com/brahimakil/OneLife-sub001/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth          *controllers.AuthController
	Catalog       *controllers.CatalogController
	Subscriptions *controllers.SubscriptionController
	Water         *controllers.WaterController
	Food          *controllers.FoodController
	Workouts      *controllers.WorkoutController
	Sleep         *controllers.SleepController
	Statistics    *controllers.StatisticsController
	Admin         *controllers.AdminController
	Realtime      *controllers.RealtimeController
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		// Catalog
		api.POST("/plans", c.Catalog.CreatePlan)
		api.GET("/plans", c.Catalog.ListPlans)
		api.GET("/plans/:id", c.Catalog.GetPlan)
		api.DELETE("/plans/:id", c.Catalog.DeletePlan)

		api.POST("/routines", c.Catalog.CreateRoutine)
		api.GET("/routines", c.Catalog.ListRoutines)
		api.GET("/routines/:id", c.Catalog.GetRoutine)
		api.DELETE("/routines/:id", c.Catalog.DeleteRoutine)

		api.POST("/exercises", c.Catalog.CreateExercise)
		api.GET("/exercises", c.Catalog.ListExercises)
		api.GET("/exercises/:uid", c.Catalog.GetExercise)
		api.PUT("/exercises/:uid", c.Catalog.UpdateExercise)
		api.DELETE("/exercises/:uid", c.Catalog.DeleteExercise)

		// Subscriptions
		api.POST("/subscriptions", c.Subscriptions.Create)
		api.GET("/subscriptions", c.Subscriptions.ListMine)
		api.GET("/subscriptions/active", c.Subscriptions.Active)
		api.PUT("/subscriptions/:id/activate", c.Subscriptions.Activate)
		api.PUT("/subscriptions/:id/deactivate", c.Subscriptions.Deactivate)

		// Daily tracking (all take an optional ?date=YYYY-MM-DD)
		api.POST("/water", c.Water.CreateForDay)
		api.GET("/water", c.Water.Get)
		api.POST("/water/logs", c.Water.AddLog)
		api.PUT("/water/logs/:id", c.Water.UpdateLog)
		api.DELETE("/water/logs/:id", c.Water.RemoveLog)

		api.POST("/food", c.Food.CreateForDay)
		api.GET("/food", c.Food.Get)
		api.POST("/food/meals", c.Food.AddMeal)
		api.DELETE("/food/meals/:id", c.Food.RemoveMeal)

		api.POST("/workout", c.Workouts.CreateForDay)
		api.GET("/workout", c.Workouts.Get)
		api.POST("/workout/exercises", c.Workouts.AddExercise)
		api.PATCH("/workout/exercises/:id", c.Workouts.PatchExercise)
		api.DELETE("/workout/exercises/:id", c.Workouts.RemoveExercise)

		api.POST("/sleep", c.Sleep.CreateForDay)
		api.GET("/sleep", c.Sleep.Get)
		api.PUT("/sleep", c.Sleep.LogSleep)

		// Derived statistics (read-only; writes belong to the engine)
		api.GET("/statistics", c.Statistics.Get)
		api.GET("/statistics/history", c.Statistics.History)

		// Realtime statistic updates
		api.GET("/ws/statistics", c.Realtime.StatisticsWS)

		// Manual provisioning trigger
		api.POST("/admin/provisioning/run", c.Admin.RunProvisioning)
	}

	return r
}
