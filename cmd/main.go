package main

import (
	"context"
	"os"
	"time"

	"github.com/brahimakil/OneLife-sub001/config"
	"github.com/brahimakil/OneLife-sub001/controllers"
	"github.com/brahimakil/OneLife-sub001/routes"
	"github.com/brahimakil/OneLife-sub001/services"
	"github.com/brahimakil/OneLife-sub001/utils"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	log := config.Logger
	defer log.Sync()

	config.InitDB()
	db := config.DB

	if err := utils.InitSES(); err != nil {
		log.Warn("SES unavailable, digest emails disabled", zap.Error(err))
	}

	interval := 24 * time.Hour
	if v := os.Getenv("PROVISION_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			interval = d
		} else {
			log.Warn("invalid PROVISION_INTERVAL, using default", zap.String("value", v))
		}
	}

	users := services.NewUserService(db, log)
	subs := services.NewSubscriptionService(db, log)
	catalog := services.NewCatalogService(db, log)
	hub := services.NewRealtimeHub()
	stats := services.NewStatisticsService(db, log, users, hub)
	water := services.NewWaterService(db, log, users, subs, catalog, stats)
	food := services.NewFoodService(db, log, users, subs, catalog, stats)
	workouts := services.NewWorkoutService(db, log, users, subs, catalog, stats)
	sleep := services.NewSleepService(db, log, users, subs, catalog, stats)
	provisioning := services.NewProvisioningService(db, log, users, subs, catalog, interval, os.Getenv("OPS_EMAIL"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go provisioning.RunForever(ctx)

	r := routes.SetupRouter(routes.Controllers{
		Auth:          controllers.NewAuthController(users),
		Catalog:       controllers.NewCatalogController(catalog),
		Subscriptions: controllers.NewSubscriptionController(users, subs),
		Water:         controllers.NewWaterController(users, water),
		Food:          controllers.NewFoodController(users, food),
		Workouts:      controllers.NewWorkoutController(users, workouts),
		Sleep:         controllers.NewSleepController(users, sleep),
		Statistics:    controllers.NewStatisticsController(users, stats),
		Admin:         controllers.NewAdminController(provisioning),
		Realtime:      controllers.NewRealtimeController(users, hub),
	})

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
