package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/brahimakil/OneLife-sub001/config"
	"github.com/brahimakil/OneLife-sub001/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

type testEnv struct {
	db       *gorm.DB
	users    *UserService
	subs     *SubscriptionService
	catalog  *CatalogService
	stats    *StatisticsService
	water    *WaterService
	food     *FoodService
	workouts *WorkoutService
	sleep    *SleepService
	prov     *ProvisioningService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	log := zap.NewNop()
	users := NewUserService(db, log)
	subs := NewSubscriptionService(db, log)
	catalog := NewCatalogService(db, log)
	stats := NewStatisticsService(db, log, users, nil)
	return &testEnv{
		db:       db,
		users:    users,
		subs:     subs,
		catalog:  catalog,
		stats:    stats,
		water:    NewWaterService(db, log, users, subs, catalog, stats),
		food:     NewFoodService(db, log, users, subs, catalog, stats),
		workouts: NewWorkoutService(db, log, users, subs, catalog, stats),
		sleep:    NewSleepService(db, log, users, subs, catalog, stats),
		prov:     NewProvisioningService(db, log, users, subs, catalog, time.Hour, ""),
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := &models.User{UID: uuid.NewString(), Email: email, Password: "irrelevant"}
	require.NoError(t, db.Create(u).Error)
	aliases := []models.UserAlias{
		{UserID: u.ID, Alias: u.UID},
		{UserID: u.ID, Alias: u.Email},
	}
	require.NoError(t, db.Create(&aliases).Error)
	return u
}

func seedPlan(t *testing.T, db *gorm.DB, routineID *uint) *models.Plan {
	t.Helper()
	plan := &models.Plan{
		Name:            "Cut",
		Calories:        2000,
		Proteins:        120,
		Carbohydrates:   220,
		Fats:            65,
		HydrationLiters: 2.5,
		SleepHours:      8,
		RoutineID:       routineID,
	}
	require.NoError(t, db.Create(plan).Error)
	return plan
}

func seedActiveSubscription(t *testing.T, db *gorm.DB, userUID string, planID uint) *models.Subscription {
	t.Helper()
	sub := &models.Subscription{UserUID: userUID, PlanID: planID, StartDate: time.Now(), Active: true}
	require.NoError(t, db.Create(sub).Error)
	return sub
}
