package services

import (
	"context"
	"testing"
	"time"

	"github.com/brahimakil/OneLife-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-04 was a Monday.
var monday = time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

func seedRoutine(t *testing.T, env *testEnv) *models.Routine {
	t.Helper()
	routine := &models.Routine{
		Name: "Push/Pull",
		Exercises: []models.RoutineExercise{
			{DayOfWeek: "Monday", Position: 0, ExerciseUID: "ex-bench", Name: "Bench Press", Sets: 3, Reps: 8, RestSeconds: 90},
			{DayOfWeek: "Monday", Position: 1, ExerciseUID: "ex-row", Name: "Barbell Row", Sets: 3, Reps: 10, RestSeconds: 90},
			{DayOfWeek: "Tuesday", Position: 0, ExerciseUID: "ex-squat", Name: "Squat", Sets: 5, Reps: 5, RestSeconds: 180},
		},
	}
	require.NoError(t, env.catalog.CreateRoutine(routine))
	return routine
}

func TestProvisioningIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	routine := seedRoutine(t, env)
	plan := seedPlan(t, env.db, &routine.ID)
	user := seedUser(t, env.db, "ana@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	first, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 5, first.Created)
	assert.Equal(t, 0, first.Failed)

	second, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created, "second run must perform zero inserts")
	assert.Equal(t, 0, second.Failed)

	for _, model := range []any{
		&models.WorkoutProgress{}, &models.WaterIntake{}, &models.FoodIntake{},
		&models.SleepTracking{}, &models.DailyStatistic{},
	} {
		var count int64
		require.NoError(t, env.db.Model(model).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	}
}

func TestProvisioningShapesSkeletonsFromPlanAndRoutine(t *testing.T) {
	env := newTestEnv(t)
	routine := seedRoutine(t, env)
	plan := seedPlan(t, env.db, &routine.ID)
	user := seedUser(t, env.db, "ana@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	_, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)

	progress, err := env.workouts.ForDay(user, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, "Monday", progress.DayOfWeek)
	require.Len(t, progress.Exercises, 2, "only Monday's routine exercises")
	assert.Equal(t, "Bench Press", progress.Exercises[0].Name)
	assert.Equal(t, 2, progress.TotalCount)
	assert.False(t, progress.Completed)

	water, err := env.water.ForDay(user, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 2.5, water.TargetLiters)
	assert.Zero(t, water.TotalLiters)

	food, err := env.food.ForDay(user, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, food.TargetCalories)

	sleep, err := env.sleep.ForDay(user, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 8.0, sleep.TargetHours)

	stat, err := env.stats.ForDay(user.UID, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, stat.PlanTargets.Calories)
	assert.Zero(t, stat.Consumed.Calories)
	assert.False(t, stat.WorkoutCompleted)
}

func TestProvisioningSkipsUserWithoutActiveSubscription(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env.db, "noplan@example.com")

	summary, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Created)

	var count int64
	require.NoError(t, env.db.Model(&models.DailyStatistic{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProvisioningFindsRecordsWrittenUnderLegacyEmail(t *testing.T) {
	env := newTestEnv(t)
	plan := seedPlan(t, env.db, nil)
	user := seedUser(t, env.db, "legacy@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	// An old write path stored the water record under the email.
	require.NoError(t, env.db.Create(&models.WaterIntake{
		UID: "legacy-water", OwnerID: user.Email, Day: "2024-03-04",
	}).Error)

	summary, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Created, "water already exists under the email alias")

	var count int64
	require.NoError(t, env.db.Model(&models.WaterIntake{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProvisioningIsolatesPerUserFailures(t *testing.T) {
	env := newTestEnv(t)

	broken := seedUser(t, env.db, "broken@example.com")
	// Subscription pointing at a plan that no longer exists: user skipped.
	require.NoError(t, env.db.Create(&models.Subscription{
		UserUID: broken.UID, PlanID: 9999, StartDate: time.Now(), Active: true,
	}).Error)

	plan := seedPlan(t, env.db, nil)
	healthy := seedUser(t, env.db, "healthy@example.com")
	seedActiveSubscription(t, env.db, healthy.UID, plan.ID)

	summary, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Created, "healthy user fully provisioned")
	assert.Equal(t, 1, summary.Skipped, "user with missing plan skipped, not failed")

	_, err = env.stats.ForDay(healthy.UID, "2024-03-04")
	assert.NoError(t, err)
}
