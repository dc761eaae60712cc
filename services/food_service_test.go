package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealMutationsTriggerRecalculation(t *testing.T) {
	env := newTestEnv(t)
	plan := seedPlan(t, env.db, nil)
	user := seedUser(t, env.db, "ana@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	_, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)

	ateAt := time.Date(2024, 3, 4, 12, 30, 0, 0, time.UTC)
	meal, err := env.food.AddMeal(context.Background(), user, "2024-03-04", "Lunch", ateAt, []MealItemRequest{
		{Name: "Chicken breast", Quantity: 200, Calories: 330, Proteins: 62, Carbohydrates: 0, Fats: 7.2},
		{Name: "Rice", Quantity: 150, Calories: 195, Proteins: 4, Carbohydrates: 42, Fats: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 525.0, meal.Calories)
	assert.Equal(t, 66.0, meal.Proteins)

	stat, err := env.stats.ForDay(user.UID, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 525.0, stat.Consumed.Calories)
	assert.Equal(t, 7.7, stat.Consumed.Fats)
	assert.Equal(t, 525.0, stat.Net.Calories)

	// Deleting the meal zeroes the day again, via the same trigger.
	require.NoError(t, env.food.RemoveMeal(context.Background(), user, meal.ID))

	stat, err = env.stats.ForDay(user.UID, "2024-03-04")
	require.NoError(t, err)
	assert.Zero(t, stat.Consumed.Calories)
	assert.Zero(t, stat.Net.Calories)
}

func TestSleepLogTriggersRecalculation(t *testing.T) {
	env := newTestEnv(t)
	plan := seedPlan(t, env.db, nil)
	user := seedUser(t, env.db, "ana@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	_, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)

	bed := time.Date(2024, 3, 3, 23, 0, 0, 0, time.UTC)
	wake := time.Date(2024, 3, 4, 6, 30, 0, 0, time.UTC)
	record, err := env.sleep.LogSleep(context.Background(), user, "2024-03-04", bed, wake, "good")
	require.NoError(t, err)
	assert.Equal(t, 7.5, record.Hours)

	stat, err := env.stats.ForDay(user.UID, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 7.5, stat.HoursSlept)
}
