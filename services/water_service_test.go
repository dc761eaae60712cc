package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterMutationsTriggerRecalculation(t *testing.T) {
	env := newTestEnv(t)
	plan := seedPlan(t, env.db, nil)
	user := seedUser(t, env.db, "ana@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	_, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)

	at := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	_, err = env.water.AddLog(context.Background(), user, "2024-03-04", at, 1.0)
	require.NoError(t, err)
	intake, err := env.water.AddLog(context.Background(), user, "2024-03-04", at.Add(time.Hour), 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, intake.TotalLiters)

	stat, err := env.stats.ForDay(user.UID, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 1.5, stat.Consumed.Hydration)
	assert.Equal(t, 1.5, stat.Net.Hydration)

	// Removing a log recalculates too.
	require.Len(t, intake.Logs, 2)
	_, err = env.water.RemoveLog(context.Background(), user, intake.Logs[0].ID)
	require.NoError(t, err)

	stat, err = env.stats.ForDay(user.UID, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 0.5, stat.Consumed.Hydration)
}

func TestCreateWaterForDayConflicts(t *testing.T) {
	env := newTestEnv(t)
	plan := seedPlan(t, env.db, nil)
	user := seedUser(t, env.db, "ana@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	first, err := env.water.CreateForDay(context.Background(), user, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 2.5, first.TargetLiters, "target copied from the active plan")

	_, err = env.water.CreateForDay(context.Background(), user, "2024-03-04")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = env.water.CreateForDay(context.Background(), user, "bogus-date")
	assert.ErrorIs(t, err, ErrInvalidDay)
}
