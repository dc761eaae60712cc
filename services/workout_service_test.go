package services

import (
	"context"
	"testing"

	"github.com/brahimakil/OneLife-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBenchPress(t *testing.T, env *testEnv) *models.Exercise {
	t.Helper()
	ex := &models.Exercise{
		UID:             "ex-bench",
		Name:            "Bench Press",
		DefaultSets:     3,
		DefaultReps:     8,
		RestSeconds:     90,
		CaloriesPerSet:  10,
		WaterLossPerSet: 0.05,
	}
	require.NoError(t, env.catalog.CreateExercise(ex))
	return ex
}

func TestPatchExerciseComputesBurnAndRecalculates(t *testing.T) {
	env := newTestEnv(t)
	seedBenchPress(t, env)
	plan := seedPlan(t, env.db, nil)
	user := seedUser(t, env.db, "ana@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	_, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)

	progress, err := env.workouts.AddExercise(context.Background(), user, "2024-03-04", "ex-bench", 3, 8)
	require.NoError(t, err)
	require.Len(t, progress.Exercises, 1)
	entryID := progress.Exercises[0].ID

	sets := 3
	done := true
	progress, err = env.workouts.PatchExercise(context.Background(), user, "2024-03-04", entryID, ExercisePatch{
		SetsCompleted: &sets,
		RepsPerSet:    []int{10, 10, 10},
		Completed:     &done,
	})
	require.NoError(t, err)

	// 10 × 3 × (10/8) = 37.5
	assert.Equal(t, 37.5, progress.CaloriesBurned)
	assert.Equal(t, 0.188, progress.WaterLoss)
	assert.Equal(t, 1, progress.CompletedCount)
	assert.Equal(t, 100.0, progress.CompletionPct)
	assert.True(t, progress.Completed)

	stat, err := env.stats.ForDay(user.UID, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 37.5, stat.Burned.Calories)
	assert.Equal(t, 0.188, stat.Burned.WaterLoss)
	assert.Equal(t, -37.5, stat.Net.Calories)
	assert.True(t, stat.WorkoutCompleted)
}

func TestRemoveExerciseRecalculates(t *testing.T) {
	env := newTestEnv(t)
	seedBenchPress(t, env)
	plan := seedPlan(t, env.db, nil)
	user := seedUser(t, env.db, "ana@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	_, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)

	progress, err := env.workouts.AddExercise(context.Background(), user, "2024-03-04", "ex-bench", 3, 8)
	require.NoError(t, err)
	entryID := progress.Exercises[0].ID

	sets := 3
	done := true
	_, err = env.workouts.PatchExercise(context.Background(), user, "2024-03-04", entryID, ExercisePatch{
		SetsCompleted: &sets,
		RepsPerSet:    []int{8, 8, 8},
		Completed:     &done,
	})
	require.NoError(t, err)

	progress, err = env.workouts.RemoveExercise(context.Background(), user, "2024-03-04", entryID)
	require.NoError(t, err)
	assert.Zero(t, progress.TotalCount)
	assert.Zero(t, progress.CaloriesBurned)
	assert.False(t, progress.Completed)

	stat, err := env.stats.ForDay(user.UID, "2024-03-04")
	require.NoError(t, err)
	assert.Zero(t, stat.Burned.Calories, "removal triggers recalculation")
	assert.False(t, stat.WorkoutCompleted)
}

func TestCallerSuppliedCaloriesWinOnPatch(t *testing.T) {
	env := newTestEnv(t)
	seedBenchPress(t, env)
	plan := seedPlan(t, env.db, nil)
	user := seedUser(t, env.db, "ana@example.com")
	seedActiveSubscription(t, env.db, user.UID, plan.ID)

	_, err := env.prov.RunOnce(context.Background(), monday)
	require.NoError(t, err)

	progress, err := env.workouts.AddExercise(context.Background(), user, "2024-03-04", "ex-bench", 3, 8)
	require.NoError(t, err)
	entryID := progress.Exercises[0].ID

	sets := 3
	override := 120.0
	progress, err = env.workouts.PatchExercise(context.Background(), user, "2024-03-04", entryID, ExercisePatch{
		SetsCompleted:  &sets,
		RepsPerSet:     []int{8, 8, 8},
		CaloriesBurned: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, 120.0, progress.CaloriesBurned)
}
