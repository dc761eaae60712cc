package services

import (
	"testing"

	"github.com/brahimakil/OneLife-sub001/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestApplyExerciseBurnScalesByReps(t *testing.T) {
	catalog := &models.Exercise{
		DefaultReps:         8,
		CaloriesPerSet:      10,
		ProteinsPerSet:      0.5,
		CarbohydratesPerSet: 1.2,
		FatsPerSet:          0.3,
		WaterLossPerSet:     0.05,
	}
	entry := &models.WorkoutExercise{
		SetsCompleted: 3,
		RepsPerSet:    datatypes.JSONSlice[int]{10, 10, 10},
	}

	ApplyExerciseBurn(entry, catalog)

	// 10 per set × 3 sets × (10/8 reps factor) = 37.5
	assert.Equal(t, 37.5, entry.CaloriesBurned)
	assert.Equal(t, 1.88, entry.ProteinsBurned)
	assert.Equal(t, 4.5, entry.CarbohydratesBurned)
	assert.Equal(t, 1.13, entry.FatsBurned)
	assert.Equal(t, 0.188, entry.WaterLoss)
}

func TestApplyExerciseBurnZeroSets(t *testing.T) {
	catalog := &models.Exercise{DefaultReps: 8, CaloriesPerSet: 10, WaterLossPerSet: 0.05}
	entry := &models.WorkoutExercise{SetsCompleted: 0}

	ApplyExerciseBurn(entry, catalog)

	assert.Zero(t, entry.CaloriesBurned)
	assert.Zero(t, entry.WaterLoss)
}

func TestApplyExerciseBurnCallerValueWins(t *testing.T) {
	catalog := &models.Exercise{DefaultReps: 8, CaloriesPerSet: 10}
	entry := &models.WorkoutExercise{
		SetsCompleted:  3,
		RepsPerSet:     datatypes.JSONSlice[int]{8, 8, 8},
		CaloriesBurned: 120,
	}

	ApplyExerciseBurn(entry, catalog)

	assert.Equal(t, 120.0, entry.CaloriesBurned)
	assert.Zero(t, entry.ProteinsBurned)
}

func TestApplyExerciseBurnMissingCatalog(t *testing.T) {
	entry := &models.WorkoutExercise{
		SetsCompleted: 3,
		RepsPerSet:    datatypes.JSONSlice[int]{8, 8, 8},
	}

	ApplyExerciseBurn(entry, nil)

	assert.Zero(t, entry.CaloriesBurned)
	assert.Zero(t, entry.WaterLoss)
}
