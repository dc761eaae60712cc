package services

import (
	"github.com/brahimakil/OneLife-sub001/models"
	"github.com/brahimakil/OneLife-sub001/utils"
)

// ApplyExerciseBurn fills the burn dimensions of a workout entry from the
// catalog's per-set baseline, scaled by actual performed volume:
//
//	repsFactor = averageRepsPerformedPerSet / catalogDefaultReps
//	burn       = perSetBaseline × setsCompleted × repsFactor
//
// A caller-supplied positive calorie value wins and the entry is left alone.
// A missing catalog record also leaves the entry alone. Zero completed sets
// contribute zero burn.
func ApplyExerciseBurn(e *models.WorkoutExercise, catalog *models.Exercise) {
	if e.CaloriesBurned > 0 {
		return
	}
	if catalog == nil {
		return
	}

	repsFactor := 0.0
	if e.SetsCompleted > 0 && catalog.DefaultReps > 0 {
		total := 0
		for _, reps := range e.RepsPerSet {
			total += reps
		}
		avgReps := float64(total) / float64(e.SetsCompleted)
		repsFactor = avgReps / float64(catalog.DefaultReps)
	}

	volume := float64(e.SetsCompleted) * repsFactor
	e.CaloriesBurned = utils.Round2(catalog.CaloriesPerSet * volume)
	e.ProteinsBurned = utils.Round2(catalog.ProteinsPerSet * volume)
	e.CarbohydratesBurned = utils.Round2(catalog.CarbohydratesPerSet * volume)
	e.FatsBurned = utils.Round2(catalog.FatsPerSet * volume)
	e.WaterLoss = utils.Round3(catalog.WaterLossPerSet * volume)
}
