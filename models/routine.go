package models

import (
	"gorm.io/gorm"
)

// Routine maps weekday names to an ordered list of exercise specs.
type Routine struct {
	gorm.Model
	Name      string
	Exercises []RoutineExercise
}

type RoutineExercise struct {
	gorm.Model
	RoutineID   uint   `gorm:"index;not null"`
	DayOfWeek   string `gorm:"size:10;index"` // "Monday" .. "Sunday"
	Position    int
	ExerciseUID string `gorm:"size:36"` // catalog exercise
	Name        string
	Sets        int
	Reps        int
	RestSeconds int
}

// Exercise is the catalog record carrying the per-set exertion baseline the
// calculator scales by actual performed volume.
type Exercise struct {
	gorm.Model
	UID                 string `gorm:"size:36;uniqueIndex;not null"`
	Name                string
	DefaultSets         int
	DefaultReps         int
	RestSeconds         int
	CaloriesPerSet      float64
	ProteinsPerSet      float64
	CarbohydratesPerSet float64
	FatsPerSet          float64
	WaterLossPerSet     float64 // liters
}
