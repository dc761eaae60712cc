package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkoutProgress tracks one user's workout for one calendar day. Day is the
// canonical YYYY-MM-DD key in UTC; (owner_id, day) is unique for rows written
// under the canonical UID. OwnerID may hold a legacy email on old rows.
type WorkoutProgress struct {
	gorm.Model
	UID       string `gorm:"size:36;uniqueIndex;not null"`
	OwnerID   string `gorm:"size:255;not null;uniqueIndex:idx_workout_owner_day"`
	Day       string `gorm:"size:10;not null;uniqueIndex:idx_workout_owner_day"`
	DayOfWeek string `gorm:"size:10"`

	Exercises []WorkoutExercise `gorm:"foreignKey:ProgressID"`

	// Running totals, rebuilt whenever an exercise entry changes.
	CaloriesBurned      float64
	ProteinsBurned      float64
	CarbohydratesBurned float64
	FatsBurned          float64
	WaterLoss           float64 // liters
	CompletedCount      int
	TotalCount          int
	CompletionPct       float64
	Completed           bool
}

type WorkoutExercise struct {
	gorm.Model
	ProgressID  uint `gorm:"index;not null"`
	Position    int
	ExerciseUID string `gorm:"size:36"`
	Name        string
	Sets        int
	Reps        int
	RestSeconds int

	SetsCompleted int
	RepsPerSet    datatypes.JSONSlice[int]

	CaloriesBurned      float64
	ProteinsBurned      float64
	CarbohydratesBurned float64
	FatsBurned          float64
	WaterLoss           float64
	Completed           bool
}
