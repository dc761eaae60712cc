package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodIntake tracks one user's meals for one calendar day, with running day
// totals and the targets copied from the plan at provisioning time.
type FoodIntake struct {
	gorm.Model
	UID     string `gorm:"size:36;uniqueIndex;not null"`
	OwnerID string `gorm:"size:255;not null;uniqueIndex:idx_food_owner_day"`
	Day     string `gorm:"size:10;not null;uniqueIndex:idx_food_owner_day"`

	TargetCalories      float64
	TargetProteins      float64
	TargetCarbohydrates float64
	TargetFats          float64

	// Running day totals.
	Calories      float64
	Proteins      float64
	Carbohydrates float64
	Fats          float64

	Meals []Meal `gorm:"foreignKey:IntakeID"`
}

// One Meal (breakfast/lunch/...) with a per-meal nutrition total.
type Meal struct {
	gorm.Model
	IntakeID uint   `gorm:"index;not null"`
	Type     string `gorm:"size:20"` // "Breakfast"|"Lunch"|...
	AteAt    time.Time

	Calories      float64
	Proteins      float64
	Carbohydrates float64
	Fats          float64

	Items []MealItem `gorm:"foreignKey:MealID"`
}

type MealItem struct {
	gorm.Model
	MealID uint `gorm:"index;not null"`

	Name          string
	Quantity      float64 // grams
	Calories      float64
	Proteins      float64
	Carbohydrates float64
	Fats          float64
}
