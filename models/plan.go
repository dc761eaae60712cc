package models

import (
	"time"

	"gorm.io/gorm"
)

// Plan holds a user's daily nutrition/hydration/sleep targets. Plans are
// immutable per revision; subscriptions point at a specific plan row.
type Plan struct {
	gorm.Model
	Name            string
	Calories        float64 // e.g. 2200 kcal
	Proteins        float64 // e.g. 120 g
	Carbohydrates   float64 // e.g. 275 g
	Fats            float64 // e.g. 70 g
	HydrationLiters float64 // e.g. 2.5 L
	SleepHours      float64 // e.g. 8 h
	RoutineID       *uint
}

// Subscription binds a user to a plan for an interval. At most one
// subscription may be active per user; enforced at activation time.
type Subscription struct {
	gorm.Model
	UserUID   string `gorm:"size:36;index;not null"`
	PlanID    uint   `gorm:"index;not null"`
	StartDate time.Time
	EndDate   *time.Time
	Active    bool `gorm:"index"`
}
