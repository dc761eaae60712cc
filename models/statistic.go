package models

import (
	"gorm.io/gorm"
)

// DailyStatistic is the derived per-day rollup. It is created as a zeroed
// skeleton by provisioning and only ever mutated by the statistics service.
type DailyStatistic struct {
	gorm.Model
	UID     string `gorm:"size:36;uniqueIndex;not null"`
	OwnerID string `gorm:"size:255;not null;uniqueIndex:idx_stat_owner_day"`
	Day     string `gorm:"size:10;not null;uniqueIndex:idx_stat_owner_day"`

	Consumed ConsumedTotals `gorm:"embedded;embeddedPrefix:consumed_"`
	Burned   BurnedTotals   `gorm:"embedded;embeddedPrefix:burned_"`
	Net      NetTotals      `gorm:"embedded;embeddedPrefix:net_"`

	HoursSlept       float64
	WorkoutCompleted bool

	// Snapshot of the plan targets taken at provisioning time; never
	// re-derived by recalculation.
	PlanTargets PlanTargets `gorm:"embedded;embeddedPrefix:target_"`
}

type ConsumedTotals struct {
	Hydration     float64 // liters
	Calories      float64
	Proteins      float64
	Carbohydrates float64
	Fats          float64
}

type BurnedTotals struct {
	Calories      float64
	Proteins      float64
	Carbohydrates float64
	Fats          float64
	WaterLoss     float64 // liters
}

type NetTotals struct {
	Hydration     float64
	Calories      float64
	Proteins      float64
	Carbohydrates float64
	Fats          float64
}

type PlanTargets struct {
	Calories        float64
	Proteins        float64
	Carbohydrates   float64
	Fats            float64
	HydrationLiters float64
	SleepHours      float64
}
