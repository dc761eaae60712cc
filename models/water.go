package models

import (
	"time"

	"gorm.io/gorm"
)

// WaterIntake tracks one user's hydration for one calendar day.
type WaterIntake struct {
	gorm.Model
	UID     string `gorm:"size:36;uniqueIndex;not null"`
	OwnerID string `gorm:"size:255;not null;uniqueIndex:idx_water_owner_day"`
	Day     string `gorm:"size:10;not null;uniqueIndex:idx_water_owner_day"`

	TargetLiters float64
	TotalLiters  float64
	Logs         []WaterLog `gorm:"foreignKey:IntakeID"`
}

type WaterLog struct {
	gorm.Model
	IntakeID uint `gorm:"index;not null"`
	LoggedAt time.Time
	Liters   float64
}
