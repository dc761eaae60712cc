package models

import (
	"time"

	"gorm.io/gorm"
)

// SleepTracking records one user's sleep for one calendar day. TargetHours is
// sourced from the active plan when the record is provisioned.
type SleepTracking struct {
	gorm.Model
	UID     string `gorm:"size:36;uniqueIndex;not null"`
	OwnerID string `gorm:"size:255;not null;uniqueIndex:idx_sleep_owner_day"`
	Day     string `gorm:"size:10;not null;uniqueIndex:idx_sleep_owner_day"`

	BedTime     *time.Time
	WakeTime    *time.Time
	Hours       float64
	Quality     string `gorm:"size:20"` // "poor"|"fair"|"good"|"excellent"
	TargetHours float64
}
