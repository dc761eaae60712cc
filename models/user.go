package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UID      string `gorm:"size:36;uniqueIndex;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	Disabled bool
}

// UserAlias records every identifier a user's daily records may have been
// written under. Older rows used the email as the owner key; new rows always
// use the UID. Lookups match owner_id against the full alias set.
type UserAlias struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"index;not null"`
	Alias  string `gorm:"size:255;uniqueIndex;not null"`
}
