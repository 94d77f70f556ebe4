package models

import "gorm.io/gorm"

// WaitlistEntry is a persisted record of one visitor's interest signup.
// Email is the business key; the unique index is what makes duplicate
// detection safe under concurrent submissions of the same address.
type WaitlistEntry struct {
	gorm.Model
	Email    string `gorm:"not null;uniqueIndex"`
	Name     string
	Language string `gorm:"type:varchar(8);not null;default:en"`
}

// ModelRegistry lists every model handed to AutoMigrate in development.
var ModelRegistry = []interface{}{
	&WaitlistEntry{},
}
