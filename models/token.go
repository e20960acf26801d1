package models

import (
	"gorm.io/gorm"
)

// Token is an opaque bearer credential. The unique UserID index keeps it
// to one live token per user; repeated logins hand back the same key.
type Token struct {
	gorm.Model
	Key    string `gorm:"uniqueIndex;not null"`
	UserID uint   `gorm:"uniqueIndex;not null"`
	User   User
}
