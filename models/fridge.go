package models

import (
	"gorm.io/gorm"
)

// DefaultFridgeName is the name of the fridge created lazily on a user's
// first fridge access.
const DefaultFridgeName = "Main Fridge"

type Fridge struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_fridge_owner_name"`
	User   User
	Name   string       `gorm:"not null;uniqueIndex:idx_fridge_owner_name"`
	Items  []FridgeItem `gorm:"constraint:OnDelete:CASCADE"`
}

// FridgeItem quantity never falls below 1: adds merge by name, and the
// only way down is removing the whole item or clearing the fridge.
type FridgeItem struct {
	gorm.Model
	FridgeID uint   `gorm:"not null;uniqueIndex:idx_fridge_item_name"`
	Name     string `gorm:"not null;uniqueIndex:idx_fridge_item_name"`
	Quantity int    `gorm:"not null;default:1"`
}
