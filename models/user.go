package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string
}

// UserSummary is the user shape returned by the API.
type UserSummary struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Summary falls back to the email when no display name was set.
func (u *User) Summary() UserSummary {
	name := u.Name
	if name == "" {
		name = u.Email
	}
	return UserSummary{ID: u.ID, Email: u.Email, Name: name}
}
