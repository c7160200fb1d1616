package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account that can sign in to the API.
type User struct {
	DefaultModel
	Username     string `gorm:"uniqueIndex"`
	Email        string
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)

	return nil
}

func (u *User) AfterSave(_ *gorm.DB) error {
	if u.Username == "" {
		return ErrUsernameEmpty
	}

	return nil
}
