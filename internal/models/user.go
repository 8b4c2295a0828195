package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is a person whose identity was confirmed by the authentication provider.
type User struct {
	DefaultModel
	Email   string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	Name    string `json:"name" example:"Jane Doe"`
	Picture string `json:"picture" example:"https://example.com/jane.png"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	return nil
}
