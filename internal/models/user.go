package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account that owns transactions, balances and match rules.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Name         string
	Bio          string
	Currency     string // ISO 4217 code used to format amounts
	CountryCode  string // ISO 3166-1 alpha-2 code
	Avatar       string
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	u.Bio = strings.TrimSpace(u.Bio)
	u.Avatar = strings.TrimSpace(u.Avatar)
	u.Currency = strings.ToUpper(strings.TrimSpace(u.Currency))
	u.CountryCode = strings.ToUpper(strings.TrimSpace(u.CountryCode))

	return nil
}
