package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category groups transactions. Categories are shared by all users and
// are either income or expense categories.
type Category struct {
	DefaultModel
	Name        string          `gorm:"uniqueIndex"`
	Type        TransactionType `gorm:"index"`
	Description string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	if !c.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}
