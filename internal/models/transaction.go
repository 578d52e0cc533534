package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single income or expense of a user.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	User        User      `json:"-"`
	CategoryID  uuid.UUID `gorm:"index"`
	Category    Category  `json:"-"`
	Type        TransactionType
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time       `gorm:"index"`
	Description string
}

// AfterFind sets the date to UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave trims the description and defaults the date to now.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// Validate checks the fields that do not depend on other resources.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	return nil
}

// Signed returns the amount with a negative sign for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
