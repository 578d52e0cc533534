package models

import (
	"time"

	"github.com/finora/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyBalance aggregates the transactions of one user in one category
// for one calendar month.
type MonthlyBalance struct {
	DefaultModel
	UserID        uuid.UUID       `gorm:"uniqueIndex:monthly_balance_bucket"`
	User          User            `json:"-"`
	CategoryID    uuid.UUID       `gorm:"uniqueIndex:monthly_balance_bucket"`
	Category      Category        `json:"-"`
	Year          int             `gorm:"uniqueIndex:monthly_balance_bucket"`
	Month         time.Month      `gorm:"uniqueIndex:monthly_balance_bucket"`
	AmountIncome  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AmountExpense decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// Balance is income minus expense.
func (b MonthlyBalance) Balance() decimal.Decimal {
	return b.AmountIncome.Sub(b.AmountExpense)
}

// Period returns the month the balance covers.
func (b MonthlyBalance) Period() types.Month {
	return types.NewMonth(b.Year, b.Month)
}

// Amount returns the aggregate for one side of the balance.
func (b MonthlyBalance) Amount(t TransactionType) decimal.Decimal {
	if t == TypeExpense {
		return b.AmountExpense
	}
	return b.AmountIncome
}
