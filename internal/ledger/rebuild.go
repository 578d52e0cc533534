package ledger

import (
	"context"
	"sort"

	"github.com/finora/backend/internal/events"
	"github.com/finora/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Rebuild recalculates all monthly balances of the user from their
// transactions and replaces the stored ones.
func Rebuild(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]models.MonthlyBalance, error) {
	var balances []models.MonthlyBalance

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where(&models.MonthlyBalance{UserID: userID}).Delete(&models.MonthlyBalance{}).Error
		if err != nil {
			return err
		}

		var transactions []models.Transaction
		err = tx.Where(&models.Transaction{UserID: userID}).Find(&transactions).Error
		if err != nil {
			return err
		}

		balances = Aggregate(transactions)
		if len(balances) == 0 {
			return nil
		}

		return tx.Create(&balances).Error
	})
	if err != nil {
		return nil, err
	}

	events.Emit(ctx, events.Event{Type: events.BalancesRebuilt, UserID: userID, Amount: decimal.Zero})
	return balances, nil
}

// Aggregate sums transactions into monthly balances, newest month first.
func Aggregate(transactions []models.Transaction) []models.MonthlyBalance {
	index := make(map[bucket]int)
	balances := make([]models.MonthlyBalance, 0)

	for _, t := range transactions {
		b := bucketOf(t)
		i, ok := index[b]
		if !ok {
			balances = append(balances, models.MonthlyBalance{
				UserID:        b.UserID,
				CategoryID:    b.CategoryID,
				Year:          b.Year,
				Month:         b.Month,
				AmountIncome:  decimal.Zero,
				AmountExpense: decimal.Zero,
			})
			i = len(balances) - 1
			index[b] = i
		}

		add(&balances[i], t.Type, t.Amount)
	}

	sort.SliceStable(balances, func(i, j int) bool {
		if balances[i].Year != balances[j].Year {
			return balances[i].Year > balances[j].Year
		}
		return balances[i].Month > balances[j].Month
	})

	return balances
}
