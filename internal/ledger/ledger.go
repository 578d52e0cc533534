// Package ledger mutates transactions and keeps the monthly balances in
// step with them. Every mutation and its balance adjustment are committed
// in a single database transaction.
package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/finora/backend/internal/events"
	"github.com/finora/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var ErrCategoryMissing = errors.New("the transaction needs a category and no match rule matched its description")

// bucket identifies one monthly balance.
type bucket struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Year       int
	Month      time.Month
}

func bucketOf(t models.Transaction) bucket {
	date := t.Date.In(time.UTC)
	return bucket{
		UserID:     t.UserID,
		CategoryID: t.CategoryID,
		Year:       date.Year(),
		Month:      date.Month(),
	}
}

// Create stores the transaction and adds its amount to its monthly balance.
//
// Without a category, the user's match rules are applied to the description.
// Without a type, the type of the category is used.
func Create(ctx context.Context, db *gorm.DB, t *models.Transaction) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if t.CategoryID == uuid.Nil {
			id, ok, err := models.MatchCategory(tx, t.UserID, t.Description)
			if err != nil {
				return err
			}
			if !ok {
				return ErrCategoryMissing
			}
			t.CategoryID = id
		}

		if err := resolve(tx, t, t.Type == ""); err != nil {
			return err
		}

		if err := tx.Create(t).Error; err != nil {
			return err
		}

		return apply(tx, bucketOf(*t), t.Type, t.Amount)
	})
	if err != nil {
		return err
	}

	events.Emit(ctx, event(events.TransactionCreated, *t))
	return nil
}

// Update applies the fields of update that are listed in fields to t.
//
// The old amount is removed from the monthly balance the transaction was
// in and the new amount is added to the one it is in now. When the
// category changes and the type is not part of the update, the type of
// the new category is used.
func Update(ctx context.Context, db *gorm.DB, t *models.Transaction, fields []any, update models.Transaction) error {
	old := *t

	// Hooks only run on t, so update is normalized here. Dates are stored
	// in UTC for the month filters to match the balances.
	if slices.Contains(fields, any("Date")) && update.Date.IsZero() {
		update.Date = time.Now()
	}
	update.Date = update.Date.In(time.UTC)
	update.Description = strings.TrimSpace(update.Description)

	var updated models.Transaction
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Checked before the update so that a missing category is reported
		// as such and not as a foreign key violation
		if slices.Contains(fields, any("CategoryID")) {
			if err := tx.First(&models.Category{}, "id = ?", update.CategoryID).Error; err != nil {
				return err
			}
		}

		if len(fields) > 0 {
			if err := tx.Model(t).Select("", fields...).Updates(update).Error; err != nil {
				return err
			}
		}

		if err := tx.First(&updated, "id = ?", old.ID).Error; err != nil {
			return err
		}

		stored := updated.Type
		deriveType := !slices.Contains(fields, any("Type")) && updated.CategoryID != old.CategoryID
		if err := resolve(tx, &updated, deriveType); err != nil {
			return err
		}

		if updated.Type != stored {
			if err := tx.Model(&updated).Update("Type", updated.Type).Error; err != nil {
				return err
			}
		}

		if err := apply(tx, bucketOf(old), old.Type, old.Amount.Neg()); err != nil {
			return err
		}

		return apply(tx, bucketOf(updated), updated.Type, updated.Amount)
	})
	if err != nil {
		*t = old
		return err
	}

	*t = updated
	events.Emit(ctx, event(events.TransactionUpdated, updated))
	return nil
}

// Delete removes the transaction and subtracts its amount from its
// monthly balance.
func Delete(ctx context.Context, db *gorm.DB, t models.Transaction) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&t).Error; err != nil {
			return err
		}

		return apply(tx, bucketOf(t), t.Type, t.Amount.Neg())
	})
	if err != nil {
		return err
	}

	events.Emit(ctx, event(events.TransactionDeleted, t))
	return nil
}

// resolve checks that the category exists and that its type matches the
// type of the transaction. With deriveType, the category type is used.
func resolve(tx *gorm.DB, t *models.Transaction, deriveType bool) error {
	var category models.Category
	if err := tx.First(&category, "id = ?", t.CategoryID).Error; err != nil {
		return err
	}

	if deriveType {
		t.Type = category.Type
	}

	if err := t.Validate(); err != nil {
		return err
	}

	if t.Type != category.Type {
		return models.ErrTransactionTypeMismatch
	}

	return nil
}

// apply adds delta to one side of the monthly balance for b, creating the
// balance if needed. Sides never drop below zero.
func apply(tx *gorm.DB, b bucket, typ models.TransactionType, delta decimal.Decimal) error {
	var balance models.MonthlyBalance
	err := tx.Where(&models.MonthlyBalance{
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Year:       b.Year,
		Month:      b.Month,
	}).First(&balance).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		if !delta.IsPositive() {
			return nil
		}

		balance = models.MonthlyBalance{
			UserID:        b.UserID,
			CategoryID:    b.CategoryID,
			Year:          b.Year,
			Month:         b.Month,
			AmountIncome:  decimal.Zero,
			AmountExpense: decimal.Zero,
		}
		add(&balance, typ, delta)
		return tx.Create(&balance).Error
	} else if err != nil {
		return err
	}

	add(&balance, typ, delta)
	return tx.Model(&balance).Select("AmountIncome", "AmountExpense").Updates(models.MonthlyBalance{
		AmountIncome:  balance.AmountIncome,
		AmountExpense: balance.AmountExpense,
	}).Error
}

func add(b *models.MonthlyBalance, typ models.TransactionType, delta decimal.Decimal) {
	if typ == models.TypeExpense {
		b.AmountExpense = decimal.Max(decimal.Zero, b.AmountExpense.Add(delta))
		return
	}
	b.AmountIncome = decimal.Max(decimal.Zero, b.AmountIncome.Add(delta))
}

func event(kind string, t models.Transaction) events.Event {
	b := bucketOf(t)
	return events.Event{
		Type:            kind,
		UserID:          t.UserID,
		TransactionID:   t.ID,
		CategoryID:      t.CategoryID,
		TransactionType: string(t.Type),
		Amount:          t.Amount,
		Year:            b.Year,
		Month:           int(b.Month),
	}
}
