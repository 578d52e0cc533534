package ledger_test

import (
	"context"
	"time"

	"github.com/finora/backend/internal/events"
	"github.com/finora/backend/internal/ledger"
	"github.com/finora/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestUpdateAmount() {
	food := suite.category("Food & Drinks")
	t := suite.create(models.Transaction{CategoryID: food.ID, Amount: decimal.NewFromFloat(20), Date: date(2024, time.March, 5)})
	suite.create(models.Transaction{CategoryID: food.ID, Amount: decimal.NewFromFloat(5), Date: date(2024, time.March, 6)})

	err := ledger.Update(context.Background(), models.DB, &t, []any{"Amount"}, models.Transaction{Amount: decimal.NewFromFloat(12)})
	suite.Require().Nil(err)
	suite.assertDecimal(12, t.Amount, "returned transaction")

	b, _ := suite.balance(food.ID, 2024, time.March)
	suite.assertDecimal(17, b.AmountExpense, "bucket after update")

	suite.Require().Len(suite.recorder.events, 3)
	suite.Assert().Equal(events.TransactionUpdated, suite.recorder.events[2].Type)
}

func (suite *TestSuiteStandard) TestUpdateMovesBetweenMonths() {
	food := suite.category("Food & Drinks")
	t := suite.create(models.Transaction{CategoryID: food.ID, Amount: decimal.NewFromFloat(30), Date: date(2024, time.January, 31)})

	err := ledger.Update(context.Background(), models.DB, &t, []any{"Date"}, models.Transaction{Date: date(2024, time.February, 1)})
	suite.Require().Nil(err)

	jan, ok := suite.balance(food.ID, 2024, time.January)
	suite.Require().True(ok)
	suite.assertDecimal(0, jan.AmountExpense, "old bucket is emptied")

	feb, ok := suite.balance(food.ID, 2024, time.February)
	suite.Require().True(ok)
	suite.assertDecimal(30, feb.AmountExpense, "new bucket holds the amount")
}

func (suite *TestSuiteStandard) TestUpdateStoresDateInUTC() {
	food := suite.category("Food & Drinks")
	t := suite.create(models.Transaction{CategoryID: food.ID, Amount: decimal.NewFromFloat(10), Date: date(2024, time.February, 10)})

	// 23:00 on March 31st in UTC-5 is April 1st in UTC
	local := time.Date(2024, time.March, 31, 23, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	err := ledger.Update(context.Background(), models.DB, &t, []any{"Date"}, models.Transaction{Date: local})
	suite.Require().Nil(err)
	suite.Assert().Equal(time.UTC, t.Date.Location())

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Where("date >= date(?) AND date < date(?)", date(2024, time.April, 1), date(2024, time.May, 1)).Count(&count).Error)
	suite.Assert().Equal(int64(1), count, "stored date sorts into April")

	april, ok := suite.balance(food.ID, 2024, time.April)
	suite.Require().True(ok)
	suite.assertDecimal(10, april.AmountExpense, "April bucket")

	march, _ := suite.balance(food.ID, 2024, time.March)
	suite.assertDecimal(0, march.AmountExpense, "March bucket")
}

func (suite *TestSuiteStandard) TestUpdateCategoryDerivesType() {
	refund := suite.category("Refund")
	shopping := suite.category("Shopping")
	t := suite.create(models.Transaction{CategoryID: shopping.ID, Amount: decimal.NewFromFloat(80), Date: date(2024, time.May, 10)})

	err := ledger.Update(context.Background(), models.DB, &t, []any{"CategoryID"}, models.Transaction{CategoryID: refund.ID})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.TypeIncome, t.Type)

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, "id = ?", t.ID).Error)
	suite.Assert().Equal(models.TypeIncome, stored.Type)

	old, _ := suite.balance(shopping.ID, 2024, time.May)
	suite.assertDecimal(0, old.AmountExpense, "shopping bucket")

	b, ok := suite.balance(refund.ID, 2024, time.May)
	suite.Require().True(ok)
	suite.assertDecimal(80, b.AmountIncome, "refund bucket")
}

func (suite *TestSuiteStandard) TestUpdateInvalidRollsBack() {
	food := suite.category("Food & Drinks")
	salary := suite.category("Salary")
	t := suite.create(models.Transaction{CategoryID: food.ID, Amount: decimal.NewFromFloat(9), Date: date(2024, time.April, 1)})

	tests := []struct {
		name   string
		fields []any
		update models.Transaction
		err    error
	}{
		{"Zero amount", []any{"Amount"}, models.Transaction{Amount: decimal.Zero}, models.ErrTransactionAmountNotPositive},
		{"Explicit type mismatch", []any{"CategoryID", "Type"}, models.Transaction{CategoryID: salary.ID, Type: models.TypeExpense}, models.ErrTransactionTypeMismatch},
	}

	for _, tt := range tests {
		err := ledger.Update(context.Background(), models.DB, &t, tt.fields, tt.update)
		suite.Assert().ErrorIs(err, tt.err, tt.name)
		suite.assertDecimal(9, t.Amount, tt.name)
	}

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, "id = ?", t.ID).Error)
	suite.assertDecimal(9, stored.Amount, "stored amount")
	suite.Assert().Equal(food.ID, stored.CategoryID)

	b, _ := suite.balance(food.ID, 2024, time.April)
	suite.assertDecimal(9, b.AmountExpense, "bucket unchanged")
}
