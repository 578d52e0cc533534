package ledger_test

import (
	"context"
	"time"

	"github.com/finora/backend/internal/events"
	"github.com/finora/backend/internal/ledger"
	"github.com/finora/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateOpensAndAccumulatesBucket() {
	food := suite.category("Food & Drinks")

	suite.create(models.Transaction{CategoryID: food.ID, Amount: decimal.NewFromFloat(10.5), Date: date(2024, time.June, 1)})

	b, ok := suite.balance(food.ID, 2024, time.June)
	suite.Require().True(ok)
	suite.assertDecimal(10.5, b.AmountExpense, "expense after first transaction")
	suite.assertDecimal(0, b.AmountIncome, "income side stays zero")

	suite.create(models.Transaction{CategoryID: food.ID, Amount: decimal.NewFromFloat(4.5), Date: date(2024, time.June, 30)})

	b, _ = suite.balance(food.ID, 2024, time.June)
	suite.assertDecimal(15, b.AmountExpense, "expense after second transaction")

	_, ok = suite.balance(food.ID, 2024, time.July)
	suite.Assert().False(ok, "other months are untouched")
}

func (suite *TestSuiteStandard) TestCreateDerivesTypeFromCategory() {
	salary := suite.category("Salary")

	t := suite.create(models.Transaction{CategoryID: salary.ID, Amount: decimal.NewFromFloat(3000), Date: date(2024, time.January, 25)})
	suite.Assert().Equal(models.TypeIncome, t.Type)

	b, ok := suite.balance(salary.ID, 2024, time.January)
	suite.Require().True(ok)
	suite.assertDecimal(3000, b.AmountIncome, "income")
	suite.assertDecimal(3000, b.Balance(), "balance")
}

func (suite *TestSuiteStandard) TestCreateRejectsAndRollsBack() {
	salary := suite.category("Salary")

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Type mismatch", models.Transaction{CategoryID: salary.ID, Type: models.TypeExpense, Amount: decimal.NewFromFloat(5)}, models.ErrTransactionTypeMismatch},
		{"Zero amount", models.Transaction{CategoryID: salary.ID, Amount: decimal.Zero}, models.ErrTransactionAmountNotPositive},
		{"Invalid type", models.Transaction{CategoryID: salary.ID, Type: "gift", Amount: decimal.NewFromFloat(1)}, models.ErrTransactionTypeInvalid},
		{"No category and no rule", models.Transaction{Description: "unknown", Amount: decimal.NewFromFloat(1)}, ledger.ErrCategoryMissing},
	}

	for _, tt := range tests {
		tt.transaction.UserID = suite.user.ID
		err := ledger.Create(context.Background(), models.DB, &tt.transaction)
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	suite.Require().Nil(models.DB.Model(&models.MonthlyBalance{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
	suite.Assert().Len(suite.recorder.events, 0)
}

func (suite *TestSuiteStandard) TestCreateUnknownCategory() {
	t := models.Transaction{UserID: suite.user.ID, CategoryID: uuid.New(), Amount: decimal.NewFromFloat(1)}
	err := ledger.Create(context.Background(), models.DB, &t)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCreateAppliesMatchRules() {
	subscriptions := suite.category("Subscriptions")
	suite.Require().Nil(models.DB.Create(&models.MatchRule{UserID: suite.user.ID, CategoryID: subscriptions.ID, Match: "netflix*"}).Error)

	t := suite.create(models.Transaction{Description: "Netflix June", Amount: decimal.NewFromFloat(12.99), Date: date(2024, time.June, 3)})
	suite.Assert().Equal(subscriptions.ID, t.CategoryID)
	suite.Assert().Equal(models.TypeExpense, t.Type)

	_, ok := suite.balance(subscriptions.ID, 2024, time.June)
	suite.Assert().True(ok)
}

func (suite *TestSuiteStandard) TestCreateEmitsEvent() {
	food := suite.category("Food & Drinks")
	t := suite.create(models.Transaction{CategoryID: food.ID, Amount: decimal.NewFromFloat(7), Date: date(2023, time.December, 31)})

	suite.Require().Len(suite.recorder.events, 1)
	e := suite.recorder.events[0]
	suite.Assert().Equal(events.TransactionCreated, e.Type)
	suite.Assert().Equal(t.ID, e.TransactionID)
	suite.Assert().Equal(2023, e.Year)
	suite.Assert().Equal(12, e.Month)
	suite.Assert().Equal("expense", e.TransactionType)
}
