package models_test

import (
	"testing"
	"time"

	"github.com/finora/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionValidate() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Valid income", models.Transaction{Type: models.TypeIncome, Amount: decimal.NewFromFloat(10)}, nil},
		{"Valid expense", models.Transaction{Type: models.TypeExpense, Amount: decimal.NewFromFloat(0.01)}, nil},
		{"Zero amount", models.Transaction{Type: models.TypeExpense, Amount: decimal.Zero}, models.ErrTransactionAmountNotPositive},
		{"Negative amount", models.Transaction{Type: models.TypeIncome, Amount: decimal.NewFromFloat(-5)}, models.ErrTransactionAmountNotPositive},
		{"Unknown type", models.Transaction{Type: "transfer", Amount: decimal.NewFromFloat(5)}, models.ErrTransactionTypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.err, tt.transaction.Validate())
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionBeforeSave() {
	user := suite.createTestUser(models.User{})
	food := suite.category("Food & Drinks")

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		CategoryID:  food.ID,
		Type:        models.TypeExpense,
		Amount:      decimal.NewFromFloat(12.5),
		Description: "  Lunch \t",
	})

	suite.Assert().Equal("Lunch", transaction.Description)
	suite.Assert().False(transaction.Date.IsZero())
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateUTCAfterFind() {
	user := suite.createTestUser(models.User{})
	salary := suite.category("Salary")

	berlin := time.FixedZone("CEST", 2*60*60)
	created := suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		CategoryID: salary.ID,
		Type:       models.TypeIncome,
		Amount:     decimal.NewFromFloat(3000),
		Date:       time.Date(2024, 6, 1, 1, 0, 0, 0, berlin),
	})

	var loaded models.Transaction
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", created.ID).Error)
	suite.Assert().True(time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC).Equal(loaded.Date), loaded.Date.String())
	suite.Assert().Equal(time.UTC, loaded.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionSigned() {
	amount := decimal.NewFromFloat(42)

	suite.Assert().True(models.Transaction{Type: models.TypeIncome, Amount: amount}.Signed().Equal(amount))
	suite.Assert().True(models.Transaction{Type: models.TypeExpense, Amount: amount}.Signed().Equal(amount.Neg()))
}
