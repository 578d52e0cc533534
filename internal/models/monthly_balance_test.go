package models_test

import (
	"time"

	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthlyBalanceBalance() {
	b := models.MonthlyBalance{
		Year:          2024,
		Month:         time.March,
		AmountIncome:  decimal.NewFromFloat(100),
		AmountExpense: decimal.NewFromFloat(150.5),
	}

	suite.Assert().True(decimal.NewFromFloat(-50.5).Equal(b.Balance()))
	suite.Assert().True(b.Amount(models.TypeExpense).Equal(b.AmountExpense))
	suite.Assert().True(b.Amount(models.TypeIncome).Equal(b.AmountIncome))
	suite.Assert().Equal(types.NewMonth(2024, time.March), b.Period())
}

func (suite *TestSuiteStandard) TestMonthlyBalanceBucketUnique() {
	user := suite.createTestUser(models.User{})
	food := suite.category("Food & Drinks")

	bucket := models.MonthlyBalance{UserID: user.ID, CategoryID: food.ID, Year: 2024, Month: time.May}
	suite.Require().Nil(models.DB.Create(&bucket).Error)

	duplicate := models.MonthlyBalance{UserID: user.ID, CategoryID: food.ID, Year: 2024, Month: time.May}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrMonthlyBalanceNotUnique)
}
