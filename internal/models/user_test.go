package models_test

import (
	"github.com/finora/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserNormalization() {
	user := suite.createTestUser(models.User{
		Email:       "  Jane.Doe@Example.COM ",
		Name:        " Jane ",
		Currency:    "eur",
		CountryCode: "de",
	})

	suite.Assert().Equal("jane.doe@example.com", user.Email)
	suite.Assert().Equal("Jane", user.Name)
	suite.Assert().Equal("EUR", user.Currency)
	suite.Assert().Equal("DE", user.CountryCode)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "twice@example.com"})

	err := models.DB.Create(&models.User{Email: "TWICE@example.com"}).Error
	suite.Assert().ErrorIs(err, models.ErrEmailNotUnique)
}
