package v1

import (
	"net/http"
	"strconv"

	"github.com/finora/backend/internal/auth"
	"github.com/finora/backend/internal/currency"
	"github.com/finora/backend/internal/httputil"
	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

type SummaryQuery struct {
	Year  int         `form:"year" example:"2024"`     // Only this year
	Month types.Month `form:"month" example:"2024-03"` // Only this month, YYYY-MM. Takes precedence over the year
}

// Summary contains the totals of the user for a period.
type Summary struct {
	Period           string          `json:"period" example:"2024-03"`               // "YYYY-MM", "YYYY" or "all"
	Currency         string          `json:"currency" example:"IDR"`                 // Currency of the user
	Income           decimal.Decimal `json:"income" example:"5000000"`               // Sum of all income
	Expense          decimal.Decimal `json:"expense" example:"3250000"`              // Sum of all expenses
	Balance          decimal.Decimal `json:"balance" example:"1750000"`              // Income minus expenses
	IncomeFormatted  string          `json:"incomeFormatted" example:"Rp5,000,000"`  // Income in the currency of the user
	ExpenseFormatted string          `json:"expenseFormatted" example:"Rp3,250,000"` // Expenses in the currency of the user
	BalanceFormatted string          `json:"balanceFormatted" example:"Rp1,750,000"` // Balance in the currency of the user
}

type SummaryResponse struct {
	Error *string  `json:"error" example:"the type must be 'income' or 'expense'"` // The error, if any occurred
	Data  *Summary `json:"data"`                                                   // The summary
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns income, expense and balance totals of the authenticated user for a month, a year or all time
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			year	query		int		false	"Only this year"
// @Param			month	query		string	false	"Only this month, YYYY-MM"
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	var query SummaryQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	var user models.User
	err := models.DB.First(&user, "id = ?", auth.UserID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	period := "all"
	q := models.DB.Where(&models.MonthlyBalance{UserID: user.ID})
	if !query.Month.IsZero() {
		period = query.Month.String()
		q = q.Where("year = ? AND month = ?", query.Month.Year(), int(query.Month.Month()))
	} else if query.Year != 0 {
		period = strconv.Itoa(query.Year)
		q = q.Where("year = ?", query.Year)
	}

	var balances []models.MonthlyBalance
	err = q.Find(&balances).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, b := range balances {
		income = income.Add(b.AmountIncome)
		expense = expense.Add(b.AmountExpense)
	}
	balance := income.Sub(expense)

	c.JSON(http.StatusOK, SummaryResponse{
		Data: &Summary{
			Period:           period,
			Currency:         user.Currency,
			Income:           income,
			Expense:          expense,
			Balance:          balance,
			IncomeFormatted:  currency.Format(income, user.Currency),
			ExpenseFormatted: currency.Format(expense, user.Currency),
			BalanceFormatted: currency.Format(balance, user.Currency),
		},
	})
}
