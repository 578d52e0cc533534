package v1

import (
	"fmt"
	"time"

	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/internal/types"
	ez_uuid "github.com/finora/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MonthlyBalanceLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/monthly-balances/0b4b5bbc-8a4d-4e36-a4a0-6f3a1d5f0c8e"`                            // The monthly balance itself
	Category     string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                              // The category of the monthly balance
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f&month=2024-03"` // The transactions the balance is made of
}

// MonthlyBalance is the API representation of a MonthlyBalance. Monthly
// balances are maintained by the transaction endpoints and are read only.
type MonthlyBalance struct {
	models.DefaultModel
	CategoryID    uuid.UUID           `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`        // ID of the category
	CategoryName  string              `json:"categoryName" example:"Food & Drinks"`                             // Name of the category
	Year          int                 `json:"year" example:"2024"`                                              // Year of the balance
	Month         time.Month          `json:"month" example:"3" swaggertype:"integer" minimum:"1" maximum:"12"` // Month of the balance, 1 is January
	AmountIncome  decimal.Decimal     `json:"amountIncome" example:"0"`                                         // Sum of the income transactions
	AmountExpense decimal.Decimal     `json:"amountExpense" example:"512.35"`                                   // Sum of the expense transactions
	Balance       decimal.Decimal     `json:"balance" example:"-512.35"`                                        // Income minus expense
	Links         MonthlyBalanceLinks `json:"links"`
}

func newMonthlyBalance(c *gin.Context, model models.MonthlyBalance, categoryName string) MonthlyBalance {
	url := c.GetString(string(models.DBContextURL))

	return MonthlyBalance{
		DefaultModel:  model.DefaultModel,
		CategoryID:    model.CategoryID,
		CategoryName:  categoryName,
		Year:          model.Year,
		Month:         model.Month,
		AmountIncome:  model.AmountIncome,
		AmountExpense: model.AmountExpense,
		Balance:       model.Balance(),
		Links: MonthlyBalanceLinks{
			Self:         fmt.Sprintf("%s/v1/monthly-balances/%s", url, model.ID),
			Category:     fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s&month=%s", url, model.CategoryID, model.Period()),
		},
	}
}

type MonthlyBalanceListResponse struct {
	Data       []MonthlyBalance `json:"data"`                                                   // List of Monthly Balances
	Error      *string          `json:"error" example:"the type must be 'income' or 'expense'"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                             // Pagination information
}

type MonthlyBalanceResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *MonthlyBalance `json:"data"`                                                          // Data for the Monthly Balance
}

type MonthlyBalanceQueryFilter struct {
	Type         models.TransactionType `form:"type" filterField:"false"`         // Type of the category
	CategoryID   ez_uuid.UUID           `form:"category"`                         // ID of the category
	CategoryName string                 `form:"categoryName" filterField:"false"` // Name of the category, ignoring case
	Year         int                    `form:"year"`                             // Year of the balance
	FromMonth    types.Month            `form:"fromMonth" filterField:"false"`    // From this month on, YYYY-MM
	UntilMonth   types.Month            `form:"untilMonth" filterField:"false"`   // Until and including this month, YYYY-MM
	Offset       uint                   `form:"offset" filterField:"false"`       // The offset of the first Monthly Balance returned. Defaults to 0.
	Limit        int                    `form:"limit" filterField:"false"`        // Maximum number of Monthly Balances to return. Defaults to 50.
}

func (f MonthlyBalanceQueryFilter) model() models.MonthlyBalance {
	return models.MonthlyBalance{
		CategoryID: f.CategoryID.UUID,
		Year:       f.Year,
	}
}
