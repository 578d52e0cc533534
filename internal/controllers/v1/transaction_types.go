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

type TransactionEditable struct {
	CategoryID uuid.UUID              `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category. When empty, the match rules are applied to the description
	Type       models.TransactionType `json:"type" example:"expense" enums:"income,expense"`             // Type of the transaction. Defaults to the type of the category

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction, always positive

	Date        time.Time `json:"date" example:"2024-03-09T12:00:00Z"`    // Date of the transaction. Defaults to now
	Description string    `json:"description" example:"Lunch" default:""` // A description
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		CategoryID:  editable.CategoryID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the transaction
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	CategoryName string           `json:"categoryName" example:"Food & Drinks"` // Name of the category
	Links        TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource. categoryName
// is passed in since transactions are listed with names looked up in bulk.
func newTransaction(c *gin.Context, model models.Transaction, categoryName string) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			CategoryID:  model.CategoryID,
			Type:        model.Type,
			Amount:      model.Amount,
			Date:        model.Date,
			Description: model.Description,
		},
		CategoryName: categoryName,
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the transaction amount must be positive"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                    // The Transaction data, if creation was successful
}

// transactionSorts maps the sort parameter to the column. Timestamps are
// stored as UTC with nanoseconds and sort correctly as text, datetime()
// would truncate them to seconds.
var transactionSorts = map[string]string{
	"createdAt": "transactions.created_at",
	"updatedAt": "transactions.updated_at",
	"date":      "transactions.date",
	"amount":    "transactions.amount",
}

type TransactionQueryFilter struct {
	Type              models.TransactionType `form:"type"`                                                                // Type of the transaction
	CategoryID        ez_uuid.UUID           `form:"category"`                                                            // ID of the category
	CategoryName      string                 `form:"categoryName" filterField:"false"`                                    // Name of the category, ignoring case
	Year              int                    `form:"year" filterField:"false"`                                            // Year of the date
	Month             types.Month            `form:"month" filterField:"false"`                                           // Month of the date in YYYY-MM format
	FromDate          time.Time              `form:"fromDate" time_format:"2006-01-02" time_utc:"1" filterField:"false"`  // From this date. Time is ignored.
	UntilDate         time.Time              `form:"untilDate" time_format:"2006-01-02" time_utc:"1" filterField:"false"` // Until this date. Time is ignored.
	Search            string                 `form:"search" filterField:"false"`                                          // Description or category name starts with this, "*" matches anything
	AmountLessOrEqual decimal.Decimal        `form:"amountLessOrEqual" filterField:"false"`                               // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal        `form:"amountMoreOrEqual" filterField:"false"`                               // Amount more than or equal to this
	Sort              string                 `form:"sort" filterField:"false"`                                            // One of createdAt, updatedAt, date and amount. Defaults to createdAt
	Order             string                 `form:"order" filterField:"false"`                                           // asc or desc. Defaults to desc
	Offset            uint                   `form:"offset" filterField:"false"`                                          // The offset of the first Transaction returned. Defaults to 0.
	Limit             int                    `form:"limit" filterField:"false"`                                           // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// The string and date fields are handled in the controller function
	return models.Transaction{
		Type:       f.Type,
		CategoryID: f.CategoryID.UUID,
	}
}
