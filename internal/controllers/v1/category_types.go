package v1

import (
	"fmt"

	"github.com/finora/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // The transactions of the user in this category
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	Name        string                 `json:"name" example:"Food & Drinks"`                        // Name of the category
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"`       // Type of transactions the category is used for
	Description string                 `json:"description" example:"Groceries, restaurants, cafés"` // Description of the category
	Links       CategoryLinks          `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Type:         model.Type,
		Description:  model.Description,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                   // List of Categories
	Error      *string     `json:"error" example:"the type must be 'income' or 'expense'"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                             // Pagination information
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // Data for the Category
}

type CategoryQueryFilter struct {
	Type   models.TransactionType `form:"type"`                       // By type
	Name   string                 `form:"name" filterField:"false"`   // By name, ignoring case
	Offset uint                   `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int                    `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}
