package v1

import (
	"net/http"

	"github.com/finora/backend/internal/auth"
	"github.com/finora/backend/internal/httputil"
	"github.com/finora/backend/internal/ledger"
	"github.com/finora/backend/internal/models"
	ez_uuid "github.com/finora/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterMonthlyBalanceRoutes registers the routes for monthly balances with
// the RouterGroup that is passed.
func RegisterMonthlyBalanceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonthlyBalanceList)
		r.GET("", GetMonthlyBalances)
		r.POST("", RebuildMonthlyBalances)
	}

	// Monthly Balance with ID
	{
		r.OPTIONS("/:id", OptionsMonthlyBalanceDetail)
		r.GET("/:id", GetMonthlyBalance)
	}
}

func userMonthlyBalance(c *gin.Context, id ez_uuid.UUID) (models.MonthlyBalance, error) {
	var balance models.MonthlyBalance
	err := models.DB.Where(&models.MonthlyBalance{UserID: auth.UserID(c)}).First(&balance, "id = ?", id.UUID).Error
	return balance, err
}

func newMonthlyBalances(c *gin.Context, balances []models.MonthlyBalance) ([]MonthlyBalance, error) {
	ids := make([]uuid.UUID, 0, len(balances))
	for _, balance := range balances {
		ids = append(ids, balance.CategoryID)
	}

	names, err := categoryNames(ids...)
	if err != nil {
		return nil, err
	}

	data := make([]MonthlyBalance, 0, len(balances))
	for _, balance := range balances {
		data = append(data, newMonthlyBalance(c, balance, names[balance.CategoryID]))
	}
	return data, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Monthly Balances
// @Success		204
// @Router			/v1/monthly-balances [options]
func OptionsMonthlyBalanceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Monthly Balances
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-balances/{id} [options]
func OptionsMonthlyBalanceDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = userMonthlyBalance(c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get monthly balances
// @Description	Returns the monthly balances of the authenticated user, newest month first
// @Tags			Monthly Balances
// @Produce		json
// @Success		200				{object}	MonthlyBalanceListResponse
// @Failure		400				{object}	MonthlyBalanceListResponse
// @Failure		500				{object}	MonthlyBalanceListResponse
// @Param			type			query		string	false	"Filter by category type, 'income' or 'expense'"
// @Param			category		query		string	false	"Filter by category ID"
// @Param			categoryName	query		string	false	"Filter by category name, ignoring case"
// @Param			year			query		int		false	"Filter by year"
// @Param			fromMonth		query		string	false	"Balances from this month on, YYYY-MM"
// @Param			untilMonth		query		string	false	"Balances until and including this month, YYYY-MM"
// @Param			offset			query		uint	false	"The offset of the first Monthly Balance returned. Defaults to 0."
// @Param			limit			query		int		false	"Maximum number of Monthly Balances to return. Defaults to 50."
// @Router			/v1/monthly-balances [get]
func GetMonthlyBalances(c *gin.Context) {
	var filter MonthlyBalanceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthlyBalanceListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if slices.Contains(setFields, "Type") && !filter.Type.Valid() {
		s := errTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthlyBalanceListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("monthly_balances.year DESC, monthly_balances.month DESC, monthly_balances.created_at ASC").
		Where(&models.MonthlyBalance{UserID: auth.UserID(c)}).
		Where(filter.model(), queryFields...)

	if filter.Type != "" || filter.CategoryName != "" {
		q = q.Joins("JOIN categories ON categories.id = monthly_balances.category_id")
	}

	if filter.Type != "" {
		q = q.Where("categories.type = ?", filter.Type)
	}

	if filter.CategoryName != "" {
		q = q.Where("LOWER(categories.name) = LOWER(?)", filter.CategoryName)
	}

	// Months are compared by their index so that ranges span years
	if !filter.FromMonth.IsZero() {
		q = q.Where("monthly_balances.year * 12 + monthly_balances.month - 1 >= ?", filter.FromMonth.Index())
	}

	if !filter.UntilMonth.IsZero() {
		q = q.Where("monthly_balances.year * 12 + monthly_balances.month - 1 <= ?", filter.UntilMonth.Index())
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var balances []models.MonthlyBalance
	err := q.Find(&balances).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	data, err := newMonthlyBalances(c, balances)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlyBalanceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get monthly balance
// @Description	Returns a specific monthly balance
// @Tags			Monthly Balances
// @Produce		json
// @Success		200	{object}	MonthlyBalanceResponse
// @Failure		400	{object}	MonthlyBalanceResponse
// @Failure		404	{object}	MonthlyBalanceResponse
// @Failure		500	{object}	MonthlyBalanceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-balances/{id} [get]
func GetMonthlyBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceResponse{
			Error: &e,
		})
		return
	}

	balance, err := userMonthlyBalance(c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceResponse{
			Error: &e,
		})
		return
	}

	names, err := categoryNames(balance.CategoryID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceResponse{
			Error: &e,
		})
		return
	}

	data := newMonthlyBalance(c, balance, names[balance.CategoryID])
	c.JSON(http.StatusOK, MonthlyBalanceResponse{Data: &data})
}

// @Summary		Rebuild monthly balances
// @Description	Recalculates all monthly balances of the authenticated user from their transactions and returns them
// @Tags			Monthly Balances
// @Produce		json
// @Success		200	{object}	MonthlyBalanceListResponse
// @Failure		500	{object}	MonthlyBalanceListResponse
// @Router			/v1/monthly-balances [post]
func RebuildMonthlyBalances(c *gin.Context) {
	balances, err := ledger.Rebuild(c.Request.Context(), models.DB, auth.UserID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	data, err := newMonthlyBalances(c, balances)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlyBalanceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Total: int64(len(data)),
			Limit: len(data),
		},
	})
}
