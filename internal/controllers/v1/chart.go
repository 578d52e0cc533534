package v1

import (
	"net/http"
	"time"

	"github.com/finora/backend/internal/auth"
	"github.com/finora/backend/internal/charts"
	"github.com/finora/backend/internal/httputil"
	"github.com/finora/backend/internal/models"
	"github.com/finora/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterChartRoutes registers the routes for charts with
// the RouterGroup that is passed.
func RegisterChartRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCharts)
	r.GET("", GetCharts)

	for _, path := range []string{"/daily", "/range", "/balances", "/yearly"} {
		r.OPTIONS(path, OptionsCharts)
	}

	r.GET("/daily", GetDailyChart)
	r.GET("/range", GetRangeChart)
	r.GET("/balances", GetBalanceChart)
	r.GET("/yearly", GetYearlyChart)
}

type ChartQuery struct {
	Type       models.TransactionType `form:"type" example:"expense"`                                               // Type of the amounts. Defaults to expense
	Month      types.Month            `form:"month" example:"2024-03"`                                              // Month for the daily chart, YYYY-MM
	FromDate   time.Time              `form:"fromDate" time_format:"2006-01-02" time_utc:"1" example:"2024-01-01"`  // First day of the range chart
	UntilDate  time.Time              `form:"untilDate" time_format:"2006-01-02" time_utc:"1" example:"2024-12-31"` // Last day of the range chart
	FromMonth  types.Month            `form:"fromMonth" example:"2023-04"`                                          // First month of the balance chart, YYYY-MM
	UntilMonth types.Month            `form:"untilMonth" example:"2024-03"`                                         // Last month of the balance chart, YYYY-MM
}

type ChartResponse struct {
	Error *string        `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
	Data  []charts.Point `json:"data"`                                                  // The buckets of the chart
}

type ChartsResponse struct {
	Links ChartLinks `json:"links"` // Links to the charts
}

type ChartLinks struct {
	Daily    string `json:"daily" example:"https://example.com/api/v1/charts/daily"`       // One bucket per day of a month
	Range    string `json:"range" example:"https://example.com/api/v1/charts/range"`       // Buckets for a date range
	Balances string `json:"balances" example:"https://example.com/api/v1/charts/balances"` // One bucket per month from the monthly balances
	Yearly   string `json:"yearly" example:"https://example.com/api/v1/charts/yearly"`     // One bucket per year from the monthly balances
}

// bindChartQuery binds the query and defaults the type to expense.
func bindChartQuery(c *gin.Context) (ChartQuery, bool) {
	var query ChartQuery
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ChartResponse{
			Error: &s,
		})
		return query, false
	}

	if query.Type == "" {
		query.Type = models.TypeExpense
	}

	if !query.Type.Valid() {
		s := errTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, ChartResponse{
			Error: &s,
		})
		return query, false
	}

	return query, true
}

// transactionsBetween returns the transactions of the user with the type
// from the start of from until before until.
func transactionsBetween(c *gin.Context, t models.TransactionType, from, until time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := models.DB.
		Where(&models.Transaction{UserID: auth.UserID(c), Type: t}).
		Where("transactions.date >= date(?)", from).
		Where("transactions.date < date(?)", until).
		Find(&transactions).Error
	return transactions, err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Charts
// @Success		204
// @Router			/v1/charts [options]
// @Router			/v1/charts/daily [options]
// @Router			/v1/charts/range [options]
// @Router			/v1/charts/balances [options]
// @Router			/v1/charts/yearly [options]
func OptionsCharts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Charts
// @Description	Returns links to the chart endpoints
// @Tags			Charts
// @Success		200	{object}	ChartsResponse
// @Router			/v1/charts [get]
func GetCharts(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, ChartsResponse{
		Links: ChartLinks{
			Daily:    url + "/v1/charts/daily",
			Range:    url + "/v1/charts/range",
			Balances: url + "/v1/charts/balances",
			Yearly:   url + "/v1/charts/yearly",
		},
	})
}

// @Summary		Daily chart
// @Description	Returns one bucket per day of the month with the sum of the transactions of the type
// @Tags			Charts
// @Produce		json
// @Success		200		{object}	ChartResponse
// @Failure		400		{object}	ChartResponse
// @Failure		500		{object}	ChartResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			type	query		string	false	"'income' or 'expense'. Defaults to expense"
// @Router			/v1/charts/daily [get]
func GetDailyChart(c *gin.Context) {
	query, ok := bindChartQuery(c)
	if !ok {
		return
	}

	if query.Month.IsZero() {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, ChartResponse{
			Error: &s,
		})
		return
	}

	transactions, err := transactionsBetween(c, query.Type, query.Month.Start(), query.Month.AddDate(0, 1).Start())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChartResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ChartResponse{Data: charts.Daily(transactions, query.Month)})
}

// @Summary		Range chart
// @Description	For a full calendar year, returns one bucket per month. For any other range, returns one bucket per day from the start of the month of fromDate to the end of the month of untilDate.
// @Tags			Charts
// @Produce		json
// @Success		200			{object}	ChartResponse
// @Failure		400			{object}	ChartResponse
// @Failure		500			{object}	ChartResponse
// @Param			fromDate	query		string	true	"First day, YYYY-MM-DD"
// @Param			untilDate	query		string	true	"Last day, YYYY-MM-DD"
// @Param			type		query		string	false	"'income' or 'expense'. Defaults to expense"
// @Router			/v1/charts/range [get]
func GetRangeChart(c *gin.Context) {
	query, ok := bindChartQuery(c)
	if !ok {
		return
	}

	if query.FromDate.IsZero() || query.UntilDate.IsZero() {
		s := errRangeNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, ChartResponse{
			Error: &s,
		})
		return
	}

	if query.UntilDate.Before(query.FromDate) {
		c.JSON(http.StatusOK, ChartResponse{Data: []charts.Point{}})
		return
	}

	from := types.MonthOf(query.FromDate).Start()
	until := types.MonthOf(query.UntilDate).AddDate(0, 1).Start()

	transactions, err := transactionsBetween(c, query.Type, from, until)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChartResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ChartResponse{Data: charts.Range(transactions, query.FromDate, query.UntilDate)})
}

// @Summary		Balance chart
// @Description	Returns one bucket per month with the sum of one side of the monthly balances
// @Tags			Charts
// @Produce		json
// @Success		200			{object}	ChartResponse
// @Failure		400			{object}	ChartResponse
// @Failure		500			{object}	ChartResponse
// @Param			fromMonth	query		string	true	"First month, YYYY-MM"
// @Param			untilMonth	query		string	true	"Last month, YYYY-MM"
// @Param			type		query		string	false	"'income' or 'expense'. Defaults to expense"
// @Router			/v1/charts/balances [get]
func GetBalanceChart(c *gin.Context) {
	query, ok := bindChartQuery(c)
	if !ok {
		return
	}

	if query.FromMonth.IsZero() || query.UntilMonth.IsZero() {
		s := errMonthsNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, ChartResponse{
			Error: &s,
		})
		return
	}

	var balances []models.MonthlyBalance
	err := models.DB.
		Where(&models.MonthlyBalance{UserID: auth.UserID(c)}).
		Where("year * 12 + month - 1 BETWEEN ? AND ?", query.FromMonth.Index(), query.UntilMonth.Index()).
		Find(&balances).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChartResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ChartResponse{Data: charts.Balances(balances, query.FromMonth, query.UntilMonth, query.Type)})
}

// @Summary		Yearly chart
// @Description	Returns one bucket per year that has monthly balances, oldest first
// @Tags			Charts
// @Produce		json
// @Success		200		{object}	ChartResponse
// @Failure		400		{object}	ChartResponse
// @Failure		500		{object}	ChartResponse
// @Param			type	query		string	false	"'income' or 'expense'. Defaults to expense"
// @Router			/v1/charts/yearly [get]
func GetYearlyChart(c *gin.Context) {
	query, ok := bindChartQuery(c)
	if !ok {
		return
	}

	var balances []models.MonthlyBalance
	err := models.DB.Where(&models.MonthlyBalance{UserID: auth.UserID(c)}).Find(&balances).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChartResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ChartResponse{Data: charts.Yearly(balances, query.Type)})
}
