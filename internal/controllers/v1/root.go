package v1

import (
	"net/http"

	"github.com/finora/backend/internal/httputil"
	"github.com/finora/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Auth            string `json:"auth" example:"https://example.com/api/v1/auth"`                        // URL of the authentication endpoints
	Users           string `json:"users" example:"https://example.com/api/v1/users/me"`                   // URL of the authenticated user
	Categories      string `json:"categories" example:"https://example.com/api/v1/categories"`            // URL of Category collection endpoint
	Transactions    string `json:"transactions" example:"https://example.com/api/v1/transactions"`        // URL of Transaction collection endpoint
	MonthlyBalances string `json:"monthlyBalances" example:"https://example.com/api/v1/monthly-balances"` // URL of Monthly Balance collection endpoint
	MatchRules      string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`           // URL of Match Rule collection endpoint
	Summary         string `json:"summary" example:"https://example.com/api/v1/summary"`                  // URL of the summary endpoint
	Charts          string `json:"charts" example:"https://example.com/api/v1/charts"`                    // URL of the chart endpoints
	Receipts        string `json:"receipts" example:"https://example.com/api/v1/receipts"`                // URL of the receipt scanning endpoint
	Currencies      string `json:"currencies" example:"https://example.com/api/v1/currencies"`            // URL of the supported currencies
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Auth:            url + "/v1/auth",
			Users:           url + "/v1/users/me",
			Categories:      url + "/v1/categories",
			Transactions:    url + "/v1/transactions",
			MonthlyBalances: url + "/v1/monthly-balances",
			MatchRules:      url + "/v1/match-rules",
			Summary:         url + "/v1/summary",
			Charts:          url + "/v1/charts",
			Receipts:        url + "/v1/receipts",
			Currencies:      url + "/v1/currencies",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
