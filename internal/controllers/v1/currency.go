package v1

import (
	"net/http"

	"github.com/finora/backend/internal/currency"
	"github.com/finora/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func RegisterCurrencyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCurrencies)
	r.GET("", GetCurrencies)
}

type CurrencyListResponse struct {
	Data []currency.Currency `json:"data"` // List of supported currencies
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Currencies
// @Success		204
// @Router			/v1/currencies [options]
func OptionsCurrencies(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get currencies
// @Description	Returns the currencies amounts can be formatted in
// @Tags			Currencies
// @Produce		json
// @Success		200	{object}	CurrencyListResponse
// @Router			/v1/currencies [get]
func GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, CurrencyListResponse{Data: currency.Supported()})
}
