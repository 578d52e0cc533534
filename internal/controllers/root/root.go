package root

import (
	"net/http"

	"github.com/finora/backend/internal/httputil"
	"github.com/finora/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Name  string `json:"name" example:"FinOra"` // Name of the service
	Links Links  `json:"links"`
}

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"`    // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`         // Health of the backend and its database
	Version string `json:"version" example:"https://example.com/api/version"`         // Version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`         // Prometheus metrics
	Pprof   string `json:"pprof,omitempty" example:"https://example.com/debug/pprof/"` // Runtime profiles, only when enabled
	V1      string `json:"v1" example:"https://example.com/api/v1"`                   // Links to all v1 resources
}

// RegisterRoutes registers the API root. With pprof, the link to the
// profiling endpoints is listed.
func RegisterRoutes(r *gin.RouterGroup, pprof bool) {
	r.GET("", Get(pprof))
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(pprof bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		url := c.GetString(string(models.DBContextURL))

		links := Links{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		}

		if pprof {
			links.Pprof = url + "/debug/pprof/"
		}

		c.JSON(http.StatusOK, Response{Name: "FinOra", Links: links})
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
