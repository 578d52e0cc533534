package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/finora/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Info describes the running backend.
type Info struct {
	Version  string `json:"version" example:"1.1.0"`                                   // Version of the FinOra backend, set at build time
	Revision string `json:"revision" example:"4f7c2a1e9d3b8c6a5f0e1d2c3b4a59687f6e5d4c"` // VCS revision the binary was built from, if known
	Go       string `json:"go" example:"go1.25.5"`                                     // Go version the binary was built with
}

type Response struct {
	Data Info `json:"data"` // Data object for the version endpoint
}

// RegisterRoutes registers the version endpoints. version is the
// release version, usually injected with -ldflags.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	info := Info{
		Version:  version,
		Revision: revision(),
		Go:       runtime.Version(),
	}

	r.OPTIONS("", Options)
	r.GET("", Get(info))
}

// revision returns the VCS revision embedded by the Go toolchain.
func revision() string {
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, s := range build.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(info Info) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Data: info})
	}
}
