package router

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/finora/backend/api"
	"github.com/finora/backend/internal/auth"
	"github.com/finora/backend/internal/config"
	"github.com/finora/backend/internal/controllers/healthz"
	"github.com/finora/backend/internal/controllers/root"
	v1 "github.com/finora/backend/internal/controllers/v1"
	"github.com/finora/backend/internal/controllers/version"
	"github.com/finora/backend/internal/geo"
	"github.com/finora/backend/internal/httperror"
	"github.com/finora/backend/internal/receipt"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var apiVersion = "0.0.0"

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// Config creates the gin engine with all middlewares. The returned function
// unregisters the Prometheus metrics and must be called when the engine is
// not used anymore.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.New(errMethodNotAllowed))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", apiVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "FinOra"
	docs.SwaggerInfo.Version = apiVersion
	docs.SwaggerInfo.Description = "The backend for FinOra, a personal finance tracker with monthly balances, charts and receipt scanning."

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister Prometheus metrics")
		}
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, teardown, err
	}

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(group *gin.RouterGroup, cfg config.Config) {
	// pprof performance profiles
	enablePprof := os.Getenv("ENABLE_PPROF") == "true"
	if enablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	root.RegisterRoutes(group.Group(""), enablePprof)
	version.RegisterRoutes(group.Group("/version"), apiVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Assigned only when configured so that the handlers see a nil interface
	var scanner receipt.Scanner
	if cfg.OpenAIAPIKey != "" {
		scanner = receipt.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	} else {
		log.Info().Msg("receipt scanning is disabled, OPENAI_API_KEY is not set")
	}

	var geocoder geo.Geocoder
	if cfg.NominatimURL != "" {
		geocoder = geo.NewNominatim(cfg.NominatimURL, cfg.NominatimUserAgent)
	}

	// API v1 setup
	v1Group := group.Group("/v1")
	v1.RegisterRootRoutes(v1Group.Group(""))
	v1.RegisterAuthRoutes(v1Group.Group("/auth"), issuer, geocoder)

	authenticated := v1Group.Group("", auth.Middleware(issuer))
	{
		v1.RegisterUserRoutes(authenticated.Group("/users"))
		v1.RegisterCategoryRoutes(authenticated.Group("/categories"))
		v1.RegisterTransactionRoutes(authenticated.Group("/transactions"))
		v1.RegisterMonthlyBalanceRoutes(authenticated.Group("/monthly-balances"))
		v1.RegisterMatchRuleRoutes(authenticated.Group("/match-rules"))
		v1.RegisterSummaryRoutes(authenticated.Group("/summary"))
		v1.RegisterChartRoutes(authenticated.Group("/charts"))
		v1.RegisterReceiptRoutes(authenticated.Group("/receipts"), scanner)
		v1.RegisterCurrencyRoutes(authenticated.Group("/currencies"))
	}
}
