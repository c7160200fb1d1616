package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	docs "github.com/twigs-app/backend/api"
	"github.com/twigs-app/backend/internal/controllers/healthz"
	"github.com/twigs-app/backend/internal/controllers/root"
	v4 "github.com/twigs-app/backend/internal/controllers/v4"
	"github.com/twigs-app/backend/internal/controllers/version"
	"github.com/twigs-app/backend/internal/httputil"
	"github.com/twigs-app/backend/internal/ledger"
	"github.com/twigs-app/backend/internal/models"
	"github.com/twigs-app/backend/internal/overview"
)

// This is set at build time, see Makefile.
var buildVersion = "0.0.0"

// Config configures the gin engine with all middlewares.
//
// The returned teardown function unregisters the Prometheus metrics and must
// be called before Config is called again in the same process.
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
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httputil.HTTPError{
			Error: "this HTTP method is not allowed for the endpoint you called",
		})
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
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	err := registerMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, func() {}, err
	}
	r.Use(MetricsMiddleware())

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", buildVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "twigs"
	docs.SwaggerInfo.Version = buildVersion
	docs.SwaggerInfo.Description = "The backend for twigs, a budgeting app showing how your budgets develop over the month."

	teardown := func() {
		if !unregisterMetrics(prometheus.DefaultRegisterer, collectors) {
			log.Error().Msg("could not unregister Prometheus metrics")
		}
	}

	return r, teardown, nil
}

// overviewTimeout returns the upper bound for one overview computation.
func overviewTimeout() time.Duration {
	value, ok := os.LookupEnv("OVERVIEW_TIMEOUT")
	if !ok {
		return overview.DefaultTimeout
	}

	timeout, err := time.ParseDuration(value)
	if err != nil || timeout <= 0 {
		log.Error().Str("OVERVIEW_TIMEOUT", value).Msgf("invalid duration, using the default of %s", overview.DefaultTimeout)
		return overview.DefaultTimeout
	}

	return timeout
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
func AttachRoutes(group *gin.RouterGroup) {
	// Overview calculation reads budgets and totals from the database
	store := ledger.New(models.DB)
	co := v4.Controller{
		Overviews: overview.NewRefresher(overview.NewCalculator(store, store), overviewTimeout()),
	}

	// Register metrics
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register general routes
	root.RegisterRoutes(group.Group(""))
	healthz.RegisterRoutes(group.Group("/healthz"))
	version.RegisterRoutes(group.Group("/version"), buildVersion)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v4 setup
	{
		v4.RegisterRootRoutes(group.Group("/v4"))
		co.RegisterBudgetRoutes(group.Group("/v4/budgets"))
		co.RegisterCategoryRoutes(group.Group("/v4/categories"))
		co.RegisterTransactionRoutes(group.Group("/v4/transactions"))
		v4.RegisterUserRoutes(group.Group("/v4/users"))
	}
}
