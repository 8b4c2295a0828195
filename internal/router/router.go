package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/fguardian/backend/api"
	"github.com/fguardian/backend/internal/auth"
	"github.com/fguardian/backend/internal/controllers/healthz"
	v1 "github.com/fguardian/backend/internal/controllers/v1"
	"github.com/fguardian/backend/internal/httputil"
	"github.com/fguardian/backend/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags.
var version = "0.0.0"

// Version returns the version of the backend.
func Version() string {
	return version
}

// Config sets up the engine with all middlewares.
//
// The returned teardown function unregisters the Prometheus metrics and
// must be called when the engine is no longer used.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister Prometheus metrics")
		}
	}

	// Monetary values are JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	r := gin.New()

	// Client IPs are only used for rate limiting the auth callback,
	// they are taken from the connection.
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httputil.HTTPError{
			Error: "this HTTP method is not allowed for the endpoint you called",
		})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.HTTPError{
			Error: "there is no endpoint at this path",
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
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Financial Guardian"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Financial Guardian, tracking income, expenses and savings goals with monthly reports."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
//
// callbackLimit is the rate of auth callback requests allowed per client IP.
// With rate.Inf, the callback is not rate limited.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup, callbackLimit rate.Limit) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthz.RegisterRoutes(group.Group("/healthz"))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var callbackMiddleware []gin.HandlerFunc
	if callbackLimit != rate.Inf {
		callbackMiddleware = append(callbackMiddleware, RateLimitMiddleware(callbackLimit, 5))
	}
	co.RegisterAuthRoutes(group.Group("/auth"), callbackMiddleware...)

	// Everything else belongs to the authenticated user
	protected := group.Group("", auth.Required())
	co.RegisterCategoryRoutes(protected.Group("/categories"))
	co.RegisterTransactionRoutes(protected.Group("/transactions"))
	v1.RegisterGoalRoutes(protected.Group("/goals"))
	v1.RegisterCategoryRuleRoutes(protected.Group("/category-rules"))
	co.RegisterReportRoutes(protected.Group("/reports"))
}

type RootResponse struct {
	Message string    `json:"message" example:"Financial Guardian API"` // Name of the API
	Links   RootLinks `json:"links"`
}

type RootLinks struct {
	Docs          string `json:"docs" example:"https://example.com/api/docs/index.html"`          // Swagger API documentation
	Healthz       string `json:"healthz" example:"https://example.com/api/healthz"`               // Health check
	Version       string `json:"version" example:"https://example.com/api/version"`               // Endpoint returning the version of the backend
	Auth          string `json:"auth" example:"https://example.com/api/auth/me"`                  // The authenticated user
	Categories    string `json:"categories" example:"https://example.com/api/categories"`         // URL of category list endpoint
	Transactions  string `json:"transactions" example:"https://example.com/api/transactions"`     // URL of transaction list endpoint
	Goals         string `json:"goals" example:"https://example.com/api/goals"`                   // URL of goal list endpoint
	CategoryRules string `json:"category_rules" example:"https://example.com/api/category-rules"` // URL of category rule list endpoint
	Reports       string `json:"reports" example:"https://example.com/api/reports/monthly"`       // Base URL of the monthly reports
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Message: "Financial Guardian API",
		Links: RootLinks{
			Docs:          url + "/docs/index.html",
			Healthz:       url + "/healthz",
			Version:       url + "/version",
			Auth:          url + "/auth/me",
			Categories:    url + "/categories",
			Transactions:  url + "/transactions",
			Goals:         url + "/goals",
			CategoryRules: url + "/category-rules",
			Reports:       url + "/reports/monthly",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
