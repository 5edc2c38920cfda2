package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/internal/httperror"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router with all middlewares.
//
// The second return value is a teardown function that releases
// resources held by the router, currently the Prometheus metrics.
func Config() (*gin.Engine, func(), error) {
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
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.Error{Message: "This HTTP method is not allowed for the endpoint you called"})
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

	if err := registerPrometheusMetrics(); err != nil {
		return nil, nil, err
	}
	r.Use(MetricsMiddleware())

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach the API to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/healthz", GetHealth)
	group.OPTIONS("/healthz", OptionsHealth)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	// Metrics are on by default and can be disabled explicitly
	if os.Getenv("ENABLE_METRICS") != "false" {
		group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := group.Group("/api")
	{
		controllers.RegisterAuthRoutes(api)
	}

	// Everything except registration and login requires a valid token
	protected := api.Group("", AuthMiddleware())

	controllers.RegisterProfileRoutes(protected.Group("/profile"))
	controllers.RegisterBudgetRoutes(protected.Group("/budgets"))
	controllers.RegisterTransactionRoutes(protected.Group("/transactions"))
	controllers.RegisterInsightRoutes(protected.Group("/insights"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz      string `json:"healthz" example:"/healthz"`               // Endpoint returning the health of the backend
	Register     string `json:"register" example:"/api/register"`         // Endpoint for creating a new user
	Login        string `json:"login" example:"/api/login"`               // Endpoint for logging in
	Budgets      string `json:"budgets" example:"/api/budgets"`           // List endpoint for budgets
	Transactions string `json:"transactions" example:"/api/transactions"` // List endpoint for transactions
	Insights     string `json:"insights" example:"/api/insights/summary"` // Financial summary endpoint
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz:      "/healthz",
			Register:     "/api/register",
			Login:        "/api/login",
			Budgets:      "/api/budgets",
			Transactions: "/api/transactions",
			Insights:     "/api/insights/summary",
		},
	})
}

type HealthResponse struct {
	Data HealthObject `json:"data"` // Data object for the health endpoint
}

type HealthObject struct {
	Status  string `json:"status" example:"ok"`     // Health of the backend
	Version string `json:"version" example:"1.1.0"` // The running version of the backend
}

// GetHealth returns the health of the backend
//
//	@Summary		Health
//	@Description	Returns the health and version of the API
//	@Tags			General
//	@Success		200	{object}	HealthResponse
//	@Router			/healthz [get]
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Data: HealthObject{
			Status:  "ok",
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

// OptionsHealth returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func OptionsHealth(c *gin.Context) {
	httputil.OptionsGet(c)
}
