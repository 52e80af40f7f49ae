package router

import (
	"net/http"
	"os"
	"strings"

	docs "github.com/fluxo-app/backend/api"
	"github.com/fluxo-app/backend/internal/controllers/healthz"
	v1 "github.com/fluxo-app/backend/internal/controllers/v1"
	"github.com/fluxo-app/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with ldflags.
var version = "0.0.0"

// Config sets up the router and all middlewares.
func Config() (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
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
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

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

	return r, nil
}

// AttachRoutes attaches all API routes to the router group that is
// passed in.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	group.GET("/healthz", healthz.Get)
	group.OPTIONS("/healthz", healthz.Options)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	docs.SwaggerInfo.Title = "Fluxo"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Fluxo, financial management for small organizations."

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup. All v1 routes require a bearer token when
	// TOKEN_SECRET is configured.
	apiV1 := group.Group("/v1", BearerAuth())
	{
		apiV1.GET("", GetV1)
		apiV1.OPTIONS("", OptionsV1)
	}

	v1.RegisterBudgetRoutes(apiV1.Group("/budgets"))
	v1.RegisterCashRegisterRoutes(apiV1.Group("/cash-registers"))
	v1.RegisterBankAccountRoutes(apiV1.Group("/bank-accounts"))
	v1.RegisterCategoryRoutes(apiV1.Group("/categories"))
	v1.RegisterTagRoutes(apiV1.Group("/tags"))
	v1.RegisterPartyRoutes(apiV1.Group("/parties"))
	v1.RegisterLookupRoutes(apiV1.Group("/lookup"))

	log.Info().Str("version", version).Msg("backend startup complete")
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"`
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`
	Version string `json:"version" example:"https://example.com/api/version"`
	V1      string `json:"v1" example:"https://example.com/api/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/budgets"`
	CashRegisters string `json:"cashRegisters" example:"https://example.com/api/v1/cash-registers"`
	BankAccounts  string `json:"bankAccounts" example:"https://example.com/api/v1/bank-accounts"`
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`
	Tags          string `json:"tags" example:"https://example.com/api/v1/tags"`
	Parties       string `json:"parties" example:"https://example.com/api/v1/parties"`
	Lookup        string `json:"lookup" example:"https://example.com/api/v1/lookup"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Budgets:       httputil.RequestPathV1(c) + "/budgets",
			CashRegisters: httputil.RequestPathV1(c) + "/cash-registers",
			BankAccounts:  httputil.RequestPathV1(c) + "/bank-accounts",
			Categories:    httputil.RequestPathV1(c) + "/categories",
			Tags:          httputil.RequestPathV1(c) + "/tags",
			Parties:       httputil.RequestPathV1(c) + "/parties",
			Lookup:        httputil.RequestPathV1(c) + "/lookup",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
