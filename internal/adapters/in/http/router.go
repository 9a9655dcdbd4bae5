package http

import (
	"net/http"

	"courier/internal/generated/servers"
	"courier/internal/pkg/logger"
	"courier/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const rootGreeting = "the parcel is coming...."

// RouterConfig holds the optional parts of the HTTP surface. Metrics and
// OpenAPI routes are only mounted when set.
type RouterConfig struct {
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
	OpenAPI      *openapi3.T
	AllowOrigins []string
}

// NewRouter builds the echo instance serving the API. Middleware order
// matters: the request id must exist before the logger reads it, and the
// metrics middleware wraps the logger so it records the final status.
func NewRouter(server *Server, cfg RouterConfig) *echo.Echo {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestID())
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.EchoMiddleware())
	}
	e.Use(logger.EchoMiddleware(cfg.Logger))
	e.Use(middleware.Recover())
	if len(cfg.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.AllowOrigins}))
	} else {
		e.Use(middleware.CORS())
	}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, rootGreeting)
	})
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}
	if cfg.OpenAPI != nil {
		doc := cfg.OpenAPI
		e.GET("/openapi.json", func(c echo.Context) error {
			return c.JSON(http.StatusOK, doc)
		})
		e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))
	}

	servers.RegisterHandlers(e, server)

	return e
}
