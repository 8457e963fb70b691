package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tuniskill/internal/auth"
	"tuniskill/internal/config"
	"tuniskill/internal/errors"
	"tuniskill/internal/handler"
	"tuniskill/internal/logger"
)

// AccessTokenValidator checks bearer tokens on protected routes.
type AccessTokenValidator interface {
	ValidateAccessToken(ctx context.Context, accessToken string) (*auth.Claims, error)
}

// Register wires middleware and routes.
// seedHandler may be nil; the seed route is only mounted in dev.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *logger.Logger,
	tokens AccessTokenValidator,
	apiHandler *handler.APIHandler,
	courseHandler *handler.CourseHandler,
	categoryHandler *handler.CategoryHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/test", apiHandler.Test)
	api.GET("/health", apiHandler.Health)

	api.GET("/courses", courseHandler.List)
	api.GET("/courses/search", courseHandler.Search)
	api.GET("/courses/featured", courseHandler.Featured)
	api.GET("/courses/popular", courseHandler.Popular)
	api.GET("/courses/recent", courseHandler.Recent)
	api.GET("/courses/stats", courseHandler.Stats)
	api.GET("/courses/:id", courseHandler.Get)

	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/tree", categoryHandler.Tree)
	api.GET("/categories/popular", categoryHandler.Popular)
	api.GET("/categories/search", categoryHandler.Search)
	api.GET("/categories/:slug", categoryHandler.BySlug)

	api.GET("/users/stats", userHandler.Stats)
	api.GET("/instructors", userHandler.Instructors)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	if cfg.IsDev() && seedHandler != nil {
		api.POST("/seed", seedHandler.Seed)
	}

	// JWT is attached per route: group middleware would also run on unmatched /api paths.
	requireJWT := echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.ValidateAccessToken(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "INVALID_TOKEN",
			})
		},
	})

	api.GET("/me", authHandler.Me, requireJWT)
}

func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			kv := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.Round(time.Microsecond).String(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				log.Warn("request failed", append(kv, "error", v.Error)...)
				return nil
			}
			log.Info("request", kv...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
