package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	"tuniskill/docs"
	"tuniskill/internal/auth"
	"tuniskill/internal/cache"
	"tuniskill/internal/config"
	"tuniskill/internal/db"
	"tuniskill/internal/fixture"
	"tuniskill/internal/handler"
	"tuniskill/internal/logger"
	"tuniskill/internal/repository"
	"tuniskill/internal/router"
	"tuniskill/internal/service"
)

// @title TuniSkill API
// @version 1.0
// @description Course marketplace API: catalog, categories, instructors and JWT authentication.
// @host localhost:8000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("database init failed", "driver", cfg.DBDriver, "error", err)
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Warn("drop tables failed (they may not exist)", "error", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("auto-migrate failed", "error", err)
	}
	log.Info("database ready", "driver", cfg.DBDriver)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("redis unavailable, running without cache", "addr", cfg.RedisAddr, "error", err)
	}
	cancel()

	// Initialize repositories
	courseRepo := repository.NewCourseRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	courseService := service.NewCourseService(courseRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)

	var seedHandler *handler.SeedHandler
	if cfg.IsDev() {
		seedService := service.NewSeedService(fixture.NewLoader(gormDB), courseService, categoryService, log)
		seedHandler = handler.NewSeedHandler(seedService)
	}

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		cfg,
		log,
		authService,
		handler.NewAPIHandler(cfg.AppVersion, cfg.AppEnv),
		handler.NewCourseHandler(courseService),
		handler.NewCategoryHandler(categoryService),
		handler.NewUserHandler(userService),
		handler.NewAuthHandler(authService, userService),
		seedHandler,
	)

	configureSwagger(docs.SwaggerInfo, cfg.SwaggerHost, cfg.ServerPort)
	log.Info("swagger documentation available", "url", swaggerURL(cfg.SwaggerHost, cfg.ServerPort))

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	log.Info("server stopped")
}

// configureSwagger points the served docs at host, or at localhost:port when
// host is empty. A scheme on host restricts the docs to that scheme.
func configureSwagger(info *swag.Spec, host, port string) {
	switch {
	case host == "":
		info.Host = "localhost:" + port
	case strings.HasPrefix(host, "https://"):
		info.Host = strings.TrimPrefix(host, "https://")
		info.Schemes = []string{"https"}
	case strings.HasPrefix(host, "http://"):
		info.Host = strings.TrimPrefix(host, "http://")
		info.Schemes = []string{"http"}
	default:
		info.Host = host
	}
	info.Host = strings.TrimSuffix(info.Host, "/")
}

// swaggerURL builds the docs URL. host may already carry a scheme.
func swaggerURL(host, port string) string {
	switch {
	case host == "":
		return "http://localhost:" + port + "/swagger/index.html"
	case strings.HasPrefix(host, "http://"), strings.HasPrefix(host, "https://"):
		return host + "/swagger/index.html"
	default:
		return "http://" + host + "/swagger/index.html"
	}
}
