package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tuniskill/internal/auth"
	"tuniskill/internal/cache"
	"tuniskill/internal/config"
	"tuniskill/internal/db/dbtest"
	"tuniskill/internal/fixture"
	"tuniskill/internal/handler"
	"tuniskill/internal/logger"
	"tuniskill/internal/repository"
	"tuniskill/internal/router"
	"tuniskill/internal/service"
)

var seedTime = time.Date(2025, 8, 9, 12, 4, 45, 0, time.UTC)

func newServer(t *testing.T, gormDB *gorm.DB, env string) *echo.Echo {
	t.Helper()
	cfg := &config.Config{AppEnv: env, AppVersion: "1.0.0", JWTSecret: "test-secret", CORSOrigins: []string{"http://localhost:4200"}}
	log := logger.Nop()
	var cacheClient *cache.Client

	courseRepo := repository.NewCourseRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	courseService := service.NewCourseService(courseRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, jwtService, auth.NewTokenStore(cacheClient))
	seedService := service.NewSeedService(fixture.NewLoader(gormDB, fixture.WithBcryptCost(bcrypt.MinCost)), courseService, categoryService, log)

	e := echo.New()
	router.Register(e, cfg, log, authService,
		handler.NewAPIHandler(cfg.AppVersion, cfg.AppEnv),
		handler.NewCourseHandler(courseService),
		handler.NewCategoryHandler(categoryService),
		handler.NewUserHandler(userService),
		handler.NewAuthHandler(authService, userService),
		handler.NewSeedHandler(seedService),
	)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type courseList struct {
	Status    string              `json:"status"`
	Data      []handler.CourseDTO `json:"data"`
	Total     int                 `json:"total"`
	Timestamp time.Time           `json:"timestamp"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func TestApi_TestAndHealth(t *testing.T) {
	e := newServer(t, dbtest.New(t), "dev")

	rec := do(t, e, http.MethodGet, "/api/test", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[handler.TestResponse](t, rec)
	assert.Equal(t, "API connection successful!", got.Message)
	assert.Equal(t, "success", got.Status)
	assert.Equal(t, handler.PlatformInfo{Platform: "TuniSkill", Version: "1.0.0", Environment: "dev"}, got.Data)
	assert.False(t, got.Timestamp.IsZero())

	rec = do(t, e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[handler.HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, map[string]string{"database": "connected", "cache": "available", "api": "running"}, health.Services)
}

func TestHealth_IgnoresBrokenDatabase(t *testing.T) {
	gormDB := dbtest.New(t)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec := do(t, newServer(t, gormDB, "dev"), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[handler.HealthResponse](t, rec).Status)
}

func TestCourses_List_Seeded(t *testing.T) {
	e := newServer(t, dbtest.Seeded(t, seedTime), "dev")

	rec := do(t, e, http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[courseList](t, rec)

	assert.Equal(t, "success", got.Status)
	assert.Equal(t, 6, got.Total)
	require.Len(t, got.Data, 6)

	byTitle := map[string]handler.CourseDTO{}
	for _, c := range got.Data {
		byTitle[c.Title] = c
		assert.Equal(t, "2025-08-09 12:04:45", c.CreatedAt)
	}
	bootcamp := byTitle["Complete Web Development Bootcamp"]
	assert.True(t, bootcamp.IsFeatured)
	assert.Equal(t, 99.99, bootcamp.Price)
	assert.Equal(t, 4.8, bootcamp.Rating)
	assert.Equal(t, "Web Development", bootcamp.Category)
	assert.False(t, byTitle["Data Science with Python"].IsFeatured)

	// same timestamp for every row, so id DESC decides
	assert.Equal(t, uint(6), got.Data[0].ID)
	assert.Equal(t, uint(1), got.Data[5].ID)
}

func TestCourses_List_Empty(t *testing.T) {
	rec := do(t, newServer(t, dbtest.New(t), "dev"), http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
	assert.Equal(t, 0, decode[courseList](t, rec).Total)
}

func TestCourses_List_StorageFailure(t *testing.T) {
	gormDB := dbtest.New(t)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec := do(t, newServer(t, gormDB, "dev"), http.MethodGet, "/api/courses", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errorBody{Error: "internal server error", Code: "INTERNAL_ERROR"}, decode[errorBody](t, rec))
}

func TestCourses_Filters(t *testing.T) {
	e := newServer(t, dbtest.Seeded(t, seedTime), "dev")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantTotal  int
		wantCode   string
	}{
		{"category", "/api/courses?category=Web%20Development", http.StatusOK, 2, ""},
		{"level", "/api/courses?level=Intermediate", http.StatusOK, 2, ""},
		{"price range", "/api/courses?min_price=100&max_price=130", http.StatusOK, 2, ""},
		{"category and level", "/api/courses?category=Web%20Development&level=Advanced", http.StatusOK, 1, ""},
		{"inverted range", "/api/courses?min_price=300&max_price=100", http.StatusBadRequest, 0, "INVALID_PRICE_RANGE"},
		{"bad number", "/api/courses?min_price=abc&max_price=100", http.StatusBadRequest, 0, "INVALID_PRICE"},
		{"search", "/api/courses/search?q=PYTHON", http.StatusOK, 1, ""},
		{"search without q", "/api/courses/search", http.StatusBadRequest, 0, "MISSING_QUERY"},
		{"featured", "/api/courses/featured", http.StatusOK, 3, ""},
		{"popular limited", "/api/courses/popular?limit=2", http.StatusOK, 2, ""},
		{"recent", "/api/courses/recent", http.StatusOK, 6, ""},
		{"bad limit", "/api/courses/recent?limit=0", http.StatusBadRequest, 0, "INVALID_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodGet, tt.path, "")
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[errorBody](t, rec).Code)
				return
			}
			assert.Equal(t, tt.wantTotal, decode[courseList](t, rec).Total)
		})
	}
}

func TestCourses_Get(t *testing.T) {
	e := newServer(t, dbtest.Seeded(t, seedTime), "dev")

	rec := do(t, e, http.MethodGet, "/api/courses/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Data Science with Python"`)

	rec = do(t, e, http.MethodGet, "/api/courses/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COURSE_NOT_FOUND", decode[errorBody](t, rec).Code)

	rec = do(t, e, http.MethodGet, "/api/courses/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCourses_Stats(t *testing.T) {
	e := newServer(t, dbtest.Seeded(t, seedTime), "dev")

	rec := do(t, e, http.MethodGet, "/api/courses/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCourses":6`)
}

func TestCategories(t *testing.T) {
	e := newServer(t, dbtest.Seeded(t, seedTime), "dev")

	rec := do(t, e, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":5`)
	assert.Contains(t, rec.Body.String(), `"courseCount":2`)

	rec = do(t, e, http.MethodGet, "/api/categories/tree", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"children":[]`)

	rec = do(t, e, http.MethodGet, "/api/categories/web-development", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Web Development"`)

	rec = do(t, e, http.MethodGet, "/api/categories/cooking", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CATEGORY_NOT_FOUND", decode[errorBody](t, rec).Code)

	rec = do(t, e, http.MethodGet, "/api/categories/popular?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"web-development"`)

	rec = do(t, e, http.MethodGet, "/api/categories/search?q=machine", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"data-science"`)
}

func TestUsers(t *testing.T) {
	e := newServer(t, dbtest.Seeded(t, seedTime), "dev")

	rec := do(t, e, http.MethodGet, "/api/users/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalUsers":5`)

	rec = do(t, e, http.MethodGet, "/api/instructors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":3`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuth_LoginAndMe(t *testing.T) {
	e := newServer(t, dbtest.Seeded(t, seedTime), "dev")

	rec := do(t, e, http.MethodPost, "/api/auth/login", `{"email":"admin@tuniskill.com","password":"`+fixture.DefaultPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[handler.AuthResponse](t, rec)
	require.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	require.NotNil(t, login.User)
	assert.NotNil(t, login.User.LastLoginAt)
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = do(t, e, http.MethodGet, "/api/me", "", echo.HeaderAuthorization, "Bearer "+login.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"email":"admin@tuniskill.com"`)

	rec = do(t, e, http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/me", "", echo.HeaderAuthorization, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode[errorBody](t, rec).Code)

	// no redis: the refresh session was never persisted
	rec = do(t, e, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"`+login.RefreshToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_REFRESH_TOKEN", decode[errorBody](t, rec).Code)

	rec = do(t, e, http.MethodPost, "/api/auth/logout", `{"refresh_token":"`+login.RefreshToken+`"}`,
		echo.HeaderAuthorization, "Bearer "+login.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MeRejectsRefreshToken(t *testing.T) {
	e := newServer(t, dbtest.Seeded(t, seedTime), "dev")

	rec := do(t, e, http.MethodPost, "/api/auth/login", `{"email":"student@example.com","password":"`+fixture.DefaultPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[handler.AuthResponse](t, rec)

	rec = do(t, e, http.MethodGet, "/api/me", "", echo.HeaderAuthorization, "Bearer "+login.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode[errorBody](t, rec).Code)

	rec = do(t, e, http.MethodPost, "/api/auth/logout", `{"refresh_token":"`+login.AccessToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_REFRESH_TOKEN", decode[errorBody](t, rec).Code)
}

func TestAuth_LoginRejects(t *testing.T) {
	e := newServer(t, dbtest.Seeded(t, seedTime), "dev")

	rec := do(t, e, http.MethodPost, "/api/auth/login", `{"email":"admin@tuniskill.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[errorBody](t, rec).Code)

	rec = do(t, e, http.MethodPost, "/api/auth/login", `{"email":"not-an-email","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode[errorBody](t, rec).Code)
}

func TestSeed(t *testing.T) {
	e := newServer(t, dbtest.New(t), "dev")

	rec := do(t, e, http.MethodPost, "/api/seed", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, handler.SeedResponse{Message: "Fixtures loaded successfully", Categories: 5, Users: 5, Courses: 6}, decode[handler.SeedResponse](t, rec))

	rec = do(t, e, http.MethodPost, "/api/seed", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "STORE_NOT_EMPTY", decode[errorBody](t, rec).Code)

	rec = do(t, e, http.MethodGet, "/api/courses", "")
	assert.Equal(t, 6, decode[courseList](t, rec).Total)
}

func TestSeed_NotMountedOutsideDev(t *testing.T) {
	rec := do(t, newServer(t, dbtest.New(t), "prod"), http.MethodPost, "/api/seed", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
