package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuniskill/internal/auth"
	"tuniskill/internal/config"
	"tuniskill/internal/handler"
	"tuniskill/internal/logger"
)

type stubValidator struct {
	seen []string
}

func (v *stubValidator) ValidateAccessToken(_ context.Context, token string) (*auth.Claims, error) {
	v.seen = append(v.seen, token)
	return nil, auth.ErrAccessTokenRevoked
}

func TestCustomValidator(t *testing.T) {
	v := &CustomValidator{validator: validator.New()}

	assert.NoError(t, v.Validate(&handler.LoginRequest{Email: "admin@tuniskill.com", Password: "x"}))
	assert.Error(t, v.Validate(&handler.LoginRequest{Email: "admin", Password: "x"}))
	assert.Error(t, v.Validate(&handler.RefreshRequest{}))
}

func TestRegister_CORSAndRequestID(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{AppEnv: "prod", AppVersion: "1.0.0", CORSOrigins: []string{"http://localhost:4200"}}
	Register(e, cfg, logger.Nop(), &stubValidator{},
		handler.NewAPIHandler(cfg.AppVersion, cfg.AppEnv),
		handler.NewCourseHandler(nil),
		handler.NewCategoryHandler(nil),
		handler.NewUserHandler(nil),
		handler.NewAuthHandler(nil, nil),
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:4200")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:4200", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)

	req = httptest.NewRequest(http.MethodOptions, "/api/courses", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:4200")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_TOKEN"`)
}

func TestRegister_MeRejectsRevokedToken(t *testing.T) {
	e := echo.New()
	tokens := &stubValidator{}
	cfg := &config.Config{AppEnv: "prod", CORSOrigins: []string{"http://localhost:4200"}}
	Register(e, cfg, logger.Nop(), tokens,
		handler.NewAPIHandler("1.0.0", cfg.AppEnv),
		handler.NewCourseHandler(nil),
		handler.NewCategoryHandler(nil),
		handler.NewUserHandler(nil),
		handler.NewAuthHandler(nil, nil),
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer revoked-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_TOKEN"`)
	assert.Equal(t, []string{"revoked-token"}, tokens.seen)
}
