package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// APIHandler serves the connectivity probes.
type APIHandler struct {
	version     string
	environment string
	clock       clock
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(version, environment string) *APIHandler {
	return &APIHandler{version: version, environment: environment}
}

// TestResponse is returned by GET /test.
type TestResponse struct {
	Message   string       `json:"message" example:"API connection successful!"`
	Timestamp time.Time    `json:"timestamp"`
	Status    string       `json:"status" example:"success"`
	Data      PlatformInfo `json:"data"`
}

// PlatformInfo describes the running platform.
type PlatformInfo struct {
	Platform    string `json:"platform" example:"TuniSkill"`
	Version     string `json:"version" example:"1.0.0"`
	Environment string `json:"environment" example:"dev"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Test godoc
// @Summary Connectivity check
// @Tags api
// @Produce json
// @Success 200 {object} TestResponse
// @Router /test [get]
func (h *APIHandler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, TestResponse{
		Message:   "API connection successful!",
		Timestamp: h.clock.now(),
		Status:    "success",
		Data: PlatformInfo{
			Platform:    "TuniSkill",
			Version:     h.version,
			Environment: h.environment,
		},
	})
}

// Health godoc
// @Summary Health probe
// @Description Reports fixed statuses; nothing is actually probed.
// @Tags api
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *APIHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.clock.now(),
		Services: map[string]string{
			"database": "connected",
			"cache":    "available",
			"api":      "running",
		},
	})
}
