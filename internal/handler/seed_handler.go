package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tuniskill/internal/service"
)

// SeedHandler handles the development seed endpoint.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message    string `json:"message"`
	Categories int    `json:"categories"`
	Users      int    `json:"users"`
	Courses    int    `json:"courses"`
}

// Seed godoc
// @Summary Load demo fixtures
// @Description Development only. Refuses to run when any category, user or course exists.
// @Tags seed
// @Produce json
// @Success 201 {object} SeedResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	res, err := h.seedService.Seed(c.Request().Context())
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, SeedResponse{
		Message:    "Fixtures loaded successfully",
		Categories: res.Categories,
		Users:      res.Users,
		Courses:    res.Courses,
	})
}
