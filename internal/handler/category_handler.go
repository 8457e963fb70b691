package handler

import (
	"github.com/labstack/echo/v4"

	"tuniskill/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
	clock           clock
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List godoc
// @Summary List active categories with course counts
// @Tags categories
// @Produce json
// @Success 200 {object} ListResponse{data=[]model.CategoryWithCount}
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return list(c, h.clock.now(), categories, len(categories))
}

// Tree godoc
// @Summary Category hierarchy
// @Tags categories
// @Produce json
// @Success 200 {object} ListResponse{data=[]model.CategoryNode}
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/tree [get]
func (h *CategoryHandler) Tree(c echo.Context) error {
	tree, err := h.categoryService.Tree(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return list(c, h.clock.now(), tree, len(tree))
}

// Popular godoc
// @Summary Categories ranked by active course count
// @Tags categories
// @Produce json
// @Param limit query int false "Maximum results (default 10)"
// @Success 200 {object} ListResponse{data=[]model.CategoryWithCount}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/popular [get]
func (h *CategoryHandler) Popular(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return err
	}
	categories, err := h.categoryService.Popular(c.Request().Context(), limit)
	if err != nil {
		return fail(err)
	}
	return list(c, h.clock.now(), categories, len(categories))
}

// Search godoc
// @Summary Search categories
// @Tags categories
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} ListResponse{data=[]model.Category}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/search [get]
func (h *CategoryHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return badRequest("q is required", "MISSING_QUERY")
	}
	categories, err := h.categoryService.Search(c.Request().Context(), q)
	if err != nil {
		return fail(err)
	}
	return list(c, h.clock.now(), categories, len(categories))
}

// BySlug godoc
// @Summary Get a category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} ItemResponse{data=model.Category}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/{slug} [get]
func (h *CategoryHandler) BySlug(c echo.Context) error {
	category, err := h.categoryService.BySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(err)
	}
	return item(c, h.clock.now(), category)
}
