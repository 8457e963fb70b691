package handler

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tuniskill/internal/model"
	"tuniskill/internal/service"
)

// CourseHandler handles course endpoints.
type CourseHandler struct {
	courseService service.CourseService
	clock         clock
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func parsePrice(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, badRequest(name+" must be a number", "INVALID_PRICE")
	}
	return &d, nil
}

// List godoc
// @Summary List active courses
// @Description Newest first. Filters combine; min_price and max_price must be given together.
// @Tags courses
// @Produce json
// @Param category query string false "Category name"
// @Param level query string false "Level"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} ListResponse{data=[]CourseDTO}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	minPrice, err := parsePrice(c, "min_price")
	if err != nil {
		return err
	}
	maxPrice, err := parsePrice(c, "max_price")
	if err != nil {
		return err
	}

	courses, err := h.courseService.List(c.Request().Context(), service.CourseFilter{
		Category: c.QueryParam("category"),
		Level:    c.QueryParam("level"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		return fail(err)
	}
	return list(c, h.clock.now(), toCourseDTOs(courses), len(courses))
}

// Get godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} ItemResponse{data=CourseDTO}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest("invalid course ID", "INVALID_ID")
	}

	course, err := h.courseService.Get(c.Request().Context(), uint(id))
	if err != nil {
		return fail(err)
	}
	return item(c, h.clock.now(), toCourseDTO(course))
}

// Search godoc
// @Summary Search courses
// @Description Case-insensitive match on title, description and instructor.
// @Tags courses
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} ListResponse{data=[]CourseDTO}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /courses/search [get]
func (h *CourseHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return badRequest("q is required", "MISSING_QUERY")
	}

	courses, err := h.courseService.Search(c.Request().Context(), q)
	if err != nil {
		return fail(err)
	}
	return list(c, h.clock.now(), toCourseDTOs(courses), len(courses))
}

// Featured godoc
// @Summary Featured courses
// @Tags courses
// @Produce json
// @Param limit query int false "Maximum results (default 6)"
// @Success 200 {object} ListResponse{data=[]CourseDTO}
// @Failure 400 {object} errors.ErrorResponse
// @Router /courses/featured [get]
func (h *CourseHandler) Featured(c echo.Context) error {
	return h.limited(c, h.courseService.Featured)
}

// Popular godoc
// @Summary Most enrolled courses
// @Tags courses
// @Produce json
// @Param limit query int false "Maximum results (default 10)"
// @Success 200 {object} ListResponse{data=[]CourseDTO}
// @Failure 400 {object} errors.ErrorResponse
// @Router /courses/popular [get]
func (h *CourseHandler) Popular(c echo.Context) error {
	return h.limited(c, h.courseService.Popular)
}

// Recent godoc
// @Summary Newest courses
// @Tags courses
// @Produce json
// @Param limit query int false "Maximum results (default 10)"
// @Success 200 {object} ListResponse{data=[]CourseDTO}
// @Failure 400 {object} errors.ErrorResponse
// @Router /courses/recent [get]
func (h *CourseHandler) Recent(c echo.Context) error {
	return h.limited(c, h.courseService.Recent)
}

func (h *CourseHandler) limited(c echo.Context, fetch func(ctx context.Context, limit int) ([]model.Course, error)) error {
	limit, err := queryLimit(c)
	if err != nil {
		return err
	}
	courses, err := fetch(c.Request().Context(), limit)
	if err != nil {
		return fail(err)
	}
	return list(c, h.clock.now(), toCourseDTOs(courses), len(courses))
}

// Stats godoc
// @Summary Catalog statistics
// @Tags courses
// @Produce json
// @Success 200 {object} ItemResponse{data=model.CourseStats}
// @Failure 500 {object} errors.ErrorResponse
// @Router /courses/stats [get]
func (h *CourseHandler) Stats(c echo.Context) error {
	stats, err := h.courseService.Stats(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return item(c, h.clock.now(), stats)
}
