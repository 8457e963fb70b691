package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"tuniskill/internal/errors"
	"tuniskill/internal/model"
)

const createdAtLayout = "2006-01-02 15:04:05"

// ListResponse is the envelope every collection endpoint returns.
type ListResponse struct {
	Status    string      `json:"status" example:"success"`
	Data      interface{} `json:"data"`
	Total     int         `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

// ItemResponse is the envelope for single resources.
type ItemResponse struct {
	Status    string      `json:"status" example:"success"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// CourseDTO is the public shape of a course.
type CourseDTO struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Students    int      `json:"students"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Category    string   `json:"category"`
	Thumbnail   *string  `json:"thumbnail"`
	IsFeatured  bool     `json:"isFeatured"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language"`
	CreatedAt   string   `json:"createdAt" example:"2025-08-09 12:04:45"`
}

func toCourseDTO(c *model.Course) CourseDTO {
	price, _ := c.Price.Float64()
	rating, _ := c.Rating.Float64()
	tags := []string(c.Tags)
	if tags == nil {
		tags = []string{}
	}
	return CourseDTO{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Instructor:  c.Instructor,
		Price:       price,
		Rating:      rating,
		Students:    c.Students,
		Duration:    c.Duration,
		Level:       c.Level,
		Category:    c.Category,
		Thumbnail:   c.Thumbnail,
		IsFeatured:  c.IsFeatured,
		Tags:        tags,
		Language:    c.Language,
		CreatedAt:   c.CreatedAt.Format(createdAtLayout),
	}
}

func toCourseDTOs(courses []model.Course) []CourseDTO {
	out := make([]CourseDTO, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseDTO(&courses[i]))
	}
	return out
}

// clock is overridable so tests can pin response timestamps.
type clock func() time.Time

func (f clock) now() time.Time {
	if f == nil {
		return time.Now()
	}
	return f()
}

func list(c echo.Context, now time.Time, data interface{}, total int) error {
	return c.JSON(http.StatusOK, ListResponse{
		Status:    "success",
		Data:      data,
		Total:     total,
		Timestamp: now,
	})
}

func item(c echo.Context, now time.Time, data interface{}) error {
	return c.JSON(http.StatusOK, ItemResponse{
		Status:    "success",
		Data:      data,
		Timestamp: now,
	})
}

func fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// queryLimit reads ?limit=. Absent means 0, which the repositories turn into their default.
func queryLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, badRequest("limit must be a positive integer", "INVALID_LIMIT")
	}
	return limit, nil
}
