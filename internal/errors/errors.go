package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = errors.New("course not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryCycle is returned when a parent assignment would make the category tree cyclic.
	ErrCategoryCycle = errors.New("category parent would create a cycle")
	// ErrInvalidCourse is returned when course fields are out of range.
	ErrInvalidCourse = errors.New("invalid course")
	// ErrInvalidPriceRange is returned when min price is greater than max price.
	ErrInvalidPriceRange = errors.New("invalid price range")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrStoreNotEmpty is returned when fixtures are loaded into a populated store.
	ErrStoreNotEmpty = errors.New("store already contains data")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown,
// storage failures included, becomes a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		return NewHTTPError(http.StatusNotFound, ErrCourseNotFound.Error(), "COURSE_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, ErrCategoryNotFound.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrCategoryCycle):
		return NewHTTPError(http.StatusBadRequest, ErrCategoryCycle.Error(), "CATEGORY_CYCLE")
	case errors.Is(err, ErrInvalidCourse):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_COURSE")
	case errors.Is(err, ErrInvalidPriceRange):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidPriceRange.Error(), "INVALID_PRICE_RANGE")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidRefreshToken.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrStoreNotEmpty):
		return NewHTTPError(http.StatusConflict, ErrStoreNotEmpty.Error(), "STORE_NOT_EMPTY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
