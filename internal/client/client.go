package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"tuniskill/internal/errors"
	"tuniskill/internal/logger"
)

const defaultTimeout = 10 * time.Second

// APIResponse is the envelope the API wraps results in.
type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Data      T         `json:"data"`
	Total     *int      `json:"total,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
}

// Course is the catalog card the client renders.
type Course struct {
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
	CreatedAt   string   `json:"createdAt"`
}

// Category is a category row with its active course count.
type Category struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	SortOrder   int     `json:"sortOrder"`
	CourseCount int64   `json:"courseCount"`
}

// Platform is the payload of the connectivity probe.
type Platform struct {
	Platform    string `json:"platform"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// Health is the body of the health probe. It has no data envelope.
type Health struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s (%s)", e.StatusCode, e.Message, e.Code)
}

// Client talks to the TuniSkill API.
type Client struct {
	http     *resty.Client
	tracker  *Tracker
	notifier Notifier
	log      *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithNotifier routes failure notifications to n.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithLogger sets the logger used for failed calls.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTracker shares a tracker between clients.
func WithTracker(t *Tracker) Option {
	return func(c *Client) { c.tracker = t }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:8000/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
		tracker:  NewTracker(),
		notifier: nopNotifier{},
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tracker exposes the in-flight tracker for loading indicators.
func (c *Client) Tracker() *Tracker {
	return c.tracker
}

// Loading reports whether any tracked call is in flight.
func (c *Client) Loading() bool {
	return c.tracker.Loading()
}

// TestConnection calls GET /test.
func (c *Client) TestConnection(ctx context.Context) (*APIResponse[Platform], error) {
	return fetch[APIResponse[Platform]](ctx, c, true, "API connection test failed", "/test", nil)
}

// Health calls GET /health. It does not touch the loading state.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	return fetch[Health](ctx, c, false, "health check failed", "/health", nil)
}

// Courses calls GET /courses.
func (c *Client) Courses(ctx context.Context) (*APIResponse[[]Course], error) {
	return fetch[APIResponse[[]Course]](ctx, c, true, "failed to fetch courses", "/courses", nil)
}

// Course calls GET /courses/{id}.
func (c *Client) Course(ctx context.Context, id uint) (*APIResponse[Course], error) {
	path := "/courses/" + strconv.FormatUint(uint64(id), 10)
	return fetch[APIResponse[Course]](ctx, c, true, fmt.Sprintf("failed to fetch course %d", id), path, nil)
}

// SearchCourses calls GET /courses/search?q=.
func (c *Client) SearchCourses(ctx context.Context, query string) (*APIResponse[[]Course], error) {
	return fetch[APIResponse[[]Course]](ctx, c, true, "failed to search courses", "/courses/search", map[string]string{"q": query})
}

// Categories calls GET /categories.
func (c *Client) Categories(ctx context.Context) (*APIResponse[[]Category], error) {
	return fetch[APIResponse[[]Category]](ctx, c, true, "failed to fetch categories", "/categories", nil)
}

// fetch performs a GET, logs and notifies on failure, and always returns the error.
func fetch[T any](ctx context.Context, c *Client, track bool, failure, path string, query map[string]string) (*T, error) {
	if track {
		done := c.tracker.Begin()
		defer done()
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(new(T)).
		SetError(&errors.ErrorResponse{}).
		Get(path)
	var out *T
	switch {
	case err != nil:
	case resp.IsError():
		err = toAPIError(resp)
	default:
		var ok bool
		if out, ok = resp.Result().(*T); !ok {
			err = fmt.Errorf("api: unexpected response type for %s", path)
		}
	}
	if err != nil {
		c.log.Error(failure, "path", path, "error", err)
		c.notifier.Error(failure, err)
		return nil, err
	}
	return out, nil
}

func toAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	if body, ok := resp.Error().(*errors.ErrorResponse); ok && body.Code != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
	}
	return apiErr
}
