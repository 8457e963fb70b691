package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"tuniskill/internal/errors"
	"tuniskill/internal/model"
	"tuniskill/internal/repository"
)

const (
	activeCoursesKey = "courses:active"
	courseStatsKey   = "courses:stats"
)

// CourseFilter narrows the active course listing. Zero values mean "any".
// MinPrice and MaxPrice must be set together.
type CourseFilter struct {
	Category string
	Level    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

func (f CourseFilter) hasPriceRange() bool {
	return f.MinPrice != nil && f.MaxPrice != nil
}

func (f CourseFilter) empty() bool {
	return f.Category == "" && f.Level == "" && f.MinPrice == nil && f.MaxPrice == nil
}

func (f CourseFilter) matches(c *model.Course) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.Level != "" && c.Level != f.Level {
		return false
	}
	if f.hasPriceRange() && (c.Price.LessThan(*f.MinPrice) || c.Price.GreaterThan(*f.MaxPrice)) {
		return false
	}
	return true
}

// CourseService serves the public course catalog.
type CourseService interface {
	List(ctx context.Context, filter CourseFilter) ([]model.Course, error)
	Get(ctx context.Context, id uint) (*model.Course, error)
	Search(ctx context.Context, query string) ([]model.Course, error)
	Featured(ctx context.Context, limit int) ([]model.Course, error)
	Popular(ctx context.Context, limit int) ([]model.Course, error)
	Recent(ctx context.Context, limit int) ([]model.Course, error)
	Stats(ctx context.Context) (*model.CourseStats, error)
	Invalidate(ctx context.Context) error
}

type courseService struct {
	repo  repository.CourseRepository
	cache Cache
}

// NewCourseService creates a new course service.
func NewCourseService(repo repository.CourseRepository, cache Cache) CourseService {
	return &courseService{
		repo:  repo,
		cache: cache,
	}
}

// List returns active courses, newest first unless a filter picks another order.
// The unfiltered listing is cached.
func (s *courseService) List(ctx context.Context, filter CourseFilter) ([]model.Course, error) {
	if (filter.MinPrice == nil) != (filter.MaxPrice == nil) {
		return nil, fmt.Errorf("%w: min and max price go together", errors.ErrInvalidPriceRange)
	}
	if filter.hasPriceRange() && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, errors.ErrInvalidPriceRange
	}
	if filter.empty() {
		return cached(ctx, s.cache, activeCoursesKey, func() ([]model.Course, error) {
			return s.repo.FindActive(ctx)
		})
	}

	var (
		base []model.Course
		err  error
	)
	switch {
	case filter.hasPriceRange():
		base, err = s.repo.FindByPriceRange(ctx, *filter.MinPrice, *filter.MaxPrice)
	case filter.Category != "":
		base, err = s.repo.FindByCategory(ctx, filter.Category)
	default:
		base, err = s.repo.FindByLevel(ctx, filter.Level)
	}
	if err != nil {
		return nil, err
	}

	out := make([]model.Course, 0, len(base))
	for i := range base {
		if filter.matches(&base[i]) {
			out = append(out, base[i])
		}
	}
	return out, nil
}

func (s *courseService) Get(ctx context.Context, id uint) (*model.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil || !course.IsActive {
		return nil, errors.ErrCourseNotFound
	}
	return course, nil
}

func (s *courseService) Search(ctx context.Context, query string) ([]model.Course, error) {
	return s.repo.Search(ctx, query)
}

func (s *courseService) Featured(ctx context.Context, limit int) ([]model.Course, error) {
	return s.repo.FindFeatured(ctx, limit)
}

func (s *courseService) Popular(ctx context.Context, limit int) ([]model.Course, error) {
	return s.repo.FindPopular(ctx, limit)
}

func (s *courseService) Recent(ctx context.Context, limit int) ([]model.Course, error) {
	return s.repo.FindRecent(ctx, limit)
}

func (s *courseService) Stats(ctx context.Context) (*model.CourseStats, error) {
	return cached(ctx, s.cache, courseStatsKey, func() (*model.CourseStats, error) {
		return s.repo.Stats(ctx)
	})
}

// Invalidate drops every cached course view.
func (s *courseService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, activeCoursesKey, courseStatsKey)
}
