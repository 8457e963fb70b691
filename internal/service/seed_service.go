package service

import (
	"context"

	"tuniskill/internal/fixture"
	"tuniskill/internal/logger"
)

// Seeder loads the demo dataset into an empty store.
type Seeder interface {
	LoadIfEmpty(ctx context.Context) (*fixture.Result, error)
}

// SeedService loads fixtures and drops catalog caches afterwards.
type SeedService interface {
	Seed(ctx context.Context) (*fixture.Result, error)
}

type seedService struct {
	seeder     Seeder
	courses    CourseService
	categories CategoryService
	log        *logger.Logger
}

// NewSeedService creates a new seed service.
func NewSeedService(seeder Seeder, courses CourseService, categories CategoryService, log *logger.Logger) SeedService {
	return &seedService{
		seeder:     seeder,
		courses:    courses,
		categories: categories,
		log:        log,
	}
}

func (s *seedService) Seed(ctx context.Context) (*fixture.Result, error) {
	res, err := s.seeder.LoadIfEmpty(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.courses.Invalidate(ctx); err != nil {
		s.log.Warn("course cache invalidation failed", "error", err)
	}
	if err := s.categories.Invalidate(ctx); err != nil {
		s.log.Warn("category cache invalidation failed", "error", err)
	}
	s.log.Info("fixtures loaded", "categories", res.Categories, "users", res.Users, "courses", res.Courses)
	return res, nil
}
