package service

import (
	"context"

	"tuniskill/internal/errors"
	"tuniskill/internal/model"
	"tuniskill/internal/repository"
)

const (
	activeCategoriesKey = "categories:active"
	categoryTreeKey     = "categories:tree"
)

// CategoryService serves the category listing and tree.
type CategoryService interface {
	List(ctx context.Context) ([]model.CategoryWithCount, error)
	Tree(ctx context.Context) ([]model.CategoryNode, error)
	Popular(ctx context.Context, limit int) ([]model.CategoryWithCount, error)
	Search(ctx context.Context, query string) ([]model.Category, error)
	BySlug(ctx context.Context, slug string) (*model.Category, error)
	Invalidate(ctx context.Context) error
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache Cache
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, cache Cache) CategoryService {
	return &categoryService{
		repo:  repo,
		cache: cache,
	}
}

// List returns active categories with their active course counts.
func (s *categoryService) List(ctx context.Context) ([]model.CategoryWithCount, error) {
	return cached(ctx, s.cache, activeCategoriesKey, func() ([]model.CategoryWithCount, error) {
		return s.repo.WithCourseCount(ctx)
	})
}

func (s *categoryService) Tree(ctx context.Context) ([]model.CategoryNode, error) {
	return cached(ctx, s.cache, categoryTreeKey, func() ([]model.CategoryNode, error) {
		return s.repo.Tree(ctx)
	})
}

func (s *categoryService) Popular(ctx context.Context, limit int) ([]model.CategoryWithCount, error) {
	return s.repo.FindPopular(ctx, limit)
}

func (s *categoryService) Search(ctx context.Context, query string) ([]model.Category, error) {
	return s.repo.Search(ctx, query)
}

func (s *categoryService) BySlug(ctx context.Context, slug string) (*model.Category, error) {
	category, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.ErrCategoryNotFound
	}
	return category, nil
}

func (s *categoryService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, activeCategoriesKey, categoryTreeKey)
}
