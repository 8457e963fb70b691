package service

import (
	"context"

	"tuniskill/internal/model"
	"tuniskill/internal/repository"
)

// UserService exposes read-only user views.
type UserService interface {
	Stats(ctx context.Context) (*model.UserStats, error)
	Instructors(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Stats(ctx context.Context) (*model.UserStats, error) {
	return s.repo.Stats(ctx)
}

func (s *userService) Instructors(ctx context.Context) ([]model.User, error) {
	return s.repo.FindInstructors(ctx)
}

// Get returns the user or nil when no such user exists.
func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}
