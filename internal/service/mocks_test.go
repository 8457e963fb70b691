package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"tuniskill/internal/auth"
	"tuniskill/internal/model"
)

// MockCourseRepository is a mock implementation of CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) courses(args mock.Arguments) ([]model.Course, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCourseRepository) Create(ctx context.Context, course *model.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *model.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) FindActive(ctx context.Context) ([]model.Course, error) {
	return m.courses(m.Called(ctx))
}

func (m *MockCourseRepository) FindFeatured(ctx context.Context, limit int) ([]model.Course, error) {
	return m.courses(m.Called(ctx, limit))
}

func (m *MockCourseRepository) FindByCategory(ctx context.Context, category string) ([]model.Course, error) {
	return m.courses(m.Called(ctx, category))
}

func (m *MockCourseRepository) FindByLevel(ctx context.Context, level string) ([]model.Course, error) {
	return m.courses(m.Called(ctx, level))
}

func (m *MockCourseRepository) Search(ctx context.Context, query string) ([]model.Course, error) {
	return m.courses(m.Called(ctx, query))
}

func (m *MockCourseRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.Course, error) {
	return m.courses(m.Called(ctx, minPrice, maxPrice))
}

func (m *MockCourseRepository) FindPopular(ctx context.Context, limit int) ([]model.Course, error) {
	return m.courses(m.Called(ctx, limit))
}

func (m *MockCourseRepository) FindRecent(ctx context.Context, limit int) ([]model.Course, error) {
	return m.courses(m.Called(ctx, limit))
}

func (m *MockCourseRepository) Stats(ctx context.Context) (*model.CourseStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CourseStats), args.Error(1)
}

func (m *MockCourseRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) user(args mock.Arguments) (*model.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) users(args mock.Arguments) ([]model.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepository) FindActive(ctx context.Context) ([]model.User, error) {
	return m.users(m.Called(ctx))
}

func (m *MockUserRepository) FindByUserType(ctx context.Context, userType string) ([]model.User, error) {
	return m.users(m.Called(ctx, userType))
}

func (m *MockUserRepository) FindInstructors(ctx context.Context) ([]model.User, error) {
	return m.users(m.Called(ctx))
}

func (m *MockUserRepository) FindStudents(ctx context.Context) ([]model.User, error) {
	return m.users(m.Called(ctx))
}

func (m *MockUserRepository) FindAdmins(ctx context.Context) ([]model.User, error) {
	return m.users(m.Called(ctx))
}

func (m *MockUserRepository) Search(ctx context.Context, query string) ([]model.User, error) {
	return m.users(m.Called(ctx, query))
}

func (m *MockUserRepository) FindRecent(ctx context.Context, limit int) ([]model.User, error) {
	return m.users(m.Called(ctx, limit))
}

func (m *MockUserRepository) FindByCountry(ctx context.Context, country string) ([]model.User, error) {
	return m.users(m.Called(ctx, country))
}

func (m *MockUserRepository) FindUnverified(ctx context.Context) ([]model.User, error) {
	return m.users(m.Called(ctx))
}

func (m *MockUserRepository) Stats(ctx context.Context) (*model.UserStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserStats), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uint) (time.Time, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, session auth.RefreshSession, ttl time.Duration) error {
	return m.Called(ctx, tokenID, session, ttl).Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (*auth.RefreshSession, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.RefreshSession), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return m.Called(ctx, tokenID).Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, tokenID, ttl).Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}
