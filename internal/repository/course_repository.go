package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tuniskill/internal/model"
)

// CourseRepository defines course persistence and catalog queries.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	FindActive(ctx context.Context) ([]model.Course, error)
	FindFeatured(ctx context.Context, limit int) ([]model.Course, error)
	FindByCategory(ctx context.Context, category string) ([]model.Course, error)
	FindByLevel(ctx context.Context, level string) ([]model.Course, error)
	Search(ctx context.Context, query string) ([]model.Course, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.Course, error)
	FindPopular(ctx context.Context, limit int) ([]model.Course, error)
	FindRecent(ctx context.Context, limit int) ([]model.Course, error)
	Stats(ctx context.Context) (*model.CourseStats, error)
	Count(ctx context.Context) (int64, error)
}

type courseRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB, opts ...Option) CourseRepository {
	o := buildOptions(opts)
	return &courseRepository{db: db, now: o.now}
}

// Create validates and inserts a course, stamping both timestamps.
func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}
	course.Stamp(r.now())
	return r.db.WithContext(ctx).Create(course).Error
}

// Update validates and saves a course, refreshing updated_at.
func (r *courseRepository) Update(ctx context.Context, course *model.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}
	course.Touch(r.now())
	return r.db.WithContext(ctx).Save(course).Error
}

// FindByID finds a course by ID. A missing course yields (nil, nil).
func (r *courseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &course, nil
}

// FindActive lists active courses, newest first.
func (r *courseRepository) FindActive(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Scopes(active).
		Order("created_at DESC").Order("id DESC").
		Find(&courses).Error
	return courses, err
}

// FindFeatured lists featured courses ranked by rating then student count.
func (r *courseRepository) FindFeatured(ctx context.Context, limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Scopes(active).
		Where("is_featured = ?", true).
		Order("rating DESC").Order("students DESC").Order("id ASC").
		Limit(limitOr(limit, DefaultFeaturedLimit)).
		Find(&courses).Error
	return courses, err
}

// FindByCategory lists active courses whose category string matches exactly.
func (r *courseRepository) FindByCategory(ctx context.Context, category string) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Scopes(active).
		Where("category = ?", category).
		Order("rating DESC").Order("id ASC").
		Find(&courses).Error
	return courses, err
}

// FindByLevel lists active courses of one level.
func (r *courseRepository) FindByLevel(ctx context.Context, level string) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Scopes(active).
		Where("level = ?", level).
		Order("rating DESC").Order("id ASC").
		Find(&courses).Error
	return courses, err
}

// Search matches title, description or instructor by case-insensitive substring.
func (r *courseRepository) Search(ctx context.Context, query string) ([]model.Course, error) {
	var courses []model.Course
	p := likePattern(r.db, query)
	err := r.db.WithContext(ctx).Scopes(active).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(instructor) LIKE ?", p, p, p).
		Order("rating DESC").Order("id ASC").
		Find(&courses).Error
	return courses, err
}

// FindByPriceRange lists active courses priced within [minPrice, maxPrice], cheapest first.
func (r *courseRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Scopes(active).
		Where("price BETWEEN ? AND ?", minPrice, maxPrice).
		Order("price ASC").Order("id ASC").
		Find(&courses).Error
	return courses, err
}

// FindPopular lists the most enrolled active courses.
func (r *courseRepository) FindPopular(ctx context.Context, limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Scopes(active).
		Order("students DESC").Order("rating DESC").Order("id ASC").
		Limit(limitOr(limit, DefaultPopularLimit)).
		Find(&courses).Error
	return courses, err
}

// FindRecent lists the newest active courses.
func (r *courseRepository) FindRecent(ctx context.Context, limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Scopes(active).
		Order("created_at DESC").Order("id DESC").
		Limit(limitOr(limit, DefaultRecentLimit)).
		Find(&courses).Error
	return courses, err
}

// Stats aggregates active courses in a single query.
func (r *courseRepository) Stats(ctx context.Context) (*model.CourseStats, error) {
	var stats model.CourseStats
	err := r.db.WithContext(ctx).Model(&model.Course{}).Scopes(active).
		Select("COUNT(id) AS total_courses, COALESCE(AVG(rating), 0) AS average_rating, COALESCE(SUM(students), 0) AS total_students").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Count returns the number of course rows, active or not.
func (r *courseRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Course{}).Count(&n).Error
	return n, err
}
