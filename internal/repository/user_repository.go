package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tuniskill/internal/model"
)

// UserRepository defines user persistence and directory queries.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindActive(ctx context.Context) ([]model.User, error)
	FindByUserType(ctx context.Context, userType string) ([]model.User, error)
	FindInstructors(ctx context.Context) ([]model.User, error)
	FindStudents(ctx context.Context) ([]model.User, error)
	FindAdmins(ctx context.Context) ([]model.User, error)
	Search(ctx context.Context, query string) ([]model.User, error)
	FindRecent(ctx context.Context, limit int) ([]model.User, error)
	FindByCountry(ctx context.Context, country string) ([]model.User, error)
	FindUnverified(ctx context.Context) ([]model.User, error)
	Stats(ctx context.Context) (*model.UserStats, error)
	TouchLastLogin(ctx context.Context, id uint) (time.Time, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB, opts ...Option) UserRepository {
	o := buildOptions(opts)
	return &userRepository{db: db, now: o.now}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	user.Stamp(r.now())
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	user.Touch(r.now())
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &user, nil
}

func (r *userRepository) FindActive(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Scopes(active).
		Order("created_at DESC").Order("id DESC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) FindByUserType(ctx context.Context, userType string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Scopes(active).
		Where("user_type = ?", userType).
		Order("created_at DESC").Order("id DESC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) FindInstructors(ctx context.Context) ([]model.User, error) {
	return r.FindByUserType(ctx, model.UserTypeInstructor)
}

func (r *userRepository) FindStudents(ctx context.Context) ([]model.User, error) {
	return r.FindByUserType(ctx, model.UserTypeStudent)
}

func (r *userRepository) FindAdmins(ctx context.Context) ([]model.User, error) {
	return r.FindByUserType(ctx, model.UserTypeAdmin)
}

// Search matches first name, last name or email by case-insensitive substring.
func (r *userRepository) Search(ctx context.Context, query string) ([]model.User, error) {
	var users []model.User
	p := likePattern(r.db, query)
	err := r.db.WithContext(ctx).Scopes(active).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", p, p, p).
		Order("first_name ASC").Order("id ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) FindRecent(ctx context.Context, limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Scopes(active).
		Order("created_at DESC").Order("id DESC").
		Limit(limitOr(limit, DefaultRecentLimit)).
		Find(&users).Error
	return users, err
}

func (r *userRepository) FindByCountry(ctx context.Context, country string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Scopes(active).
		Where("country = ?", country).
		Order("first_name ASC").Order("id ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) FindUnverified(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Scopes(active).
		Where("is_verified = ?", false).
		Order("created_at ASC").Order("id ASC").
		Find(&users).Error
	return users, err
}

// Stats aggregates active users by type and verification in a single query.
func (r *userRepository) Stats(ctx context.Context) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.db.WithContext(ctx).Model(&model.User{}).Scopes(active).
		Select(
			"COUNT(id) AS total_users, "+
				"COUNT(CASE WHEN user_type = ? THEN 1 END) AS total_students, "+
				"COUNT(CASE WHEN user_type = ? THEN 1 END) AS total_instructors, "+
				"COUNT(CASE WHEN is_verified = ? THEN 1 END) AS verified_users",
			model.UserTypeStudent, model.UserTypeInstructor, true,
		).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// TouchLastLogin records a successful login and returns the stamped time.
func (r *userRepository) TouchLastLogin(ctx context.Context, id uint) (time.Time, error) {
	now := r.now()
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"last_login_at": now, "updated_at": now}).Error
	return now, err
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}
