package fixture

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tuniskill/internal/auth"
	"tuniskill/internal/errors"
	"tuniskill/internal/repository"
)

// Result counts the rows a load inserted.
type Result struct {
	Categories int `json:"categories"`
	Users      int `json:"users"`
	Courses    int `json:"courses"`
}

// Loader writes the demo dataset into a store.
type Loader struct {
	db         *gorm.DB
	bcryptCost int
	repoOpts   []repository.Option
}

// Option configures a Loader.
type Option func(*Loader)

// WithBcryptCost sets the work factor for seeded password hashes.
func WithBcryptCost(cost int) Option {
	return func(l *Loader) { l.bcryptCost = cost }
}

// WithClock sets the time used for created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) { l.repoOpts = append(l.repoOpts, repository.WithClock(now)) }
}

// NewLoader creates a fixture loader bound to db.
func NewLoader(db *gorm.DB, opts ...Option) *Loader {
	l := &Loader{db: db, bcryptCost: auth.DefaultBcryptCost}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsEmpty reports whether no category, user or course rows exist.
func (l *Loader) IsEmpty(ctx context.Context) (bool, error) {
	counters := []func(context.Context) (int64, error){
		repository.NewCategoryRepository(l.db).Count,
		repository.NewUserRepository(l.db).Count,
		repository.NewCourseRepository(l.db).Count,
	}
	for _, count := range counters {
		n, err := count(ctx)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

// Load inserts every fixture row in one transaction. It does not check for
// existing data: loading twice fails on the unique slug and email indexes.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	res := &Result{}
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := repository.NewCategoryRepository(tx, l.repoOpts...)
		users := repository.NewUserRepository(tx, l.repoOpts...)
		courses := repository.NewCourseRepository(tx, l.repoOpts...)

		for _, c := range Categories() {
			if err := categories.Create(ctx, c); err != nil {
				return fmt.Errorf("create category %s: %w", c.Slug, err)
			}
			res.Categories++
		}

		for _, u := range Users() {
			hash, err := auth.HashPassword(DefaultPassword, l.bcryptCost)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
			if err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("create user %s: %w", u.Email, err)
			}
			res.Users++
		}

		for _, c := range Courses() {
			if err := courses.Create(ctx, c); err != nil {
				return fmt.Errorf("create course %q: %w", c.Title, err)
			}
			res.Courses++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// LoadIfEmpty loads the fixtures only into an empty store.
func (l *Loader) LoadIfEmpty(ctx context.Context) (*Result, error) {
	empty, err := l.IsEmpty(ctx)
	if err != nil {
		return nil, err
	}
	if !empty {
		return nil, errors.ErrStoreNotEmpty
	}
	return l.Load(ctx)
}
