package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Default result sizes for the bounded finders when the caller passes limit <= 0.
const (
	DefaultFeaturedLimit = 6
	DefaultPopularLimit  = 10
	DefaultRecentLimit   = 10
)

// Option configures a repository.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used to stamp created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// likePattern builds a case-insensitive substring pattern; callers compare it
// against LOWER(column). The query is folded the way the dialect's LOWER()
// folds: SQLite only lowercases ASCII letters.
func likePattern(db *gorm.DB, query string) string {
	if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		return "%" + asciiLower(query) + "%"
	}
	return "%" + strings.ToLower(query) + "%"
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func limitOr(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}

// notFoundAsNil turns gorm.ErrRecordNotFound into an absent result.
func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
