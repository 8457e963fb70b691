// Package dbtest opens throwaway migrated SQLite databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tuniskill/internal/db"
	"tuniskill/internal/fixture"
)

// New returns an empty, migrated in-memory database private to t.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := db.NewSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gormDB
}

// Seeded returns a database loaded with the fixture dataset, stamped at now.
func Seeded(t testing.TB, now time.Time) *gorm.DB {
	t.Helper()
	gormDB := New(t)
	_, err := fixture.NewLoader(gormDB,
		fixture.WithBcryptCost(bcrypt.MinCost),
		fixture.WithClock(func() time.Time { return now }),
	).Load(context.Background())
	require.NoError(t, err)
	return gormDB
}
