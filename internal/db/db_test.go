package db

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuniskill/internal/model"
)

func memoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestMigrateAndReset(t *testing.T) {
	gormDB, err := Open(DriverSQLite, memoryDSN())
	require.NoError(t, err)

	require.NoError(t, Migrate(gormDB))
	for _, table := range []string{"categories", "courses", "users", "messenger_messages"} {
		assert.True(t, gormDB.Migrator().HasTable(table), table)
	}
	assert.True(t, gormDB.Migrator().HasIndex(&model.Category{}, "Slug"))

	require.NoError(t, Reset(gormDB))
	for _, table := range []string{"categories", "courses", "users", "messenger_messages"} {
		assert.False(t, gormDB.Migrator().HasTable(table), table)
	}

	// dropping an already empty schema is fine
	require.NoError(t, Reset(gormDB))
}
