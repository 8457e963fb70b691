package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuniskill/internal/auth"
	"tuniskill/internal/db/dbtest"
	"tuniskill/internal/fixture"
	"tuniskill/internal/model"
	"tuniskill/internal/repository"
)

func emails(users []model.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Email)
	}
	return out
}

func TestUserRepository_SeededPasswordsAreHashed(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.Seeded(t, seedTime))

	users, err := repo.FindActive(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 5)
	for _, u := range users {
		assert.NotEqual(t, fixture.DefaultPassword, u.PasswordHash)
		assert.True(t, auth.CheckPassword(u.PasswordHash, fixture.DefaultPassword), u.Email)
	}
	// each hash carries its own salt
	assert.NotEqual(t, users[0].PasswordHash, users[1].PasswordHash)
}

func TestUserRepository_FindByUserType(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.Seeded(t, seedTime))
	ctx := context.Background()

	instructors, err := repo.FindInstructors(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"john.doe@example.com", "jane.smith@example.com", "ahmed.benali@example.com"}, emails(instructors))

	admins, err := repo.FindAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@tuniskill.com"}, emails(admins))

	students, err := repo.FindStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"student@example.com"}, emails(students))
}

func TestUserRepository_SearchAndCountry(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.Seeded(t, seedTime))
	ctx := context.Background()

	found, err := repo.Search(ctx, "USER")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@tuniskill.com", "student@example.com"}, emails(found))

	found, err = repo.Search(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ahmed.benali@example.com",
		"jane.smith@example.com",
		"john.doe@example.com",
		"student@example.com",
	}, emails(found))

	tunisia, err := repo.FindByCountry(ctx, "Tunisia")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@tuniskill.com", "ahmed.benali@example.com", "student@example.com"}, emails(tunisia))
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.Seeded(t, seedTime))
	ctx := context.Background()

	u, err := repo.FindByEmail(ctx, "jane.smith@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Jane Smith", u.FullName())
	assert.Equal(t, []string{model.RoleInstructor, model.RoleUser}, u.EffectiveRoles())

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateEmailFails(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.Seeded(t, seedTime))

	dup := model.NewUser("student@example.com")
	dup.FirstName = "Other"
	dup.LastName = "Student"
	dup.PasswordHash = "x"
	assert.Error(t, repo.Create(context.Background(), dup))
}

func TestUserRepository_StatsAndUnverified(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(dbtest.Seeded(t, seedTime))

	newbie := model.NewUser("new@example.com")
	newbie.FirstName = "New"
	newbie.LastName = "Comer"
	newbie.PasswordHash = "x"
	require.NoError(t, repo.Create(ctx, newbie))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.UserStats{
		TotalUsers:       6,
		TotalStudents:    2,
		TotalInstructors: 3,
		VerifiedUsers:    5,
	}, *stats)

	unverified, err := repo.FindUnverified(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new@example.com"}, emails(unverified))
}

func TestUserRepository_TouchLastLogin(t *testing.T) {
	ctx := context.Background()
	loginAt := seedTime.Add(48 * time.Hour)
	gormDB := dbtest.Seeded(t, seedTime)
	repo := repository.NewUserRepository(gormDB, repository.WithClock(func() time.Time { return loginAt }))

	u, err := repo.FindByEmail(ctx, "admin@tuniskill.com")
	require.NoError(t, err)
	require.Nil(t, u.LastLoginAt)

	stamped, err := repo.TouchLastLogin(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, loginAt, stamped)

	u, err = repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, u.LastLoginAt)
	assert.True(t, u.LastLoginAt.Equal(loginAt))
	assert.True(t, u.UpdatedAt.Equal(loginAt))
	assert.True(t, u.CreatedAt.Equal(seedTime))
}
