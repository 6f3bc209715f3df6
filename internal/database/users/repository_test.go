package users

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/svidal/rutinas-api/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_users_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.User{}))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return NewRepository(db), cleanup
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.Create("ana", "$2a$12$fakehash")
	require.NoError(t, err)
	assert.Greater(t, user.ID, uint(0))
	assert.Equal(t, "ana", user.Username)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Create("ana", "$2a$12$fakehash")
	require.NoError(t, err)

	_, err = repo.Create("ana", "$2a$12$otherhash")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("ana", "$2a$12$fakehash")
	require.NoError(t, err)

	fetched, err := repo.GetByUsername("ana")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "$2a$12$fakehash", fetched.PasswordHash)

	_, err = repo.GetByUsername("nadie")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
