package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/lostfound-project/lostfound-api/internal/db"
)

func TestUserWriteRepository_Save(t *testing.T) {
	testDB := db.NewTestDB(t)
	writeRepo := NewUserWriteRepository(testDB)
	readRepo := NewUserReadRepository(testDB)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, "Alice", "alice@example.com", "hash123")
	assert.NoError(t, err)
	assert.Greater(t, id, int64(0))

	user, err := readRepo.GetByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash123", user.Password)
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	testDB := db.NewTestDB(t)
	writeRepo := NewUserWriteRepository(testDB)
	readRepo := NewUserReadRepository(testDB)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "Alice", "alice@example.com", "hash123")
	assert.NoError(t, err)

	_, err = writeRepo.Save(ctx, "Mallory", "alice@example.com", "hash456")
	assert.Error(t, err)

	var sqliteErr sqlite3.Error
	assert.True(t, errors.As(err, &sqliteErr))
	assert.Equal(t, sqlite3.ErrConstraintUnique, sqliteErr.ExtendedCode)

	// The first row is untouched.
	user, err := readRepo.GetByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "hash123", user.Password)
}

func TestUserReadRepository_GetByEmail_NotFound(t *testing.T) {
	testDB := db.NewTestDB(t)
	readRepo := NewUserReadRepository(testDB)

	user, err := readRepo.GetByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositories_DriverErrors(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	readRepo := NewUserReadRepository(sqlxDB)
	writeRepo := NewUserWriteRepository(sqlxDB)
	ctx := context.Background()

	mock.ExpectQuery("(?s)SELECT (.+) FROM users").WillReturnError(assert.AnError)
	_, err = readRepo.GetByEmail(ctx, "alice@example.com")
	assert.Error(t, err)

	mock.ExpectExec("INSERT INTO users").WillReturnError(assert.AnError)
	_, err = writeRepo.Save(ctx, "Alice", "alice@example.com", "hash123")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
