package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthapp/healthtrack/internal/user/domain"
)

func mysqlUserRows(t *testing.T, user *domain.User) *sqlmock.Rows {
	t.Helper()
	idBytes, err := user.ID.MarshalBinary()
	require.NoError(t, err)

	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "email", "password",
		"age", "weight", "lifestyle", "created_at", "updated_at",
	}).AddRow(
		idBytes, user.FirstName, user.LastName, user.Email, user.Password,
		user.Age, user.Weight, string(user.Lifestyle), now, now,
	)
}

func TestMySQLUserRepository_Create(t *testing.T) {
	t.Run("successful insert stores id as binary", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		user := newUserFixture()
		idBytes, err := user.ID.MarshalBinary()
		require.NoError(t, err)

		dbMock.ExpectExec("INSERT INTO users").
			WithArgs(idBytes, user.FirstName, user.LastName, user.Email, user.Password,
				user.Age, user.Weight, user.Lifestyle).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLUserRepository(db)
		require.NoError(t, repo.Create(context.Background(), user))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("duplicate entry maps to already exists", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec("INSERT INTO users").
			WillReturnError(errors.New("Error 1062: Duplicate entry 'jane@example.com' for key 'users.email'"))

		repo := NewMySQLUserRepository(db)
		err = repo.Create(context.Background(), newUserFixture())
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestMySQLUserRepository_GetByEmail(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	user := newUserFixture()
	dbMock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(mysqlUserRows(t, user))

	repo := NewMySQLUserRepository(db)
	got, err := repo.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Lifestyle, got.Lifestyle)
}

func TestMySQLUserRepository_GetByID_NotFound(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewMySQLUserRepository(db)
	_, err = repo.GetByID(context.Background(), newUserFixture().ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
