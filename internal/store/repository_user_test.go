package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/models"
)

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO users (email,password_hash) VALUES ($1,$2) RETURNING user_id, created_at",
	)).
		WithArgs("a@b.c", "bcrypt-hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}).AddRow(int64(1), createdAt))

	user, err := repo.CreateUser(context.Background(), models.User{
		Email:        "a@b.c",
		Password:     "plain",
		PasswordHash: "bcrypt-hash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.UserID)
	assert.Empty(t, user.Password, "plaintext password must not survive creation")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a@b.c", "bcrypt-hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.c", PasswordHash: "bcrypt-hash"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestUserRepository_FindUserByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT user_id, email, password_hash, created_at FROM users WHERE email = $1",
	)).
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "password_hash", "created_at"}).
			AddRow(int64(3), "a@b.c", "bcrypt-hash", createdAt))

	user, err := repo.FindUserByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Equal(t, "bcrypt-hash", user.PasswordHash)
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, email, password_hash, created_at FROM users")).
		WithArgs("ghost@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "password_hash", "created_at"}))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@b.c")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
