package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"kiit_connect/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()
	user := &model.User{Email: "a@b.com", Name: "a", PasswordHash: "hash", Role: model.RoleStudent, CreatedAt: now, LastLogin: now}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("a@b.com", "a", "hash", model.RoleStudent, now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

	err := repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, 42, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), &model.User{Email: "a@b.com"})

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_OtherError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &model.User{Email: "a@b.com"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@b.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "created_at", "last_login"}).
			AddRow(1, "a@b.com", "Alice", "hash", model.RoleAdmin, created, created))

	user, err := repo.FindByEmail(context.Background(), "a@b.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, created, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ghost@b.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "ghost@b.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_FindByEmail_DBError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@b.com").
		WillReturnError(errors.New("db down"))

	user, err := repo.FindByEmail(context.Background(), "a@b.com")

	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	at := time.Now()

	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs(at, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateLastLogin(context.Background(), 3, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
