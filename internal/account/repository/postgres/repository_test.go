package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthoniusHendriyanto/account-service/internal/account/domain"
	repo "github.com/AnthoniusHendriyanto/account-service/internal/account/repository/postgres"
)

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	columns := []string{"email", "password_hash", "nickname", "profile_image"}
	userEmail := "a@x.com"

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT email, password_hash").
			WithArgs(userEmail).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(userEmail, "hash", "Al", "f.jpg"))

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		assert.Equal(t, userEmail, user.Email)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Equal(t, "Al", user.Nickname)
		assert.Equal(t, "f.jpg", user.ProfileImage)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT email, password_hash").
			WithArgs(userEmail).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT email, password_hash").
			WithArgs(userEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, userEmail)
		assert.Error(t, err)
	})
}

// TestCreate covers the Create repository method.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	r := repo.NewPostgresRepository(mock)
	user := &domain.User{
		Email:        "a@x.com",
		PasswordHash: "hash",
		Nickname:     "Al",
		ProfileImage: "f.jpg",
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.Email, user.PasswordHash, user.Nickname, user.ProfileImage).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, user)
		assert.NoError(t, err)
	})

	t.Run("duplicate key", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.Email, user.PasswordHash, user.Nickname, user.ProfileImage).
			WillReturnError(fmt.Errorf("duplicate key value violates unique constraint"))

		err := r.Create(ctx, user)
		assert.Error(t, err)
	})
}

// TestDeleteByEmail covers the DeleteByEmail repository method.
func TestDeleteByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	r := repo.NewPostgresRepository(mock)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM users").
			WithArgs("a@x.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := r.DeleteByEmail(ctx, "a@x.com")
		assert.NoError(t, err)
	})

	t.Run("no matching row is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM users").
			WithArgs("missing@x.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := r.DeleteByEmail(ctx, "missing@x.com")
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM users").
			WithArgs("a@x.com").
			WillReturnError(fmt.Errorf("db error"))

		err := r.DeleteByEmail(ctx, "a@x.com")
		assert.Error(t, err)
	})
}
