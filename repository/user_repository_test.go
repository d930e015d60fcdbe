package repository

import (
	"context"
	"database/sql"
	"errors"
	"go-auth-api/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "email", "username", "hashed_password", "security_question_id", "hashed_security_answer",
	"is_active", "is_superuser", "created_at", "updated_at",
}

func TestUserRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	questionID := "0b7f1d3c-5a4e-4c6b-9f1e-2d3c4b5a6f70"
	answerHash := "answer-hash"

	t.Run("success assigns id and created_at", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(sqlmock.AnyArg(), "alice@x.com", "alice", "pw-hash", questionID, answerHash, true, false).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

		user := &model.User{
			Email: "alice@x.com", Username: "alice", PasswordHash: "pw-hash",
			SecurityQuestionID: &questionID, SecurityAnswerHash: &answerHash, IsActive: true,
		}
		err := repo.CreateUser(ctx, user)

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, created, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without security question writes nulls", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(sqlmock.AnyArg(), "bob@x.com", "bob", "pw-hash", nil, nil, true, false).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		err := repo.CreateUser(ctx, &model.User{Email: "bob@x.com", Username: "bob", PasswordHash: "pw-hash", IsActive: true})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violations are translated", func(t *testing.T) {
		cases := map[string]error{
			"users_email_key":    ErrDuplicateEmail,
			"users_username_key": ErrDuplicateUsername,
		}
		for constraint, want := range cases {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)
			mock.ExpectQuery(`INSERT INTO users`).
				WillReturnError(&pq.Error{Code: "23505", Constraint: constraint})

			err := repo.CreateUser(ctx, &model.User{Email: "a@x.com", Username: "a", PasswordHash: "h"})
			assert.ErrorIs(t, err, want, constraint)
		}
	})
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	created := time.Now().UTC()

	t.Run("found with security question", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		rows := sqlmock.NewRows(userRowColumns).
			AddRow("u1", "alice@x.com", "alice", "pw-hash", "q1", "ans-hash", true, false, created, nil)
		mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).WithArgs("alice").WillReturnRows(rows)

		user, err := repo.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		require.NotNil(t, user.SecurityQuestionID)
		assert.Equal(t, "q1", *user.SecurityQuestionID)
		assert.True(t, user.HasSecurityQuestion())
		assert.Nil(t, user.UpdatedAt)
	})

	t.Run("found without security question", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		rows := sqlmock.NewRows(userRowColumns).
			AddRow("u2", "bob@x.com", "bob", "pw-hash", nil, nil, true, false, created, created)
		mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).WithArgs("bob@x.com").WillReturnRows(rows)

		user, err := repo.GetUserByEmail(ctx, "bob@x.com")
		require.NoError(t, err)
		assert.False(t, user.HasSecurityQuestion())
		assert.NotNil(t, user.UpdatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("db error passes through", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		mock.ExpectQuery(`SELECT .+ FROM users`).WillReturnError(errors.New("db down"))

		_, err := repo.GetUserByUsername(ctx, "alice")
		assert.EqualError(t, err, "db down")
	})
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		mock.ExpectExec(`UPDATE users SET hashed_password = \$1, updated_at = \$2 WHERE id = \$3`).
			WithArgs("new-hash", sqlmock.AnyArg(), "u1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePassword(ctx, "u1", "new-hash"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePassword(ctx, "u1", "new-hash"), ErrNotFound)
	})
}
