package repository

import (
	"context"
	"database/sql"
	"go-auth-api/logger"
	"go-auth-api/model"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, email, username, hashed_password, security_question_id, hashed_security_answer,
	is_active, is_superuser, created_at, updated_at`

// CreateUser inserts a new user. ID is generated when empty; CreatedAt is read back.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	})
	log.Info("Executing query to create a new user")

	query := `INSERT INTO users (id, email, username, hashed_password, security_question_id, hashed_security_answer, is_active, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`
	err := r.DB.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Username, user.PasswordHash,
		nullString(user.SecurityQuestionID), nullString(user.SecurityAnswerHash),
		user.IsActive, user.IsSuperuser,
	).Scan(&user.CreatedAt)
	if err != nil {
		err = translate(err)
		if err == ErrDuplicateEmail || err == ErrDuplicateUsername {
			log.WithError(err).Info("User insert rejected by unique constraint")
		} else {
			log.WithError(err).Error("Failed to execute create user query")
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return r.getOne(ctx, "id", id)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, "email", email)
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, "username", username)
}

// getOne looks a user up by one of its unique columns. column is never user input.
func (r *UserRepository) getOne(ctx context.Context, column, value string) (*model.User, error) {
	log := logger.Log.WithField("lookup", column)
	log.Debug("Executing query to get user")

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1`

	var (
		user       model.User
		questionID sql.NullString
		answerHash sql.NullString
		updatedAt  sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, value).Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash, &questionID, &answerHash,
		&user.IsActive, &user.IsSuperuser, &user.CreatedAt, &updatedAt,
	)
	if err != nil {
		err = translate(err)
		if err != ErrNotFound {
			log.WithError(err).Error("Failed to execute get user query")
		}
		return nil, err
	}

	if questionID.Valid {
		user.SecurityQuestionID = &questionID.String
	}
	if answerHash.Valid {
		user.SecurityAnswerHash = &answerHash.String
	}
	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}
	return &user, nil
}

// UpdatePassword replaces the password hash and stamps updated_at.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to update user password")

	query := `UPDATE users SET hashed_password = $1, updated_at = $2 WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, passwordHash, time.Now().UTC(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update password query")
		return err
	}
	return expectRow(res)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
