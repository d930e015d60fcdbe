// file: repository/token_repository.go

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

// ITokenRepository defines the contract for refresh token database operations.
type ITokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*model.RefreshToken, error)
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error
	Revoke(ctx context.Context, token string) (bool, error)
	RevokeAllForUser(ctx context.Context, userID string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenRepository implements ITokenRepository.
type TokenRepository struct {
	DB *sql.DB
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// tokenPrefix keeps raw refresh tokens out of the logs.
func tokenPrefix(token string) string {
	if len(token) <= 6 {
		return "***"
	}
	return token[:6] + "***"
}

// Create inserts a new refresh token record into the database.
func (r *TokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    token.UserID,
		"expires_at": token.ExpiresAt,
	})
	log.Info("Executing query to create a new refresh token")

	query := `INSERT INTO refresh_tokens (id, token, user_id, expires_at, is_revoked) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.DB.QueryRowContext(ctx, query, token.ID, token.Token, token.UserID, token.ExpiresAt, token.IsRevoked).Scan(&token.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create refresh token query")
		return translate(err)
	}
	return nil
}

// GetByToken retrieves a refresh token by its opaque value.
func (r *TokenRepository) GetByToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	log := logger.Log.WithField("token", tokenPrefix(token))
	log.Debug("Executing query to get refresh token")

	rt := &model.RefreshToken{}
	var updatedAt sql.NullTime
	query := `SELECT id, token, user_id, expires_at, is_revoked, created_at, updated_at FROM refresh_tokens WHERE token = $1`
	err := r.DB.QueryRowContext(ctx, query, token).Scan(
		&rt.ID, &rt.Token, &rt.UserID, &rt.ExpiresAt, &rt.IsRevoked, &rt.CreatedAt, &updatedAt,
	)
	if err != nil {
		err = translate(err)
		if err != ErrNotFound {
			log.WithError(err).Error("Failed to execute get refresh token query")
		}
		return nil, err
	}
	if updatedAt.Valid {
		rt.UpdatedAt = &updatedAt.Time
	}
	return rt, nil
}

// UpdateExpiry overwrites the absolute expiry of a token. Concurrent writers race with
// last-write-wins semantics.
func (r *TokenRepository) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	log := logger.Log.WithFields(logrus.Fields{
		"refresh_token_id": id,
		"expires_at":       expiresAt,
	})
	log.Info("Executing query to extend refresh token")

	query := `UPDATE refresh_tokens SET expires_at = $1, updated_at = $2 WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, expiresAt, time.Now().UTC(), id)
	if err != nil {
		log.WithError(err).Error("Failed to execute extend refresh token query")
		return err
	}
	return expectRow(res)
}

// Revoke marks one unrevoked token as revoked. It reports false when the token is unknown
// or already revoked.
func (r *TokenRepository) Revoke(ctx context.Context, token string) (bool, error) {
	log := logger.Log.WithField("token", tokenPrefix(token))
	log.Info("Executing query to revoke refresh token")

	query := `UPDATE refresh_tokens SET is_revoked = TRUE, updated_at = $1 WHERE token = $2 AND NOT is_revoked`
	res, err := r.DB.ExecContext(ctx, query, time.Now().UTC(), token)
	if err != nil {
		log.WithError(err).Error("Failed to execute revoke refresh token query")
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeAllForUser revokes every unrevoked token of a user and returns how many changed.
func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userID string) (int64, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to revoke all refresh tokens for a user")

	query := `UPDATE refresh_tokens SET is_revoked = TRUE, updated_at = $1 WHERE user_id = $2 AND NOT is_revoked`
	res, err := r.DB.ExecContext(ctx, query, time.Now().UTC(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute revoke all refresh tokens query")
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteExpired removes tokens whose expiry has passed, revoked or not.
func (r *TokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.Log.WithField("cutoff", now)
	log.Info("Executing query to delete expired refresh tokens")

	res, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= $1`, now)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete expired refresh tokens query")
		return 0, err
	}
	return res.RowsAffected()
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
