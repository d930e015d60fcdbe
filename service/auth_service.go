package service

import (
	"context"
	"errors"
	"fmt"
	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/repository"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	TokenTypeBearer      = "bearer"
	PasswordResetMessage = "Password reset successfully"
)

// AuthConfig holds the lifetimes the orchestrator works with.
type AuthConfig struct {
	AccessTokenTTL      time.Duration
	RefreshTokenTTL     time.Duration
	RefreshExtendWindow time.Duration
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthService drives registration, login, the refresh token lifecycle and
// security-question password recovery.
type AuthService struct {
	users     repository.IUserRepository
	questions repository.ISecurityQuestionRepository
	tokens    repository.ITokenRepository
	hasher    SecretHasher
	codec     *TokenCodec
	cfg       AuthConfig
	now       func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(
	users repository.IUserRepository,
	questions repository.ISecurityQuestionRepository,
	tokens repository.ITokenRepository,
	hasher SecretHasher,
	codec *TokenCodec,
	cfg AuthConfig,
) *AuthService {
	return &AuthService{
		users:     users,
		questions: questions,
		tokens:    tokens,
		hasher:    hasher,
		codec:     codec,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Register creates a user. The security question reference and answer are optional but
// travel together; the answer is normalized before hashing.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.PublicUser, error) {
	log := logger.Log.WithField("username", req.Username)

	if _, err := s.users.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.users.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if (req.SecurityQuestionID == "") != (req.SecurityAnswer == "") {
		return nil, fmt.Errorf("%w: security question and answer must be provided together", ErrValidation)
	}

	if req.SecurityQuestionID != "" {
		if err := s.checkQuestion(ctx, req.SecurityQuestionID); err != nil {
			return nil, err
		}
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	if req.SecurityQuestionID != "" {
		answerHash, err := s.hasher.Hash(NormalizeAnswer(req.SecurityAnswer))
		if err != nil {
			return nil, err
		}
		questionID := req.SecurityQuestionID
		user.SecurityQuestionID = &questionID
		user.SecurityAnswerHash = &answerHash
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Lost a registration race; the unique constraint decided.
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrDuplicateEmail
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return user.Public(), nil
}

func (s *AuthService) checkQuestion(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidSecurityQuestion
	}
	q, err := s.questions.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidSecurityQuestion
	}
	if err != nil {
		return err
	}
	if !q.IsActive {
		return ErrInvalidSecurityQuestion
	}
	return nil
}

// Authenticate verifies credentials and issues an access token plus a stored refresh token.
// Unknown usernames and wrong passwords fail identically.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*TokenPair, error) {
	log := logger.Log.WithField("username", username)

	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		// Spend the same bcrypt work as a real comparison.
		s.hasher.Verify(password, s.placeholderHash())
		log.Info("Login rejected")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.Info("Login rejected")
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		log.Warn("Login attempt on inactive account")
		return nil, ErrInactiveAccount
	}

	accessToken, err := s.codec.IssueAccessToken(user.Username, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.codec.IssueRefreshToken()
	if err != nil {
		return nil, err
	}

	rt := &model.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, rt); err != nil {
		return nil, fmt.Errorf("could not store refresh token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken, TokenType: TokenTypeBearer}, nil
}

func (s *AuthService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(uuid.NewString())
	})
	return s.dummyHash
}

// validRefreshToken loads a token and its owner and checks both are usable.
func (s *AuthService) validRefreshToken(ctx context.Context, token string) (*model.RefreshToken, *model.User, error) {
	rt, err := s.tokens.GetByToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, nil, err
	}
	if !rt.IsValid(s.now()) {
		return nil, nil, ErrRefreshTokenExpiredOrRevoked
	}

	user, err := s.users.GetUserByID(ctx, rt.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, ErrInactiveAccount
	}
	return rt, user, nil
}

// slide pushes the token's expiry forward by window from its current expiry.
func (s *AuthService) slide(ctx context.Context, rt *model.RefreshToken, window time.Duration) error {
	expiresAt := rt.ExpiresAt.Add(window)
	if err := s.tokens.UpdateExpiry(ctx, rt.ID, expiresAt); err != nil {
		return fmt.Errorf("%w: extend refresh token: %v", ErrInternalFailure, err)
	}
	rt.ExpiresAt = expiresAt
	return nil
}

// Refresh exchanges a valid refresh token for a new access token. Every success slides the
// refresh token's expiry forward; the refresh token string itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	rt, user, err := s.validRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	if err := s.slide(ctx, rt, s.cfg.RefreshExtendWindow); err != nil {
		return "", err
	}

	accessToken, err := s.codec.IssueAccessToken(user.Username, s.cfg.AccessTokenTTL)
	if err != nil {
		return "", err
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"expires_at": rt.ExpiresAt,
	}).Info("Access token refreshed")
	return accessToken, nil
}

// Extend renews a refresh token without issuing an access token. extendDays <= 0 uses the
// configured window. It returns false only when the token does not exist; an expired or
// revoked token is an error.
func (s *AuthService) Extend(ctx context.Context, refreshToken string, extendDays int) (bool, error) {
	rt, _, err := s.validRefreshToken(ctx, refreshToken)
	if errors.Is(err, ErrInvalidRefreshToken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	window := s.cfg.RefreshExtendWindow
	if extendDays > 0 {
		window = time.Duration(extendDays) * 24 * time.Hour
	}
	if err := s.slide(ctx, rt, window); err != nil {
		return false, err
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id":    rt.UserID,
		"expires_at": rt.ExpiresAt,
	}).Info("Refresh token extended")
	return true, nil
}

// Revoke marks one refresh token revoked. Unknown or already revoked tokens yield false.
func (s *AuthService) Revoke(ctx context.Context, refreshToken string) (bool, error) {
	revoked, err := s.tokens.Revoke(ctx, refreshToken)
	if err != nil {
		return false, err
	}
	logger.Log.WithField("revoked", revoked).Info("Refresh token revocation requested")
	return revoked, nil
}

// RevokeAllForUser revokes every live refresh token of a user and returns how many changed.
func (s *AuthService) RevokeAllForUser(ctx context.Context, userID string) (int64, error) {
	n, err := s.tokens.RevokeAllForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"revoked": n,
	}).Info("Revoked refresh tokens for user")
	return n, nil
}

// recoveryTarget loads the user behind a recovery request and checks a challenge is set.
func (s *AuthService) recoveryTarget(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !user.HasSecurityQuestion() {
		return nil, ErrNoSecurityQuestionSet
	}
	return user, nil
}

// ForgotPassword returns the prompt of the user's security question.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.recoveryTarget(ctx, email)
	if err != nil {
		return "", err
	}

	q, err := s.questions.GetByID(ctx, *user.SecurityQuestionID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrNoSecurityQuestionSet
	}
	if err != nil {
		return "", err
	}
	return q.Question, nil
}

// ResetPassword replaces the password after a correct security answer and revokes every
// session of the user.
func (s *AuthService) ResetPassword(ctx context.Context, email, securityAnswer, newPassword string) (string, error) {
	user, err := s.recoveryTarget(ctx, email)
	if err != nil {
		return "", err
	}
	log := logger.Log.WithField("user_id", user.ID)

	if !s.hasher.Verify(NormalizeAnswer(securityAnswer), *user.SecurityAnswerHash) {
		log.Info("Password reset rejected: incorrect security answer")
		return "", ErrIncorrectSecurityAnswer
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		log.WithError(err).Error("Failed to store new password")
		return "", fmt.Errorf("%w: update password: %v", ErrInternalFailure, err)
	}

	if _, err := s.RevokeAllForUser(ctx, user.ID); err != nil {
		log.WithError(err).Error("Password changed but sessions were not revoked")
		return "", fmt.Errorf("%w: revoke sessions: %v", ErrInternalFailure, err)
	}

	log.Info("Password reset completed")
	return PasswordResetMessage, nil
}

// CleanupExpired deletes refresh tokens past their expiry. Safe to run repeatedly.
func (s *AuthService) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := s.tokens.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	logger.Log.WithField("deleted", n).Info("Expired refresh tokens cleaned up")
	return n, nil
}

// CurrentUser resolves the user named by an access token subject.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}
	return user, nil
}

// ResolveAccessToken verifies a bearer token and loads its user.
func (s *AuthService) ResolveAccessToken(ctx context.Context, accessToken string) (*model.User, error) {
	username, err := s.codec.ParseAccessToken(accessToken)
	if err != nil {
		return nil, err
	}
	return s.CurrentUser(ctx, username)
}
