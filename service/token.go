// file: service/token.go

package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"go-auth-api/logger"
	"go-auth-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const refreshTokenBytes = 32

// TokenCodec signs and parses access tokens and mints opaque refresh tokens.
type TokenCodec struct {
	key    []byte
	method jwt.SigningMethod
	now    func() time.Time
}

// NewTokenCodec builds a codec for one of the HMAC algorithms (HS256, HS384, HS512).
func NewTokenCodec(secret, algorithm string) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("signing key must not be empty")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &TokenCodec{key: []byte(secret), method: method, now: time.Now}, nil
}

// IssueAccessToken signs a token for subject that expires after ttl.
func (c *TokenCodec) IssueAccessToken(subject string, ttl time.Duration) (string, error) {
	now := c.now()
	claims := &model.AccessClaims{
		Type: model.AccessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(c.method, claims)
	tokenString, err := token.SignedString(c.key)
	if err != nil {
		logger.Log.WithError(err).WithField("subject", subject).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, nil
}

// ParseAccessToken verifies signature, algorithm, expiry and type, and returns the subject.
// Every failure is reported as ErrInvalidToken; the cause is only logged.
func (c *TokenCodec) ParseAccessToken(tokenString string) (string, error) {
	claims := &model.AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return c.key, nil
		},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		cause := "malformed"
		if errors.Is(err, jwt.ErrTokenExpired) {
			cause = "expired"
		} else if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			cause = "signature"
		}
		logger.Log.WithField("cause", cause).Debug("Rejected access token")
		return "", ErrInvalidToken
	}

	if claims.Type != model.AccessTokenType || claims.Subject == "" {
		logger.Log.WithField("cause", "claims").Debug("Rejected access token")
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// IssueRefreshToken returns 32 random bytes as unpadded base64url. The value is opaque and
// only ever validated by store lookup.
func (c *TokenCodec) IssueRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
