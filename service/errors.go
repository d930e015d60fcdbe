// file: service/errors.go

package service

import "errors"

// Failure kinds returned by the auth services. The transport maps each one to a status code.
var (
	ErrValidation                   = errors.New("validation failed")
	ErrDuplicateEmail               = errors.New("email already registered")
	ErrDuplicateUsername            = errors.New("username already taken")
	ErrInvalidSecurityQuestion      = errors.New("invalid security question")
	ErrInvalidCredentials           = errors.New("incorrect username or password")
	ErrInactiveAccount              = errors.New("inactive user")
	ErrInvalidRefreshToken          = errors.New("invalid refresh token")
	ErrRefreshTokenExpiredOrRevoked = errors.New("refresh token expired or revoked")
	ErrUserNotFound                 = errors.New("user not found")
	ErrNotFound                     = errors.New("if this email exists, a security question has been configured")
	ErrNoSecurityQuestionSet        = errors.New("no security question set for this account")
	ErrIncorrectSecurityAnswer      = errors.New("incorrect security answer")
	ErrInvalidToken                 = errors.New("could not validate credentials")
	ErrSecurityQuestionNotFound     = errors.New("security question not found")
	ErrInternalFailure              = errors.New("internal failure")
)
