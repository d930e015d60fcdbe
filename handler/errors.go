package handler

import (
	"errors"
	"go-auth-api/common"
	"go-auth-api/service"
	"net/http"
)

// toAppError maps a service failure to its HTTP status and client-facing message.
// Anything unrecognised becomes a 500 carrying fallback as the message.
func toAppError(err error, fallback string) *common.AppError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return common.NewAppError(http.StatusUnprocessableEntity, "Security question and answer must be provided together", err)
	case errors.Is(err, service.ErrDuplicateEmail):
		return common.NewAppError(http.StatusBadRequest, "Email already registered", err)
	case errors.Is(err, service.ErrDuplicateUsername):
		return common.NewAppError(http.StatusBadRequest, "Username already taken", err)
	case errors.Is(err, service.ErrInvalidSecurityQuestion):
		return common.NewAppError(http.StatusBadRequest, "Invalid security question", err)
	case errors.Is(err, service.ErrInvalidCredentials):
		return common.NewAppError(http.StatusUnauthorized, "Incorrect username or password", err).
			WithHeader("WWW-Authenticate", "Bearer")
	case errors.Is(err, service.ErrInactiveAccount):
		return common.NewAppError(http.StatusBadRequest, "Inactive user", err)
	case errors.Is(err, service.ErrInvalidRefreshToken):
		return common.NewAppError(http.StatusUnauthorized, "Invalid refresh token", err)
	case errors.Is(err, service.ErrRefreshTokenExpiredOrRevoked):
		return common.NewAppError(http.StatusUnauthorized, "Refresh token expired or revoked", err)
	case errors.Is(err, service.ErrUserNotFound):
		return common.NewAppError(http.StatusNotFound, "User not found", err)
	case errors.Is(err, service.ErrNotFound):
		return common.NewAppError(http.StatusNotFound, "If this email exists, a security question has been configured", err)
	case errors.Is(err, service.ErrNoSecurityQuestionSet):
		return common.NewAppError(http.StatusBadRequest, "No security question set for this account", err)
	case errors.Is(err, service.ErrIncorrectSecurityAnswer):
		return common.NewAppError(http.StatusBadRequest, "Incorrect security answer", err)
	case errors.Is(err, service.ErrInvalidToken):
		return unauthorized(err)
	case errors.Is(err, service.ErrSecurityQuestionNotFound):
		return common.NewAppError(http.StatusNotFound, "Security question not found", err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

func unauthorized(err error) *common.AppError {
	return common.NewAppError(http.StatusUnauthorized, "Could not validate credentials", err).
		WithHeader("WWW-Authenticate", "Bearer")
}
