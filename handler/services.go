package handler

import (
	"context"
	"go-auth-api/model"
	"go-auth-api/service"
)

// IAuthService is the part of service.AuthService the HTTP layer drives.
type IAuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.PublicUser, error)
	Authenticate(ctx context.Context, username, password string) (*service.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Extend(ctx context.Context, refreshToken string, extendDays int) (bool, error)
	Revoke(ctx context.Context, refreshToken string) (bool, error)
	RevokeAllForUser(ctx context.Context, userID string) (int64, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, securityAnswer, newPassword string) (string, error)
}

// ITokenResolver turns a bearer token into the active user it names.
type ITokenResolver interface {
	ResolveAccessToken(ctx context.Context, accessToken string) (*model.User, error)
}

type ISecurityQuestionService interface {
	ListActive(ctx context.Context) ([]*model.SecurityQuestion, error)
	Deactivate(ctx context.Context, id string) error
}
