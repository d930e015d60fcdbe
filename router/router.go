package router

import (
	_ "go-auth-api/docs"
	"go-auth-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(authHandler *handler.AuthHandler, questionHandler *handler.SecurityQuestionHandler, resolver handler.ITokenResolver) http.Handler {
	mux := http.NewServeMux()
	authenticated := handler.AuthMiddleware(resolver)

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// --- Public Routes ---
	mux.Handle("POST /api/v1/auth/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("POST /api/v1/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/v1/auth/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))
	mux.Handle("POST /api/v1/auth/extend", handler.ErrorHandlingMiddleware(authHandler.Extend))
	mux.Handle("POST /api/v1/auth/logout", handler.ErrorHandlingMiddleware(authHandler.Logout))
	mux.Handle("POST /api/v1/auth/forgot-password", handler.ErrorHandlingMiddleware(authHandler.ForgotPassword))
	mux.Handle("POST /api/v1/auth/reset-password", handler.ErrorHandlingMiddleware(authHandler.ResetPassword))
	mux.Handle("GET /api/v1/auth/security-questions", handler.ErrorHandlingMiddleware(questionHandler.ListSecurityQuestions))

	// --- Protected Routes ---
	mux.Handle("GET /api/v1/auth/me", authenticated(handler.ErrorHandlingMiddleware(authHandler.Me)))
	mux.Handle("POST /api/v1/auth/logout-all", authenticated(handler.ErrorHandlingMiddleware(authHandler.LogoutAll)))

	// --- Superuser Routes ---
	mux.Handle("DELETE /api/v1/auth/security-questions/{id}",
		authenticated(handler.SuperuserMiddleware(handler.ErrorHandlingMiddleware(questionHandler.DeactivateSecurityQuestion))))

	return mux
}
