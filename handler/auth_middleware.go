package handler

import (
	"context"
	"go-auth-api/common"
	"go-auth-api/model"
	"net/http"
	"strings"
)

type contextKey string

const UserKey contextKey = "user"

// UserFromContext returns the user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey).(*model.User)
	return user, ok && user != nil
}

// AuthMiddleware requires an `Authorization: Bearer <token>` header naming an active user.
func AuthMiddleware(resolver ITokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(nil).Send(w)
				return
			}

			headerParts := strings.Fields(authHeader)
			if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
				unauthorized(nil).Send(w)
				return
			}

			user, err := resolver.ResolveAccessToken(r.Context(), headerParts[1])
			if err != nil {
				toAppError(err, "Could not validate credentials").Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SuperuserMiddleware must run after AuthMiddleware.
func SuperuserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || !user.IsSuperuser {
			err := common.NewAppError(http.StatusForbidden, "Access denied. Superuser privileges required.", nil)
			err.Send(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
