package middlewares

import (
	"context"
	"net/http"

	"github.com/munawir355/muawir-alharbi/internal/jwt"
	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/models"
)

// Tokener defines the token operations needed by the guard.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves the authenticated principal from the token subject.
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware returns the protected-route guard: extract bearer token,
// validate it, resolve the subject claim to a local user, and store that
// user in the request context. A missing token, a failed validation, an
// empty subject, and an unknown user all collapse to the same bare 401 so
// the response reveals nothing about which step failed.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}
			if claims.Subject == "" {
				logger.Log.Error("authorization failed: token has no subject")
				unauthorized(w)
				return
			}

			user, err := users.GetByEmail(ctx, claims.Subject)
			if err != nil || user == nil {
				logger.Log.Errorw("authorization failed: unknown subject", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
}

type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if the request did not pass through AuthMiddleware.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
