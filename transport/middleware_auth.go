package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	authapp "github.com/gotrabandhus/gotrabandhus/application/auth"
	"github.com/gotrabandhus/gotrabandhus/constant"
	"github.com/gotrabandhus/gotrabandhus/utils/errors"
)

// AuthMiddleware validates bearer tokens via AuthApp and attaches the
// resolved user ID to the request context. Public endpoints (register,
// login, swagger) pass through untouched. Every token failure mode -
// missing, malformed, tampered, expired - is answered with the same 401 so
// nothing about token internals leaks.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if path == "/api/auth/login" || path == "/api/auth/register" {
		return true
	}

	return false
}
