package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"weathering-atlas/internal/auth"
	"weathering-atlas/internal/shared/errors"
	"weathering-atlas/internal/shared/response"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// JWTMiddleware validates the bearer token and stores the claims on the
// request context.
func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "jwt",
			"method", r.Method,
			"path", r.URL.Path,
		)

		header := r.Header.Get("Authorization")
		if header == "" {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			response.Error(w, r, logger, errors.Unauthorized("authorization header must use the Bearer scheme"))
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			response.Error(w, r, logger, errors.Unauthorized("invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext returns the validated claims, or nil when the
// request did not pass through JWTMiddleware.
func GetClaimsFromContext(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsContextKey).(*auth.Claims)
	return claims
}

// AdminMiddleware rejects requests whose claims lack the admin flag.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "admin",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		claims := GetClaimsFromContext(r)
		if claims == nil {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		if !claims.Admin {
			logger.Warn("Non-admin token used on admin endpoint", "subject", claims.Subject)
			response.Error(w, r, logger, errors.Forbidden("admin access required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return JWTMiddleware(AdminMiddleware(next))
}
