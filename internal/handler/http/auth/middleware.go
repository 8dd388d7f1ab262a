// Package auth provides the authentication HTTP surface: registration
// and login endpoints, the bearer-token middleware, and the login rate
// limiter.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpress/internal/handler/http/respond"
	authservice "inkpress/internal/service/auth"
)

type ctxKey string

const ctxUserID ctxKey = "user_id"

// UserID returns the authenticated user id from the context, or the
// zero id for anonymous requests.
func UserID(ctx context.Context) primitive.ObjectID {
	if id, ok := ctx.Value(ctxUserID).(primitive.ObjectID); ok {
		return id
	}
	return primitive.NilObjectID
}

// WithUserID stores an authenticated user id in the context.
func WithUserID(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, ctxUserID, id)
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, prefix) {
		return "", false
	}
	return strings.TrimPrefix(authz, prefix), true
}

// Require wraps a handler so only requests with a valid bearer token
// pass through; the user id is stored in the request context.
func Require(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: missing bearer token"))
			return
		}
		userID, err := authservice.ParseToken(secret, token)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: invalid token"))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// Optional resolves a bearer token when one is present but lets
// anonymous requests through. Used on read endpoints whose results
// depend on who is asking (draft visibility).
// A malformed token is still rejected: silently downgrading a bad
// credential to anonymous would mask client bugs.
func Optional(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		userID, err := authservice.ParseToken(secret, token)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: invalid token"))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
