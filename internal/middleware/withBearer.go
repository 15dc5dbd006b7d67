// Package middleware provides the HTTP middleware stack: bearer-token
// authentication, request logging and response compression.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/globex/wordcount/internal/app/service"
	"github.com/globex/wordcount/internal/storage"
)

// ContextKey is a custom type used for keys in the context.
// It helps prevent collisions in context keys.
type ContextKey string

// UserIDKey is the key used to store and retrieve the user ID from the context.
const UserIDKey ContextKey = "userID"

// bearerScheme is the fixed prefix stripped off the Authorization header.
const bearerScheme = "Bearer "

// InjectUserID adds the user ID to the request context, making it
// accessible for downstream handlers.
func InjectUserID(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

// UserIDFromContext returns the verified user id set by WithBearer.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
}

// WithBearer guards protected routes. It rejects requests whose
// Authorization header is missing, shorter than 8 bytes or not using the
// Bearer scheme, verifies the token, and re-checks that the token's
// subject still resolves to an existing account before injecting the
// user id into the request context.
func WithBearer(auth service.AuthIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) < 8 || !strings.HasPrefix(header, bearerScheme) {
				unauthorized(w)
				return
			}

			userID, err := auth.Authenticate(r.Context(), header[len(bearerScheme):])
			if err != nil {
				if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, storage.ErrNotFound) {
					unauthorized(w)
					return
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"success":false,"error":"Internal error"}`))
				return
			}

			next.ServeHTTP(w, InjectUserID(r, userID))
		})
	}
}
