package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"microblog/app/services"

	"github.com/gorilla/mux"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// RequireAuth resolves the Authorization header to a username before
// the handler runs. Any failure short-circuits with 401, so protected
// handlers always see an authenticated user and never mutate state on
// behalf of an anonymous caller.
func RequireAuth(auth *services.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing or invalid Authorization header")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			username, err := auth.Authenticate(token)
			if err != nil {
				unauthorized(w, "could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated username set by RequireAuth,
// or "" when the request went through an unprotected route.
func CurrentUser(r *http.Request) string {
	username, _ := r.Context().Value(userContextKey).(string)
	return username
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
