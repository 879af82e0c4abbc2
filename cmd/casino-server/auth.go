package main

import (
	"context"
	"net/http"
	"strings"

	"code-casino/internal/app/session"
	"code-casino/internal/store"
)

type userContextKey struct{}

// userAuthMiddleware resolves the bearer token to a user and stashes it
// in the request context. Authenticated traffic also counts toward the
// daily active-user set.
func userAuthMiddleware(sessions *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := sessions.Authenticate(r.Context(), bearerToken(r))
			if err != nil {
				writeHTTPError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if strings.HasPrefix(auth, prefix) {
		return auth[len(prefix):]
	}
	return r.Header.Get("X-Session-Token")
}

func userFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(userContextKey{}).(*store.User)
	return u
}
