// Package mwauth resolves the session token of a request to a user.
package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/policy"

	"github.com/go-chi/render"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// New attaches the user behind a Bearer token or the session cookie.
// Requests without a valid token pass through anonymously.
func New(log *slog.Logger, authn Authenticator, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			token := tokenFrom(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				log.Debug("session rejected", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

// Required answers 401 to anonymous requests.
func Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOnly answers 403 unless the user is an admin. Use after Required.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !policy.IsAdmin(UserFromContext(r.Context())) {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("administrator access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFromContext returns nil for anonymous requests.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(ctxKey{}).(*models.User)
	return u
}

func tokenFrom(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}

	return ""
}
