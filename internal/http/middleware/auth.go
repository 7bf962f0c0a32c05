package middleware

import (
	"context"
	"net/http"

	"github.com/Alubalulu/sales-forecast-app/internal/http/api"
	"github.com/Alubalulu/sales-forecast-app/internal/http/authz"
	"github.com/Alubalulu/sales-forecast-app/internal/http/session"
	"github.com/Alubalulu/sales-forecast-app/internal/models"
	"github.com/go-chi/render"
)

type key int

const userKey key = 1

type UserProvider interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
}

func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the user the session middleware resolved, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

// Session resolves the session cookie into a user row and puts it on the
// request context. Requests without a valid session pass through anonymous;
// role enforcement happens in Require.
func Session(sm *session.Manager, users UserProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sm.UserID(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				// stale cookie for a row that no longer exists
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// Require rejects anonymous requests with 401 and authenticated requests
// whose role the policy table does not allow for op with 403.
func Require(op authz.Op) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "authentication required"))
				return
			}

			if !authz.Allowed(op, user.Role) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, api.Error(api.ErrCodeForbidden, "access denied"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
