package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coursedesk/coursedesk/internal/platform/httpx"
	"github.com/coursedesk/coursedesk/internal/shared"
)

// Middleware gates routes behind HTTP Basic Authentication.
type Middleware struct {
	Service *Service
	Logger  *slog.Logger
}

// RequireUser authenticates the request's Basic credentials and stores the
// resolved user in the request context. Missing credentials and a wrong
// password answer 401 with no body; an unknown email answers 403 with a
// message naming it.
func (m Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			unauthorized(w)
			return
		}

		user, err := m.Service.Authenticate(r.Context(), email, password)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnknownUser):
				httpx.Error(w, shared.NewError(http.StatusForbidden, fmt.Sprintf("No user found with the email %s", email)))
			case errors.Is(err, ErrInvalidPassword):
				unauthorized(w)
			default:
				if m.Logger != nil {
					m.Logger.Error("authenticate user failed", "error", err)
				}
				httpx.Error(w, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="api"`)
	w.WriteHeader(http.StatusUnauthorized)
}
