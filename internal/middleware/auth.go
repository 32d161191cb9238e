package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/svukovic/gymtrack/internal/auth"
	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	SessionUserID(ctx context.Context, token string) (int, error)
}

type usersGetter interface {
	Get(ctx context.Context, id int) (*users.User, error)
}

// AuthMiddlewareHandler gates all pages behind a login session. Requests
// carrying a valid session token get the user attached to the context,
// everything else is redirected to the login page.
type AuthMiddlewareHandler struct {
	loginChecker         loginChecker
	usersRepo            usersGetter
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(
	loginChecker loginChecker,
	usersRepo usersGetter,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
		usersRepo:    usersRepo,
		allowedPaths: map[string]bool{
			"/login":  true,
			"/logout": true,
		},
		allowedPathsPrefixes: []string{
			"/signup/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "allowed-path")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token := sessionToken(r)
			if token == "" {
				span.SetStatus(codes.Ok, "no-session")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			userID, err := h.loginChecker.SessionUserID(ctx, token)
			if err != nil {
				log.Tracef("[auth middleware] [path %s]: %s", r.URL.Path, err)
				span.SetStatus(codes.Ok, "invalid-session")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			user, err := h.usersRepo.Get(ctx, userID)
			if err != nil {
				log.Errorf("[auth middleware] get user %d: %s", userID, err)
				span.SetStatus(codes.Error, "get-user-failed")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !user.IsActive {
				span.SetStatus(codes.Ok, "inactive-user")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			span.SetStatus(codes.Ok, "")
			next.ServeHTTP(w, r.WithContext(users.ContextWithUser(ctx, user)))
		})
	}
}

// sessionToken reads the session token from the session cookie, falling
// back to the auth token header for non-browser clients.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get(auth.AuthTokenHeader)
}
