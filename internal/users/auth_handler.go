package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/svukovic/gymtrack/internal/auth"
	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=auth_handler_mocks_test.go -package=users_test

type authRepo interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type accountActivator interface {
	Activate(ctx context.Context, token, password string) (*User, error)
}

// AuthHandler serves the ungated auth endpoints: login, logout and
// invitation signup. Sessions live in redis, the browser keeps the token in
// the session cookie, non-browser clients send it via the auth token header.
type AuthHandler struct {
	repo        authRepo
	authService *auth.Service
	activator   accountActivator
}

func NewAuthHandler(repo authRepo, authService *auth.Service, activator accountActivator) *AuthHandler {
	return &AuthHandler{
		repo:        repo,
		authService: authService,
		activator:   activator,
	}
}

func (handler *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		loginReq = loginRequest{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if loginReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Errorf("login, get user %s: %s", loginReq.Email, err)
		}
		log.Tracef("[email] failed login attempt for: %s", loginReq.Email)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	// invited-but-not-activated accounts cannot log in
	if !user.IsActive {
		log.Tracef("[inactive] failed login attempt for: %s", loginReq.Email)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	if !pkg.CheckPasswordHash(loginReq.Password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for: %s", loginReq.Email)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.DefaultTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Tracef("new login success for user %d", user.ID)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token":"%s"}`, token))
}

func (handler *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	token := sessionToken(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.authService.Logout(ctx, token); err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	pkg.WriteTextResponseOK(w, "logged-out")
}

// HandleSignup activates an invited account: the invite token comes from
// the signup link path, the user picks a password.
func (handler *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.signup")
	defer span.End()

	vars := mux.Vars(r)
	token := vars["token"]
	if token == "" {
		pkg.WriteErrorPage(w, http.StatusNotFound)
		return
	}

	type signupRequest struct {
		Password string `json:"password"`
	}

	var signupReq signupRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
			log.Errorf("signup, unmarshal json params: %s", err)
			http.Error(w, "signup failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("signup failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		signupReq.Password = r.Form.Get("password")
	}

	if len(signupReq.Password) < 8 {
		pkg.WriteFieldErrors(w, pkg.FieldErrors{
			"password": "password must be at least 8 characters long",
		})
		return
	}

	user, err := handler.activator.Activate(ctx, token, signupReq.Password)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			pkg.WriteErrorPage(w, http.StatusNotFound)
			return
		}
		log.Errorf("signup, activate account: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("signup complete for user %d [%s]", user.ID, user.Email)

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("signup, marshal user: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusOK)
}

// sessionToken reads the session token from the cookie, falling back to
// the auth header for non-browser clients.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get(auth.AuthTokenHeader)
}
