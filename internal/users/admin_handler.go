package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const manageUsersPageSize = 20

//go:generate mockgen -source=$GOFILE -destination=admin_handler_mocks_test.go -package=users_test

type adminRepo interface {
	Get(ctx context.Context, id int) (*User, error)
	List(ctx context.Context, page, size int) (_ []User, total int, err error)
	SetSuperuser(ctx context.Context, id int, isSuperuser bool) error
}

type adminInvites interface {
	Invite(ctx context.Context, email string) (*User, error)
	ResendInvite(ctx context.Context, userID int) (*User, error)
}

type ManageUsersResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
}

type InviteUserResponse struct {
	User User `json:"user"`
	// Warning carries the user-visible note when the account was created
	// but the invitation email could not be sent.
	Warning string `json:"warning,omitempty"`
}

type ToggleSuperuserResponse struct {
	ID          int  `json:"id"`
	IsSuperuser bool `json:"isSuperuser"`
}

// AdminHandler serves the superuser-only user management endpoints.
type AdminHandler struct {
	repo    adminRepo
	invites adminInvites
}

func NewAdminHandler(repo adminRepo, invites adminInvites) *AdminHandler {
	return &AdminHandler{
		repo:    repo,
		invites: invites,
	}
}

// requireSuperuser writes the 403 error page and returns nil when the
// current user is not a superuser.
func (handler *AdminHandler) requireSuperuser(w http.ResponseWriter, ctx context.Context) *User {
	user := UserFromContext(ctx)
	if user == nil || !user.IsSuperuser {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return nil
	}
	return user
}

func (handler *AdminHandler) HandleManageUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.manageUsers")
	defer span.End()

	if handler.requireSuperuser(w, ctx) == nil {
		return
	}

	page := 1
	if pageRaw := r.URL.Query().Get("page"); pageRaw != "" {
		parsed, err := strconv.Atoi(pageRaw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	userList, total, err := handler.repo.List(ctx, page, manageUsersPageSize)
	if err != nil {
		log.Errorf("manage users, list page %d: %s", page, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ManageUsersResponse{
		Users: userList,
		Total: total,
		Page:  page,
	})
	if err != nil {
		log.Errorf("manage users, marshal response: %s", err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *AdminHandler) HandleInviteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.inviteUser")
	defer span.End()

	if handler.requireSuperuser(w, ctx) == nil {
		return
	}

	type inviteRequest struct {
		Email string `json:"email"`
	}

	var inviteReq inviteRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&inviteReq); err != nil {
			log.Tracef("invite user, unmarshal json params: %s", err)
			http.Error(w, "invite failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("invite user, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		inviteReq.Email = r.Form.Get("email")
	}

	inviteReq.Email = strings.TrimSpace(inviteReq.Email)
	if inviteReq.Email == "" || !strings.Contains(inviteReq.Email, "@") {
		pkg.WriteFieldErrors(w, pkg.FieldErrors{"email": "a valid email is required"})
		return
	}

	invitedUser, err := handler.invites.Invite(ctx, inviteReq.Email)
	switch {
	case errors.Is(err, ErrEmailTaken):
		pkg.WriteFieldErrors(w, pkg.FieldErrors{"email": "a user with this email already exists"})
		return
	case errors.Is(err, ErrMailSendFailed):
		// account is created, surface the mail failure to the admin
		handler.writeInviteResponse(w, invitedUser, "user created, but the invitation email could not be sent")
		return
	case err != nil:
		log.Errorf("invite user %s: %s", inviteReq.Email, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	log.Debugf("user invited: %d [%s]", invitedUser.ID, invitedUser.Email)
	handler.writeInviteResponse(w, invitedUser, "")
}

func (handler *AdminHandler) HandleResendInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.resendInvite")
	defer span.End()

	if handler.requireSuperuser(w, ctx) == nil {
		return
	}

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userID"])
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	invitedUser, err := handler.invites.ResendInvite(ctx, userID)
	switch {
	case errors.Is(err, ErrUserNotFound):
		pkg.WriteErrorPage(w, http.StatusNotFound)
		return
	case errors.Is(err, ErrAlreadyActive):
		pkg.WriteFieldErrors(w, pkg.FieldErrors{"user": "user is already active"})
		return
	case errors.Is(err, ErrMailSendFailed):
		handler.writeInviteResponse(w, invitedUser, "the invitation email could not be sent")
		return
	case err != nil:
		log.Errorf("resend invite to user %d: %s", userID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	handler.writeInviteResponse(w, invitedUser, "")
}

func (handler *AdminHandler) HandleToggleSuperuser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.toggleSuperuser")
	defer span.End()

	currentUser := handler.requireSuperuser(w, ctx)
	if currentUser == nil {
		return
	}

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userID"])
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	// no self-demotion, the site always keeps at least this superuser
	if userID == currentUser.ID {
		pkg.WriteFieldErrors(w, pkg.FieldErrors{"user": "you cannot change your own superuser status"})
		return
	}

	targetUser, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.WriteErrorPage(w, http.StatusNotFound)
			return
		}
		log.Errorf("toggle superuser, get user %d: %s", userID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	newStatus := !targetUser.IsSuperuser
	if err := handler.repo.SetSuperuser(ctx, userID, newStatus); err != nil {
		log.Errorf("toggle superuser for user %d: %s", userID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	log.Debugf("superuser status for user %d set to %t by user %d", userID, newStatus, currentUser.ID)

	respJson, err := json.Marshal(ToggleSuperuserResponse{
		ID:          userID,
		IsSuperuser: newStatus,
	})
	if err != nil {
		log.Errorf("toggle superuser, marshal response: %s", err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *AdminHandler) writeInviteResponse(w http.ResponseWriter, user *User, warning string) {
	respJson, err := json.Marshal(InviteUserResponse{
		User:    *user,
		Warning: warning,
	})
	if err != nil {
		log.Errorf("marshal invite response: %s", err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
