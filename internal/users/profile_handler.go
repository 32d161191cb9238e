package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=profile_handler_mocks_test.go -package=users_test

type profileRepo interface {
	Get(ctx context.Context, id int) (*User, error)
	GetOrCreateProfile(ctx context.Context, userID int) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error
}

type ProfileResponse struct {
	Profile     Profile `json:"profile"`
	DisplayName string  `json:"displayName"`
}

// ProfileHandler serves the current user's profile. The profile row is
// created lazily on first access.
type ProfileHandler struct {
	repo profileRepo
}

func NewProfileHandler(repo profileRepo) *ProfileHandler {
	return &ProfileHandler{repo: repo}
}

func (handler *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	user := UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	profile, err := handler.repo.GetOrCreateProfile(ctx, user.ID)
	if err != nil {
		log.Errorf("get profile for user %d: %s", user.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	handler.writeProfile(w, user, profile)
}

func (handler *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	user := UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	type updateRequest struct {
		Name             string `json:"name"`
		PreferredUnits   string `json:"preferredUnits"`
		DefaultPartnerID *int   `json:"defaultPartnerId"`
	}

	var updateReq updateRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			log.Tracef("update profile, unmarshal json params: %s", err)
			http.Error(w, "update profile failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("update profile, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		updateReq.Name = r.Form.Get("name")
		updateReq.PreferredUnits = r.Form.Get("preferred_units")
		if partnerRaw := r.Form.Get("default_partner_id"); partnerRaw != "" {
			partnerID, err := strconv.Atoi(partnerRaw)
			if err != nil {
				pkg.WriteFieldErrors(w, pkg.FieldErrors{
					"default_partner_id": "invalid partner id",
				})
				return
			}
			updateReq.DefaultPartnerID = &partnerID
		}
	}

	fieldErrors := pkg.FieldErrors{}
	if updateReq.PreferredUnits != "" && !ValidUnits(updateReq.PreferredUnits) {
		fieldErrors["preferred_units"] = "preferred units must be kg or lbs"
	}
	if updateReq.DefaultPartnerID != nil {
		if *updateReq.DefaultPartnerID == user.ID {
			fieldErrors["default_partner_id"] = "you cannot be your own workout partner"
		} else if _, err := handler.repo.Get(ctx, *updateReq.DefaultPartnerID); err != nil {
			if errors.Is(err, ErrUserNotFound) {
				fieldErrors["default_partner_id"] = "partner user does not exist"
			} else {
				log.Errorf("update profile, check partner %d: %s", *updateReq.DefaultPartnerID, err)
				pkg.WriteErrorPage(w, http.StatusInternalServerError)
				return
			}
		}
	}
	if len(fieldErrors) > 0 {
		pkg.WriteFieldErrors(w, fieldErrors)
		return
	}

	profile, err := handler.repo.GetOrCreateProfile(ctx, user.ID)
	if err != nil {
		log.Errorf("update profile, get profile for user %d: %s", user.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	profile.Name = updateReq.Name
	if updateReq.PreferredUnits != "" {
		profile.PreferredUnits = updateReq.PreferredUnits
	}
	profile.DefaultPartnerID = updateReq.DefaultPartnerID

	if err := handler.repo.UpdateProfile(ctx, profile); err != nil {
		log.Errorf("update profile for user %d: %s", user.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	handler.writeProfile(w, user, profile)
}

func (handler *ProfileHandler) writeProfile(w http.ResponseWriter, user *User, profile *Profile) {
	respJson, err := json.Marshal(ProfileResponse{
		Profile:     *profile,
		DisplayName: profile.DisplayName(user.Email),
	})
	if err != nil {
		log.Errorf("marshal profile response: %s", err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
