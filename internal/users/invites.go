package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/svukovic/gymtrack/internal/mail"
	"github.com/svukovic/gymtrack/internal/telemetry/metrics"
	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/pkg"

	log "github.com/sirupsen/logrus"
)

var (
	ErrEmailTaken     = errors.New("email already taken")
	ErrAlreadyActive  = errors.New("user already active")
	ErrMailSendFailed = errors.New("invitation email failed")
)

//go:generate mockgen -source=$GOFILE -destination=invites_mocks_test.go -package=users_test

type invitesRepo interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, user User) (*User, error)
	SetInviteToken(ctx context.Context, id int, token string) error
	GetByInviteToken(ctx context.Context, token string) (*User, error)
	Activate(ctx context.Context, id int, passwordHash string) error
}

// InvitesService creates invited (inactive) accounts and sends signup links.
type InvitesService struct {
	repo           invitesRepo
	mailer         mail.Mailer
	siteBaseURL    string
	mailSender     string
	metricsManager *metrics.Manager
	// injectable for tests, same trick as the auth service token generator
	RandStringFunc func(s int) (string, error)
}

func NewInvitesService(
	repo invitesRepo,
	mailer mail.Mailer,
	siteBaseURL string,
	mailSender string,
	metricsManager *metrics.Manager,
) *InvitesService {
	return &InvitesService{
		repo:           repo,
		mailer:         mailer,
		siteBaseURL:    siteBaseURL,
		mailSender:     mailSender,
		metricsManager: metricsManager,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Invite creates an inactive account for the given email (username = email)
// with an empty profile, then tries to send the signup link. A failed email
// send is reported via ErrMailSendFailed but the created account persists.
func (s *InvitesService) Invite(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.invite")
	defer func() {
		// the account may have been created even when err != nil (mail failure),
		// only record genuine failures on the span
		if err != nil && !errors.Is(err, ErrMailSendFailed) {
			span.RecordError(err)
		}
		span.End()
	}()

	// duplicate email is rejected before any account creation
	_, err = s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	token, err := s.RandStringFunc(35)
	if err != nil {
		return nil, fmt.Errorf("generate invite token: %w", err)
	}

	user, err := s.repo.Create(ctx, User{
		Email:       email,
		Username:    email,
		IsActive:    false,
		InviteToken: token,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create invited user: %w", err)
	}

	if mailErr := s.sendInviteMail(ctx, user); mailErr != nil {
		return user, mailErr
	}
	return user, nil
}

// ResendInvite re-sends the signup link for an existing inactive account.
func (s *InvitesService) ResendInvite(ctx context.Context, userID int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.resendInvite")
	defer func() {
		if err != nil && !errors.Is(err, ErrMailSendFailed) {
			span.RecordError(err)
		}
		span.End()
	}()

	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsActive {
		return nil, ErrAlreadyActive
	}

	if user.InviteToken == "" {
		token, err := s.RandStringFunc(35)
		if err != nil {
			return nil, fmt.Errorf("generate invite token: %w", err)
		}
		if err := s.repo.SetInviteToken(ctx, user.ID, token); err != nil {
			return nil, fmt.Errorf("set invite token: %w", err)
		}
		user.InviteToken = token
	}

	if mailErr := s.sendInviteMail(ctx, user); mailErr != nil {
		return user, mailErr
	}
	return user, nil
}

// Activate completes the signup: the invited user picks a password and the
// account becomes active.
func (s *InvitesService) Activate(ctx context.Context, token, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.activate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByInviteToken(ctx, token)
	if err != nil {
		return nil, err
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Activate(ctx, user.ID, passwordHash); err != nil {
		return nil, err
	}

	user.IsActive = true
	user.PasswordHash = passwordHash
	user.InviteToken = ""
	return user, nil
}

func (s *InvitesService) sendInviteMail(ctx context.Context, user *User) error {
	signupLink := fmt.Sprintf("%s/signup/%s", s.siteBaseURL, user.InviteToken)
	body := fmt.Sprintf(
		"You have been invited to GymTrack.\r\n\r\nFollow this link to set your password and start tracking workouts:\r\n%s\r\n",
		signupLink,
	)

	if err := s.mailer.Send(ctx, s.mailSender, user.Email, "Your GymTrack invitation", body); err != nil {
		log.Errorf("failed to send invite email to %s: %s", user.Email, err)
		if s.metricsManager != nil {
			s.metricsManager.CounterInviteMailFailures.Inc()
		}
		return fmt.Errorf("%w: %s", ErrMailSendFailed, err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterInvitesSent.Inc()
	}
	return nil
}
