package users

import (
	"context"
	"strings"
	"time"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	IsSuperuser  bool      `json:"isSuperuser"`
	InviteToken  string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	UnitsKg  = "kg"
	UnitsLbs = "lbs"
)

func ValidUnits(units string) bool {
	return units == UnitsKg || units == UnitsLbs
}

type Profile struct {
	ID               int       `json:"id"`
	UserID           int       `json:"userId"`
	Name             string    `json:"name"`
	PreferredUnits   string    `json:"preferredUnits"`
	DefaultPartnerID *int      `json:"defaultPartnerId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// DisplayName is the profile name, falling back to the user email when not set.
func (p *Profile) DisplayName(userEmail string) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return userEmail
}

type contextKey string

const userContextKey contextKey = "current-user"

// ContextWithUser attaches the authenticated user to the request context.
// The current user is always passed explicitly through the context, there
// is no ambient global auth state.
func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user, or nil when not logged in.
func UserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userContextKey).(*User)
	return user
}
