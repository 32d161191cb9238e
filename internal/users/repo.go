package users

import (
	"context"
	"errors"
	"time"

	"github.com/svukovic/gymtrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInviteNotFound  = errors.New("invite not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const userColumns = `id, email, username, password_hash, is_active, is_superuser, COALESCE(invite_token, ''), created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.IsActive, &u.IsSuperuser, &u.InviteToken, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1;`, id,
	))
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1;`, email,
	))
}

func (r *Repo) GetByInviteToken(ctx context.Context, token string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByInviteToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE invite_token = $1 AND NOT is_active;`, token,
	))
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInviteNotFound
	}
	return user, err
}

// Create inserts the user together with an empty profile, in one transaction.
func (r *Repo) Create(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = errors.Join(err, rollbackErr)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, username, password_hash, is_active, is_superuser, invite_token, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING id;`,
		user.Email, user.Username, user.PasswordHash,
		user.IsActive, user.IsSuperuser, user.InviteToken, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_profile (user_id, name, preferred_units, created_at, updated_at)
		VALUES ($1, '', $2, $3, $3);`,
		user.ID, UnitsKg, user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	return &user, nil
}

// List returns one page of users ordered by email, together with the total count.
func (r *Repo) List(ctx context.Context, page, size int) (_ []User, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+` FROM users
		ORDER BY email ASC
		LIMIT $1 OFFSET $2;`,
		size, (page-1)*size,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var usersList []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Username, &u.PasswordHash,
			&u.IsActive, &u.IsSuperuser, &u.InviteToken, &u.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		usersList = append(usersList, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return usersList, total, nil
}

func (r *Repo) SetSuperuser(ctx context.Context, id int, isSuperuser bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setSuperuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx,
		`UPDATE users SET is_superuser = $1 WHERE id = $2;`,
		isSuperuser, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) SetInviteToken(ctx context.Context, id int, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setInviteToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE users SET invite_token = NULLIF($1, '') WHERE id = $2;`,
		token, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Activate completes the signup of an invited user: sets the password,
// marks the account active and burns the invite token.
func (r *Repo) Activate(ctx context.Context, id int, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.activate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, is_active = TRUE, invite_token = NULL
		WHERE id = $2 AND NOT is_active;`,
		passwordHash, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInviteNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.PreferredUnits,
		&p.DefaultPartnerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

const profileColumns = `id, user_id, name, preferred_units, default_partner_id, created_at, updated_at`

func (r *Repo) GetProfile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profile WHERE user_id = $1;`, userID,
	))
}

// GetOrCreateProfile returns the user profile, creating an empty one on first access.
func (r *Repo) GetOrCreateProfile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getOrCreateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile, err := r.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	now := time.Now()
	return scanProfile(r.db.QueryRow(ctx, `
		INSERT INTO user_profile (user_id, name, preferred_units, created_at, updated_at)
		VALUES ($1, '', $2, $3, $3)
		RETURNING `+profileColumns+`;`,
		userID, UnitsKg, now,
	))
}

func (r *Repo) UpdateProfile(ctx context.Context, profile *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE user_profile
		SET name = $1, preferred_units = $2, default_partner_id = $3, updated_at = $4
		WHERE user_id = $5;`,
		profile.Name, profile.PreferredUnits, profile.DefaultPartnerID,
		time.Now(), profile.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
