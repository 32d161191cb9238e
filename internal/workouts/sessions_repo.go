package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const sessionColumns = `id, user_id, date, start_time, end_time, COALESCE(notes, ''), is_completed, created_at`

// SessionsRepo reads and writes workout sessions. Every query is scoped by
// the owning user id, a session of another user behaves like a missing one.
type SessionsRepo struct {
	db *pgxpool.Pool
}

func NewSessionsRepo(db *pgxpool.Pool) *SessionsRepo {
	return &SessionsRepo{
		db: db,
	}
}

type HistoryParams struct {
	UserID int
	Page   int
	Size   int
	From   *time.Time
	To     *time.Time
}

func scanSession(row pgx.Row) (*Session, error) {
	var session Session
	if err := row.Scan(
		&session.ID, &session.UserID, &session.Date,
		&session.StartTime, &session.EndTime,
		&session.Notes, &session.IsCompleted, &session.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionsRepo) Create(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_session (user_id, date, start_time, notes, is_completed, created_at)
			VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING id;`,
		session.UserID, session.Date, session.StartTime, session.Notes, session.CreatedAt,
	).Scan(&session.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateSession
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return &session, nil
}

func (r *SessionsRepo) Get(ctx context.Context, id, userID int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	session, err := scanSession(r.db.QueryRow(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_session WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// Complete marks the session completed, stamping the end time if it is not
// set yet. Completing an already completed session is a no-op write, last
// write wins.
func (r *SessionsRepo) Complete(ctx context.Context, id, userID int, endTime time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	session, err := scanSession(r.db.QueryRow(
		ctx,
		`UPDATE workout_session
			SET is_completed = TRUE, end_time = COALESCE(end_time, $3)
			WHERE id = $1 AND user_id = $2
		RETURNING `+sessionColumns+`;`,
		id, userID, endTime,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// UpdateNotes replaces the session notes.
func (r *SessionsRepo) UpdateNotes(ctx context.Context, id, userID int, notes string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.updateNotes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session SET notes = $3 WHERE id = $1 AND user_id = $2;`,
		id, userID, notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// History returns one page of the user's sessions, newest first, optionally
// bounded by date.
func (r *SessionsRepo) History(ctx context.Context, params HistoryParams) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_session
			WHERE user_id = $1
			AND ($2::date IS NULL OR date >= $2)
			AND ($3::date IS NULL OR date <= $3);`,
		params.UserID, params.From, params.To,
	).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count sessions: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_session
			WHERE user_id = $1
			AND ($2::date IS NULL OR date >= $2)
			AND ($3::date IS NULL OR date <= $3)
			ORDER BY date DESC, start_time DESC
			LIMIT $4 OFFSET $5;`,
		params.UserID, params.From, params.To,
		params.Size, (params.Page-1)*params.Size,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, -1, err
	}
	return sessions, total, nil
}

// ListRecent returns the user's latest sessions, newest first.
func (r *SessionsRepo) ListRecent(ctx context.Context, userID, limit int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listRecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_session
			WHERE user_id = $1
			ORDER BY date DESC, start_time DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2sessions(rows)
}

// GetForDate returns the user's latest session on the given date, or
// ErrSessionNotFound when there is none.
func (r *SessionsRepo) GetForDate(ctx context.Context, userID int, date time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.getForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := scanSession(r.db.QueryRow(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_session
			WHERE user_id = $1 AND date = $2
			ORDER BY start_time DESC
			LIMIT 1;`,
		userID, date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// CountSince counts the user's sessions on or after the given date.
func (r *SessionsRepo) CountSince(ctx context.Context, userID int, since time.Time) (count int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.countSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_session WHERE user_id = $1 AND date >= $2;`,
		userID, since,
	).Scan(&count); err != nil {
		return -1, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var session Session
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.Date,
			&session.StartTime, &session.EndTime,
			&session.Notes, &session.IsCompleted, &session.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return sessions, nil
}
