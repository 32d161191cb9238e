package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// RecordsRepo reads and writes exercise records. Ownership is enforced by
// joining through the owning workout session, a record of another user
// behaves like a missing one.
type RecordsRepo struct {
	db *pgxpool.Pool
}

func NewRecordsRepo(db *pgxpool.Pool) *RecordsRepo {
	return &RecordsRepo{
		db: db,
	}
}

// weightParam converts the nullable weight for an insert/update parameter.
// The decimal goes over the wire as text to keep exact precision.
func weightParam(w decimal.NullDecimal) any {
	if !w.Valid {
		return nil
	}
	return w.Decimal.String()
}

func scanWeight(raw *string) (decimal.NullDecimal, error) {
	if raw == nil {
		return decimal.NullDecimal{}, nil
	}
	weight, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("parse weight %q: %w", *raw, err)
	}
	return decimal.NullDecimal{Decimal: weight, Valid: true}, nil
}

func (r *RecordsRepo) Add(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", record.SessionID))
	span.SetAttributes(attribute.Int("exercise.id", record.ExerciseID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_record
				(workout_session_id, exercise_id, weight_kg, reps, sets, difficulty_rating, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;`,
		record.SessionID, record.ExerciseID, weightParam(record.WeightKg),
		record.Reps, record.Sets, record.DifficultyRating,
		record.Notes, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrInvalidExercise
		}
		if pkg.IsCheckViolationError(err) {
			return nil, ErrInvalidRecordValues
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("record.id", record.ID))
	return &record, nil
}

const recordSelect = `
	SELECT
		er.id, er.workout_session_id, er.exercise_id, e.name,
		er.weight_kg::text, er.reps, er.sets, er.difficulty_rating,
		COALESCE(er.notes, ''), er.created_at
	FROM exercise_record er
	JOIN exercise e ON er.exercise_id = e.id
	JOIN workout_session ws ON er.workout_session_id = ws.id`

func (r *RecordsRepo) Get(ctx context.Context, id, userID int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		recordSelect+` WHERE er.id = $1 AND ws.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := rows2records(rows)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, ErrRecordNotFound
	}
	return &records[0], nil
}

func (r *RecordsRepo) Update(ctx context.Context, record *Record, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", record.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_record er
			SET exercise_id = $3, weight_kg = $4, reps = $5, sets = $6, difficulty_rating = $7, notes = $8
			FROM workout_session ws
			WHERE er.id = $1 AND er.workout_session_id = ws.id AND ws.user_id = $2;`,
		record.ID, userID,
		record.ExerciseID, weightParam(record.WeightKg),
		record.Reps, record.Sets, record.DifficultyRating, record.Notes,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrInvalidExercise
		}
		if pkg.IsCheckViolationError(err) {
			return ErrInvalidRecordValues
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *RecordsRepo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise_record er
			USING workout_session ws
			WHERE er.id = $1 AND er.workout_session_id = ws.id AND ws.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ListForSession returns the session's records, newest first.
func (r *RecordsRepo) ListForSession(ctx context.Context, sessionID, userID int) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listForSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		recordSelect+`
			WHERE er.workout_session_id = $1 AND ws.user_id = $2
			ORDER BY er.created_at DESC;`,
		sessionID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2records(rows)
}

// ListRecent returns the user's latest records across all sessions.
func (r *RecordsRepo) ListRecent(ctx context.Context, userID, limit int) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listRecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		recordSelect+`
			WHERE ws.user_id = $1
			ORDER BY er.created_at DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2records(rows)
}

// LastForExercise returns the user's most recent record of the given
// exercise, across all sessions.
func (r *RecordsRepo) LastForExercise(ctx context.Context, userID, exerciseID int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.lastForExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		recordSelect+`
			WHERE ws.user_id = $1 AND er.exercise_id = $2
			ORDER BY er.created_at DESC
			LIMIT 1;`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := rows2records(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}
	return &records[0], nil
}

// ExerciseUsage is an exercise annotated with the user's most recent record
// of it, used to rank exercise suggestions on the workout detail page.
type ExerciseUsage struct {
	ExerciseID   int
	ExerciseName string
	LastUsedAt   *time.Time
	LastRecord   *Record
}

// ExercisesWithLastUse returns all exercises, each with the user's most
// recent record of it (if any).
func (r *RecordsRepo) ExercisesWithLastUse(ctx context.Context, userID int) (_ []ExerciseUsage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.exercisesWithLastUse")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				e.id, e.name,
				lr.weight_kg::text, lr.reps, lr.sets, lr.difficulty_rating, lr.created_at
			FROM exercise e
			LEFT JOIN LATERAL (
				SELECT er.weight_kg, er.reps, er.sets, er.difficulty_rating, er.created_at
				FROM exercise_record er
				JOIN workout_session ws ON er.workout_session_id = ws.id
				WHERE er.exercise_id = e.id AND ws.user_id = $1
				ORDER BY er.created_at DESC
				LIMIT 1
			) lr ON TRUE;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var usages []ExerciseUsage
	for rows.Next() {
		var usage ExerciseUsage
		var weightRaw *string
		var reps, sets, difficulty *int
		var lastUsedAt *time.Time
		if err := rows.Scan(
			&usage.ExerciseID, &usage.ExerciseName,
			&weightRaw, &reps, &sets, &difficulty, &lastUsedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		if lastUsedAt != nil {
			weight, err := scanWeight(weightRaw)
			if err != nil {
				return nil, err
			}
			usage.LastUsedAt = lastUsedAt
			usage.LastRecord = &Record{
				ExerciseID:       usage.ExerciseID,
				ExerciseName:     usage.ExerciseName,
				WeightKg:         weight,
				Reps:             *reps,
				Sets:             *sets,
				DifficultyRating: *difficulty,
				CreatedAt:        *lastUsedAt,
			}
		}
		usages = append(usages, usage)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return usages, nil
}

func rows2records(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var record Record
		var weightRaw *string
		if err := rows.Scan(
			&record.ID, &record.SessionID, &record.ExerciseID, &record.ExerciseName,
			&weightRaw, &record.Reps, &record.Sets, &record.DifficultyRating,
			&record.Notes, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		weight, err := scanWeight(weightRaw)
		if err != nil {
			return nil, err
		}
		record.WeightKg = weight
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return records, nil
}
