package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise (name, description, muscle_groups, created_at)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		exercise.Name, exercise.Description, exercise.MuscleGroups, exercise.CreatedAt,
	).Scan(&exercise.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseNameTaken
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))
	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var exercise Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(muscle_groups, ''), created_at
			FROM exercise
			WHERE id = $1;`,
		id,
	).Scan(
		&exercise.ID, &exercise.Name,
		&exercise.Description, &exercise.MuscleGroups,
		&exercise.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// List returns one page of exercises ordered by name, plus the total count.
func (r *Repo) List(ctx context.Context, page, size int) (_ []Exercise, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	if page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise;`).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count exercises: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(muscle_groups, ''), created_at
			FROM exercise
			ORDER BY name ASC
			LIMIT $1 OFFSET $2;`,
		size, (page-1)*size,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var exerciseList []Exercise
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(
			&exercise.ID, &exercise.Name,
			&exercise.Description, &exercise.MuscleGroups,
			&exercise.CreatedAt,
		); err != nil {
			return nil, -1, fmt.Errorf("rows scan: %w", err)
		}
		exerciseList = append(exerciseList, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, fmt.Errorf("rows: %w", err)
	}

	return exerciseList, total, nil
}

// ListAll returns all exercises ordered by name, for form selects.
func (r *Repo) ListAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(muscle_groups, ''), created_at
			FROM exercise
			ORDER BY name ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var exerciseList []Exercise
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(
			&exercise.ID, &exercise.Name,
			&exercise.Description, &exercise.MuscleGroups,
			&exercise.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exerciseList = append(exerciseList, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return exerciseList, nil
}
