package workouts

import (
	"context"
	"errors"

	"github.com/2beens/fitadapt/internal/fitness"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const workoutColumns = `id, user_id, workout_date::text, workout_type, duration, distance, calories, intensity, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	w := &Workout{}
	if err := row.Scan(
		&w.ID, &w.UserID, &w.WorkoutDate, &w.WorkoutType,
		&w.Duration, &w.Distance, &w.Calories, &w.Intensity, &w.Notes, &w.CreatedAt,
	); err != nil {
		return nil, err
	}
	return w, nil
}

func collectWorkouts(rows pgx.Rows) ([]Workout, error) {
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Recent returns the user's latest workouts, newest first by creation time.
func (r *Repo) Recent(ctx context.Context, userID uuid.UUID, limit int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.recent")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectWorkouts(rows)
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = $1
		ORDER BY workout_date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return collectWorkouts(rows)
}

func (r *Repo) Add(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() { tracing.EndSpan(span, err) }()

	var workoutDate *string
	if w.WorkoutDate != "" {
		workoutDate = &w.WorkoutDate
	}

	return scanWorkout(r.db.QueryRow(ctx, `
		INSERT INTO workouts (user_id, workout_date, workout_type, duration, distance, calories, intensity, notes)
		VALUES ($1, COALESCE($2::date, CURRENT_DATE), $3, $4, $5, $6, $7, $8)
		RETURNING `+workoutColumns,
		w.UserID, workoutDate, w.WorkoutType,
		w.Duration, w.Distance, w.Calories, w.Intensity, w.Notes,
	))
}

func (r *Repo) Update(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		if err != nil && !errors.Is(err, fitness.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var workoutDate *string
	if w.WorkoutDate != "" {
		workoutDate = &w.WorkoutDate
	}

	updated, err := scanWorkout(r.db.QueryRow(ctx, `
		UPDATE workouts SET
			workout_date = COALESCE($3::date, workout_date),
			workout_type = $4,
			duration = $5,
			distance = $6,
			calories = $7,
			intensity = $8,
			notes = $9
		WHERE id = $1 AND user_id = $2
		RETURNING `+workoutColumns,
		w.ID, w.UserID, workoutDate, w.WorkoutType,
		w.Duration, w.Distance, w.Calories, w.Intensity, w.Notes,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fitness.ErrNotFound
	}
	return updated, err
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() { tracing.EndSpan(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fitness.ErrNotFound
	}
	return nil
}

func (r *Repo) Totals(ctx context.Context, userID uuid.UUID) (_ *Totals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.totals")
	defer func() { tracing.EndSpan(span, err) }()

	t := &Totals{}
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(distance), 0)::float8,
		       COALESCE(SUM(duration), 0)::int,
		       COALESCE(SUM(calories), 0)::int
		FROM workouts
		WHERE user_id = $1
	`, userID).Scan(&t.Workouts, &t.Distance, &t.Duration, &t.Calories)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// WorkoutDates returns the distinct days the user worked out on, newest first.
func (r *Repo) WorkoutDates(ctx context.Context, userID uuid.UUID) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.dates")
	defer func() { tracing.EndSpan(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT workout_date::text
		FROM workouts
		WHERE user_id = $1
		ORDER BY 1 DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
