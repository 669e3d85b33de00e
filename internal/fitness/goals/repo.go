package goals

import (
	"context"
	"errors"

	"github.com/2beens/fitadapt/internal/fitness"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
)

const goalColumns = `id, user_id, title, description, category, target_value::float8, current_progress::float8, unit, deadline::text, completed, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanGoal(row pgx.Row) (*Goal, error) {
	g := &Goal{}
	if err := row.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &g.Category,
		&g.TargetValue, &g.CurrentProgress, &g.Unit, &g.Deadline, &g.Completed, &g.CreatedAt,
	); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]Goal, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}

// Active returns the user's incomplete goals, in no particular order.
func (r *Repo) Active(ctx context.Context, userID uuid.UUID) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.active")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return r.query(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE user_id = $1 AND completed = FALSE
	`, userID)
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return r.query(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *Repo) CountActive(ctx context.Context, userID uuid.UUID) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.countactive")
	defer func() { tracing.EndSpan(span, err) }()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM goals WHERE user_id = $1 AND completed = FALSE
	`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repo) Add(ctx context.Context, g Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() { tracing.EndSpan(span, err) }()

	return scanGoal(r.db.QueryRow(ctx, `
		INSERT INTO goals (user_id, title, description, category, target_value, current_progress, unit, deadline, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $6 >= $5)
		RETURNING `+goalColumns,
		g.UserID, g.Title, g.Description, g.Category,
		g.TargetValue, g.CurrentProgress, g.Unit, g.Deadline,
	))
}

func (r *Repo) Update(ctx context.Context, g Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		if err != nil && !errors.Is(err, fitness.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	updated, err := scanGoal(r.db.QueryRow(ctx, `
		UPDATE goals SET
			title = $3,
			description = $4,
			category = $5,
			target_value = $6,
			unit = $7,
			deadline = $8::date,
			completed = current_progress >= $6
		WHERE id = $1 AND user_id = $2
		RETURNING `+goalColumns,
		g.ID, g.UserID, g.Title, g.Description, g.Category,
		g.TargetValue, g.Unit, g.Deadline,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fitness.ErrNotFound
	}
	return updated, err
}

// UpdateProgress sets the progress and marks the goal completed once the target is reached.
func (r *Repo) UpdateProgress(ctx context.Context, userID, id uuid.UUID, progress float64) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.updateprogress")
	defer func() {
		if err != nil && !errors.Is(err, fitness.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	updated, err := scanGoal(r.db.QueryRow(ctx, `
		UPDATE goals SET
			current_progress = $3,
			completed = $3 >= target_value
		WHERE id = $1 AND user_id = $2
		RETURNING `+goalColumns,
		id, userID, progress,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fitness.ErrNotFound
	}
	return updated, err
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() { tracing.EndSpan(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fitness.ErrNotFound
	}
	return nil
}
