package challenges

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

const challengeColumns = `id, user_id, title, description, difficulty, start_date::text, end_date::text,
	completed, completed_date::text, ai_generated, challenge_data, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanChallenge(row pgx.Row) (*Challenge, error) {
	c := &Challenge{}
	var data []byte
	if err := row.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Description, &c.Difficulty, &c.StartDate, &c.EndDate,
		&c.Completed, &c.CompletedDate, &c.AIGenerated, &data, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		c.ChallengeData = data
	}
	return c, nil
}

// Add stores a challenge. ChallengeData is written as is.
func (r *Repo) Add(ctx context.Context, c Challenge) (_ *Challenge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.add")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Bool("ai_generated", c.AIGenerated))

	var data *string
	if len(c.ChallengeData) > 0 {
		d := string(c.ChallengeData)
		data = &d
	}

	return scanChallenge(r.db.QueryRow(ctx, `
		INSERT INTO challenges (user_id, title, description, difficulty, start_date, end_date, completed, ai_generated, challenge_data)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9::jsonb)
		RETURNING `+challengeColumns,
		c.UserID, c.Title, c.Description, c.Difficulty,
		c.StartDate, c.EndDate, c.Completed, c.AIGenerated, data,
	))
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []Challenge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.list")
	defer func() { tracing.EndSpan(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Challenge, 0)
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Complete marks the challenge completed on the given calendar date.
func (r *Repo) Complete(ctx context.Context, userID, id uuid.UUID, date string) (_ *Challenge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.complete")
	defer func() {
		if err != nil && !errors.Is(err, fitness.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	c, err := scanChallenge(r.db.QueryRow(ctx, `
		UPDATE challenges SET completed = TRUE, completed_date = $3::date
		WHERE id = $1 AND user_id = $2
		RETURNING `+challengeColumns,
		id, userID, date,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fitness.ErrNotFound
	}
	return c, err
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.delete")
	defer func() { tracing.EndSpan(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM challenges WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fitness.ErrNotFound
	}
	return nil
}
