package profile

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

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		if err != nil && !errors.Is(err, fitness.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	p := &Profile{}
	err = r.db.QueryRow(ctx, `
		SELECT id, email, full_name, fitness_level, age, weight, height, preferred_activities, created_at
		FROM profiles
		WHERE id = $1
	`, userID).Scan(
		&p.ID, &p.Email, &p.FullName, &p.FitnessLevel,
		&p.Age, &p.Weight, &p.Height, &p.PreferredActivities, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fitness.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Upsert creates the profile on first save and overwrites it afterwards.
func (r *Repo) Upsert(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() { tracing.EndSpan(span, err) }()

	saved := &Profile{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO profiles (id, email, full_name, fitness_level, age, weight, height, preferred_activities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			fitness_level = EXCLUDED.fitness_level,
			age = EXCLUDED.age,
			weight = EXCLUDED.weight,
			height = EXCLUDED.height,
			preferred_activities = EXCLUDED.preferred_activities
		RETURNING id, email, full_name, fitness_level, age, weight, height, preferred_activities, created_at
	`,
		p.ID, p.Email, p.FullName, p.FitnessLevel,
		p.Age, p.Weight, p.Height, p.PreferredActivities,
	).Scan(
		&saved.ID, &saved.Email, &saved.FullName, &saved.FitnessLevel,
		&saved.Age, &saved.Weight, &saved.Height, &saved.PreferredActivities, &saved.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return saved, nil
}
