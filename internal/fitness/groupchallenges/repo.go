package groupchallenges

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitadapt/internal/fitness"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"
	"github.com/2beens/fitadapt/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
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

// Upcoming lists challenges meeting on or after fromDate, soonest first, with the accepted
// participant count and the status of userID in each.
func (r *Repo) Upcoming(ctx context.Context, userID uuid.UUID, fromDate string) (_ []GroupChallenge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groupchallenges.upcoming")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("from", fromDate))

	rows, err := r.db.Query(ctx, `
		SELECT gc.id, gc.creator_id, gc.title, gc.description, gc.challenge_type, gc.difficulty,
		       gc.meetup_date::text, gc.meetup_time, gc.location_name, gc.location_address,
		       gc.max_participants, gc.created_at,
		       (SELECT COUNT(*) FROM group_challenge_participants p
		         WHERE p.challenge_id = gc.id AND p.status = 'accepted'),
		       (SELECT p.status FROM group_challenge_participants p
		         WHERE p.challenge_id = gc.id AND p.user_id = $1)
		FROM group_challenges gc
		WHERE gc.meetup_date >= $2::date
		ORDER BY gc.meetup_date ASC, gc.meetup_time ASC
	`, userID, fromDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]GroupChallenge, 0)
	for rows.Next() {
		var c GroupChallenge
		if err := rows.Scan(
			&c.ID, &c.CreatorID, &c.Title, &c.Description, &c.ChallengeType, &c.Difficulty,
			&c.MeetupDate, &c.MeetupTime, &c.LocationName, &c.LocationAddress,
			&c.MaxParticipants, &c.CreatedAt,
			&c.ParticipantCount, &c.UserStatus,
		); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repo) Add(ctx context.Context, c GroupChallenge) (_ *GroupChallenge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groupchallenges.add")
	defer func() { tracing.EndSpan(span, err) }()

	err = r.db.QueryRow(ctx, `
		INSERT INTO group_challenges (creator_id, title, description, challenge_type, difficulty,
		                              meetup_date, meetup_time, location_name, location_address, max_participants)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10)
		RETURNING id, created_at
	`,
		c.CreatorID, c.Title, c.Description, c.ChallengeType, c.Difficulty,
		c.MeetupDate, c.MeetupTime, c.LocationName, c.LocationAddress, c.MaxParticipants,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) Join(ctx context.Context, challengeID, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groupchallenges.join")
	defer func() { tracing.EndSpan(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO group_challenge_participants (challenge_id, user_id, status)
		VALUES ($1, $2, 'accepted')
	`, challengeID, userID)
	switch {
	case err == nil:
		return nil
	case pkg.IsUniqueViolationError(err):
		return ErrAlreadyJoined
	case pkg.IsForeignKeyViolationError(err):
		return fitness.ErrNotFound
	default:
		return fmt.Errorf("join group challenge: %w", err)
	}
}

func (r *Repo) Leave(ctx context.Context, challengeID, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groupchallenges.leave")
	defer func() {
		if err != nil && !errors.Is(err, ErrNotJoined) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM group_challenge_participants WHERE challenge_id = $1 AND user_id = $2
	`, challengeID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotJoined
	}
	return nil
}
