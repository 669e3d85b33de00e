package coach

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/fitadapt/internal/fitness"
	"github.com/2beens/fitadapt/internal/fitness/goals"
	"github.com/2beens/fitadapt/internal/fitness/profile"
	"github.com/2beens/fitadapt/internal/fitness/workouts"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"
	"github.com/2beens/fitadapt/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	ChallengeWorkoutsWindow = 10
	GroupWorkoutsWindow     = 5

	DefaultFitnessLevel        = "intermediate"
	UnknownValue               = "unknown"
	DefaultPreferredActivities = "various activities"

	NoRecentWorkouts = "No recent workouts"
	NoActiveGoals    = "No active goals"
	NoRecentActivity = "No recent activity"
	GeneralFitness   = "General fitness"

	// rendered for absent values inside workout and goal summaries
	nullValue = "null"
)

// ChallengeContext is the user's situation, reduced to the text the individual prompt needs.
type ChallengeContext struct {
	FitnessLevel        string
	Age                 string
	Weight              string
	PreferredActivities string
	Workouts            string
	Goals               string
}

// GroupContext is the reduced context for a group challenge template.
type GroupContext struct {
	FitnessLevel   string
	RecentActivity string
	Goals          string
}

// Aggregator reads a user's profile, recent workouts and open goals. It never writes.
type Aggregator struct {
	profiles profileStore
	workouts workoutStore
	goals    goalStore
}

func NewAggregator(profiles profileStore, workouts workoutStore, goals goalStore) *Aggregator {
	return &Aggregator{
		profiles: profiles,
		workouts: workouts,
		goals:    goals,
	}
}

// ChallengeContext never fails: a missing profile gets defaults, unreadable workouts or goals count as none.
func (a *Aggregator) ChallengeContext(ctx context.Context, userID uuid.UUID) ChallengeContext {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.aggregate.challenge")
	defer span.End()

	p, err := a.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, fitness.ErrNotFound) {
			log.Warnf("aggregate challenge context, get profile %s: %s", userID, err)
		}
		p = nil
	}

	return ChallengeContext{
		FitnessLevel:        fitnessLevel(p),
		Age:                 profileAge(p),
		Weight:              profileWeight(p),
		PreferredActivities: preferredActivities(p),
		Workouts:            SummarizeWorkouts(a.recentWorkouts(ctx, userID, ChallengeWorkoutsWindow)),
		Goals:               SummarizeGoals(a.activeGoals(ctx, userID)),
	}
}

// GroupContext requires the profile to exist.
func (a *Aggregator) GroupContext(ctx context.Context, userID uuid.UUID) (_ *GroupContext, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.aggregate.group")
	defer func() { tracing.EndSpan(span, err) }()

	p, err := a.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileMissing, err)
	}
	if p == nil {
		return nil, ErrProfileMissing
	}

	return &GroupContext{
		FitnessLevel:   fitnessLevel(p),
		RecentActivity: SummarizeActivity(a.recentWorkouts(ctx, userID, GroupWorkoutsWindow)),
		Goals:          SummarizeGoalTitles(a.activeGoals(ctx, userID)),
	}, nil
}

func (a *Aggregator) recentWorkouts(ctx context.Context, userID uuid.UUID, limit int) []workouts.Workout {
	list, err := a.workouts.Recent(ctx, userID, limit)
	if err != nil {
		log.Warnf("aggregate, recent workouts %s: %s", userID, err)
		return nil
	}
	return list
}

func (a *Aggregator) activeGoals(ctx context.Context, userID uuid.UUID) []goals.Goal {
	list, err := a.goals.Active(ctx, userID)
	if err != nil {
		log.Warnf("aggregate, active goals %s: %s", userID, err)
		return nil
	}
	return list
}

// SummarizeWorkouts renders "{type} ({duration}min, {intensity})" per workout, joined with "; ".
func SummarizeWorkouts(list []workouts.Workout) string {
	if len(list) == 0 {
		return NoRecentWorkouts
	}
	parts := make([]string, 0, len(list))
	for _, w := range list {
		parts = append(parts, fmt.Sprintf("%s (%smin, %s)", w.WorkoutType, intOrNull(w.Duration), stringOrNull(w.Intensity)))
	}
	return strings.Join(parts, "; ")
}

// SummarizeGoals renders "{title} - {current}/{target} {unit}" per goal, joined with "; ".
func SummarizeGoals(list []goals.Goal) string {
	if len(list) == 0 {
		return NoActiveGoals
	}
	parts := make([]string, 0, len(list))
	for _, g := range list {
		parts = append(parts, fmt.Sprintf("%s - %s/%s %s",
			g.Title,
			pkg.FormatNumber(g.CurrentProgress),
			pkg.FormatNumber(g.TargetValue),
			stringOrNull(g.Unit),
		))
	}
	return strings.Join(parts, "; ")
}

func SummarizeActivity(list []workouts.Workout) string {
	if len(list) == 0 {
		return NoRecentActivity
	}
	types := make([]string, 0, len(list))
	for _, w := range list {
		types = append(types, w.WorkoutType)
	}
	return strings.Join(types, ", ")
}

func SummarizeGoalTitles(list []goals.Goal) string {
	if len(list) == 0 {
		return GeneralFitness
	}
	titles := make([]string, 0, len(list))
	for _, g := range list {
		titles = append(titles, g.Title)
	}
	return strings.Join(titles, ", ")
}

func fitnessLevel(p *profile.Profile) string {
	if p == nil || p.FitnessLevel == nil || *p.FitnessLevel == "" {
		return DefaultFitnessLevel
	}
	return *p.FitnessLevel
}

func profileAge(p *profile.Profile) string {
	if p == nil || p.Age == nil || *p.Age == 0 {
		return UnknownValue
	}
	return strconv.Itoa(*p.Age)
}

func profileWeight(p *profile.Profile) string {
	if p == nil || p.Weight == nil || *p.Weight == 0 {
		return UnknownValue
	}
	return pkg.FormatNumber(*p.Weight)
}

func preferredActivities(p *profile.Profile) string {
	if p == nil || len(p.PreferredActivities) == 0 {
		return DefaultPreferredActivities
	}
	joined := strings.Join(p.PreferredActivities, ", ")
	if joined == "" {
		return DefaultPreferredActivities
	}
	return joined
}

func intOrNull(v *int) string {
	if v == nil {
		return nullValue
	}
	return strconv.Itoa(*v)
}

func stringOrNull(v *string) string {
	if v == nil {
		return nullValue
	}
	return *v
}
