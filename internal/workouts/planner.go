package workouts

import (
	"context"
	"sort"
	"time"

	"github.com/svukovic/gymtrack/internal/format"
	"github.com/svukovic/gymtrack/internal/telemetry/tracing"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=planner_mocks_test.go -package=workouts_test

type plannerRepo interface {
	ExercisesWithLastUse(ctx context.Context, userID int) ([]ExerciseUsage, error)
	ListForSession(ctx context.Context, sessionID, userID int) ([]Record, error)
}

// ExerciseSuggestion is an exercise available to add to a session, with
// the recommended next weight derived from the user's last record of it.
type ExerciseSuggestion struct {
	ExerciseID        int             `json:"exerciseId"`
	ExerciseName      string          `json:"exerciseName"`
	LastUsedAt        *time.Time      `json:"lastUsedAt,omitempty"`
	RecommendedWeight decimal.Decimal `json:"recommendedWeight"`
	// RecommendedWeightDisplay is the weight formatted for rendering ("82,5")
	RecommendedWeightDisplay string `json:"recommendedWeightDisplay"`
}

// Planner ranks the exercises a user could add to a session next.
type Planner struct {
	repo plannerRepo
}

func NewPlanner(repo plannerRepo) *Planner {
	return &Planner{
		repo: repo,
	}
}

// AvailableExercises lists the exercises not yet logged in the session,
// most recently performed first, never performed last, name as tiebreak.
// Each comes with the recommended next weight.
func (p *Planner) AvailableExercises(ctx context.Context, userID, sessionID int) (_ []ExerciseSuggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "planner.availableExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	usages, err := p.repo.ExercisesWithLastUse(ctx, userID)
	if err != nil {
		return nil, err
	}

	sessionRecords, err := p.repo.ListForSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	alreadyLogged := make(map[int]struct{}, len(sessionRecords))
	for _, rec := range sessionRecords {
		alreadyLogged[rec.ExerciseID] = struct{}{}
	}

	available := usages[:0]
	for _, usage := range usages {
		if _, ok := alreadyLogged[usage.ExerciseID]; ok {
			continue
		}
		available = append(available, usage)
	}
	usages = available

	sort.SliceStable(usages, func(i, j int) bool {
		ui, uj := usages[i], usages[j]
		switch {
		case ui.LastUsedAt == nil && uj.LastUsedAt == nil:
			return ui.ExerciseName < uj.ExerciseName
		case ui.LastUsedAt == nil:
			return false
		case uj.LastUsedAt == nil:
			return true
		case ui.LastUsedAt.Equal(*uj.LastUsedAt):
			return ui.ExerciseName < uj.ExerciseName
		default:
			return ui.LastUsedAt.After(*uj.LastUsedAt)
		}
	})

	suggestions := make([]ExerciseSuggestion, 0, len(usages))
	for _, usage := range usages {
		recommended := RecommendNextWeight(usage.LastRecord)
		suggestions = append(suggestions, ExerciseSuggestion{
			ExerciseID:               usage.ExerciseID,
			ExerciseName:             usage.ExerciseName,
			LastUsedAt:               usage.LastUsedAt,
			RecommendedWeight:        recommended,
			RecommendedWeightDisplay: format.Weight(recommended),
		})
	}

	return suggestions, nil
}
