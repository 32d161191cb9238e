package workouts

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrSessionNotFound  = errors.New("workout session not found")
	ErrRecordNotFound   = errors.New("exercise record not found")
	ErrDuplicateSession = errors.New("workout session already exists")
	ErrInvalidExercise  = errors.New("exercise does not exist")

	// ErrInvalidRecordValues signals a record write rejected by the
	// database value constraints (negative weight, reps or sets below 1,
	// difficulty outside 1-10).
	ErrInvalidRecordValues = errors.New("record values out of range")
)

// Session is one workout occurrence on a date. It starts Open (no end
// time) and is completed exactly once; completion stamps the end time and
// is never reverted.
type Session struct {
	ID          int        `json:"id"`
	UserID      int        `json:"userId"`
	Date        time.Time  `json:"date"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Duration is the time between start and end, zero while the session is
// still open.
func (s *Session) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// Record is one logged exercise performance (weight/reps/sets/difficulty)
// within a session. The weight can be absent for bodyweight-only entries.
type Record struct {
	ID               int                 `json:"id"`
	SessionID        int                 `json:"sessionId"`
	ExerciseID       int                 `json:"exerciseId"`
	ExerciseName     string              `json:"exerciseName,omitempty"`
	WeightKg         decimal.NullDecimal `json:"weightKg"`
	Reps             int                 `json:"reps"`
	Sets             int                 `json:"sets"`
	DifficultyRating int                 `json:"difficultyRating"`
	Notes            string              `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// TotalVolume is weight × reps × sets; zero when the weight is absent.
func (r *Record) TotalVolume() decimal.Decimal {
	if !r.WeightKg.Valid {
		return decimal.Zero
	}
	return r.WeightKg.Decimal.
		Mul(decimal.NewFromInt(int64(r.Reps))).
		Mul(decimal.NewFromInt(int64(r.Sets)))
}
