package exercises

import (
	"errors"
	"time"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrExerciseNameTaken = errors.New("exercise name already taken")
)

// Exercise is a type of exercise (e.g. "Leg Press", "Bench Press"),
// shared across all users.
type Exercise struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	MuscleGroups string    `json:"muscleGroups,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
