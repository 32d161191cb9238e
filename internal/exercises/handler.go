package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/pkg"

	log "github.com/sirupsen/logrus"
)

const listPageSize = 20

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	List(ctx context.Context, page, size int) (_ []Exercise, total int, err error)
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	page := 1
	if pageRaw := r.URL.Query().Get("page"); pageRaw != "" {
		parsed, err := strconv.Atoi(pageRaw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	exerciseList, total, err := handler.repo.List(ctx, page, listPageSize)
	if err != nil {
		log.Errorf("list exercises, page %d: %s", page, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Exercises: exerciseList,
		Total:     total,
		Page:      page,
	})
	if err != nil {
		log.Errorf("list exercises, marshal response: %s", err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleAddForm returns the empty form context for the add-exercise page.
func (handler *Handler) HandleAddForm(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.addForm")
	defer span.End()

	pkg.WriteJSONResponseOK(w, `{"exercise":{"name":"","description":"","muscleGroups":""}}`)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	var exercise Exercise
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
			log.Tracef("add exercise, unmarshal json params: %s", err)
			http.Error(w, "add exercise failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("add exercise, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		exercise = Exercise{
			Name:         r.Form.Get("name"),
			Description:  r.Form.Get("description"),
			MuscleGroups: r.Form.Get("muscle_groups"),
		}
	}

	exercise.Name = strings.TrimSpace(exercise.Name)
	if exercise.Name == "" {
		pkg.WriteFieldErrors(w, pkg.FieldErrors{"name": "exercise name is required"})
		return
	}

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	addedExercise, err := handler.repo.Add(ctx, exercise)
	if err != nil {
		if errors.Is(err, ErrExerciseNameTaken) {
			pkg.WriteFieldErrors(w, pkg.FieldErrors{"name": "an exercise with this name already exists"})
			return
		}
		log.Errorf("add exercise [%s]: %s", exercise.Name, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: %d [%s]", addedExercise.ID, addedExercise.Name)

	respJson, err := json.Marshal(addedExercise)
	if err != nil {
		log.Errorf("add exercise, marshal response: %s", err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}
