package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/svukovic/gymtrack/internal/format"
	"github.com/svukovic/gymtrack/internal/telemetry/metrics"
	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/internal/users"
	"github.com/svukovic/gymtrack/pkg"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=records_handler_mocks_test.go -package=workouts_test

type recordsRepo interface {
	Add(ctx context.Context, record Record) (*Record, error)
	Get(ctx context.Context, id, userID int) (*Record, error)
	Update(ctx context.Context, record *Record, userID int) error
	Delete(ctx context.Context, id, userID int) error
	LastForExercise(ctx context.Context, userID, exerciseID int) (*Record, error)
}

type recordSessionsRepo interface {
	Get(ctx context.Context, id, userID int) (*Session, error)
}

// AddExerciseFormResponse is the form context for adding an exercise to a
// session, optionally pre-selected via the ?exercise= query parameter.
type AddExerciseFormResponse struct {
	SessionID         int    `json:"sessionId"`
	ExerciseID        int    `json:"exerciseId,omitempty"`
	RecommendedWeight string `json:"recommendedWeight,omitempty"`
	// RecommendedWeightDisplay is the weight formatted for rendering ("82,5")
	RecommendedWeightDisplay string `json:"recommendedWeightDisplay,omitempty"`
}

// RecordsHandler serves adding, editing and deleting exercise records
// within a workout session.
type RecordsHandler struct {
	records        recordsRepo
	sessions       recordSessionsRepo
	metricsManager *metrics.Manager
}

func NewRecordsHandler(
	records recordsRepo,
	sessions recordSessionsRepo,
	metricsManager *metrics.Manager,
) *RecordsHandler {
	return &RecordsHandler{
		records:        records,
		sessions:       sessions,
		metricsManager: metricsManager,
	}
}

type recordForm struct {
	ExerciseID       int
	WeightKg         decimal.NullDecimal
	Reps             int
	Sets             int
	DifficultyRating int
	Notes            string
}

// parseRecordForm reads and validates the record fields from either a JSON
// or a form-encoded body. The weight accepts both comma and dot decimals.
func parseRecordForm(r *http.Request) (recordForm, pkg.FieldErrors, error) {
	type recordRequest struct {
		ExerciseID       int    `json:"exerciseId"`
		WeightKg         string `json:"weightKg"`
		Reps             int    `json:"reps"`
		Sets             int    `json:"sets"`
		DifficultyRating int    `json:"difficultyRating"`
		Notes            string `json:"notes"`
	}

	var req recordRequest
	fieldErrors := pkg.FieldErrors{}

	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return recordForm{}, nil, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return recordForm{}, nil, err
		}
		req.WeightKg = r.Form.Get("weight_kg")
		req.Notes = r.Form.Get("notes")
		for field, dst := range map[string]*int{
			"exercise":          &req.ExerciseID,
			"reps":              &req.Reps,
			"sets":              &req.Sets,
			"difficulty_rating": &req.DifficultyRating,
		} {
			raw := r.Form.Get(field)
			if raw == "" {
				continue
			}
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				fieldErrors[field] = "must be a whole number"
				continue
			}
			*dst = parsed
		}
	}

	form := recordForm{
		ExerciseID:       req.ExerciseID,
		Reps:             req.Reps,
		Sets:             req.Sets,
		DifficultyRating: req.DifficultyRating,
		Notes:            req.Notes,
	}

	if req.WeightKg != "" {
		weight, err := decimal.NewFromString(strings.Replace(req.WeightKg, ",", ".", 1))
		if err != nil {
			fieldErrors["weight_kg"] = "must be a number"
		} else if weight.IsNegative() {
			fieldErrors["weight_kg"] = "must not be negative"
		} else {
			form.WeightKg = decimal.NullDecimal{Decimal: weight, Valid: true}
		}
	}

	if form.ExerciseID < 1 {
		fieldErrors["exercise"] = "an exercise is required"
	}
	if form.Reps < 1 {
		fieldErrors["reps"] = "must be at least 1"
	}
	if form.Sets == 0 {
		form.Sets = 1
	}
	if form.Sets < 1 {
		fieldErrors["sets"] = "must be at least 1"
	}
	if form.DifficultyRating < 1 || form.DifficultyRating > 10 {
		fieldErrors["difficulty_rating"] = "must be between 1 and 10"
	}

	return form, fieldErrors, nil
}

// HandleAddForm returns the add-exercise form context. With ?exercise= set,
// the exercise is pre-selected and its recommended next weight included.
func (handler *RecordsHandler) HandleAddForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.addForm")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	session, ok := handler.ownedSession(w, r, "id", user.ID)
	if !ok {
		return
	}

	resp := AddExerciseFormResponse{SessionID: session.ID}
	if exerciseRaw := r.URL.Query().Get("exercise"); exerciseRaw != "" {
		exerciseID, err := strconv.Atoi(exerciseRaw)
		if err != nil {
			http.Error(w, "invalid exercise id", http.StatusBadRequest)
			return
		}
		resp.ExerciseID = exerciseID

		prior, err := handler.records.LastForExercise(ctx, user.ID, exerciseID)
		if err != nil && !errors.Is(err, ErrRecordNotFound) {
			log.Errorf("add form, last record for exercise %d: %s", exerciseID, err)
			pkg.WriteErrorPage(w, http.StatusInternalServerError)
			return
		}
		recommended := RecommendNextWeight(prior)
		resp.RecommendedWeight = recommended.String()
		resp.RecommendedWeightDisplay = format.Weight(recommended)
	}

	writeJSON(w, resp)
}

func (handler *RecordsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.add")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	session, ok := handler.ownedSession(w, r, "id", user.ID)
	if !ok {
		return
	}

	form, fieldErrors, err := parseRecordForm(r)
	if err != nil {
		log.Tracef("add record, parse params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	if len(fieldErrors) > 0 {
		pkg.WriteFieldErrors(w, fieldErrors)
		return
	}

	record, err := handler.records.Add(ctx, Record{
		SessionID:        session.ID,
		ExerciseID:       form.ExerciseID,
		WeightKg:         form.WeightKg,
		Reps:             form.Reps,
		Sets:             form.Sets,
		DifficultyRating: form.DifficultyRating,
		Notes:            form.Notes,
		CreatedAt:        time.Now(),
	})
	if err != nil {
		if errors.Is(err, ErrInvalidExercise) {
			pkg.WriteFieldErrors(w, pkg.FieldErrors{"exercise": "exercise does not exist"})
			return
		}
		if errors.Is(err, ErrInvalidRecordValues) {
			pkg.WriteFieldErrors(w, pkg.FieldErrors{"record": "values out of range"})
			return
		}
		log.Errorf("add record to session %d: %s", session.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterExerciseRecords.Inc()
	log.Debugf("record %d added to session %d by user %d", record.ID, session.ID, user.ID)

	respJson, err := json.Marshal(recordView(*record))
	if err != nil {
		log.Errorf("add record, marshal response: %s", err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

// HandleEditForm returns the record being edited as form context.
func (handler *RecordsHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.editForm")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	record, ok := handler.ownedRecord(w, r, user.ID)
	if !ok {
		return
	}
	writeJSON(w, recordView(*record))
}

func (handler *RecordsHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.edit")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	record, ok := handler.ownedRecord(w, r, user.ID)
	if !ok {
		return
	}

	form, fieldErrors, err := parseRecordForm(r)
	if err != nil {
		log.Tracef("edit record, parse params: %s", err)
		http.Error(w, "edit exercise failed", http.StatusBadRequest)
		return
	}
	if len(fieldErrors) > 0 {
		pkg.WriteFieldErrors(w, fieldErrors)
		return
	}

	record.ExerciseID = form.ExerciseID
	record.WeightKg = form.WeightKg
	record.Reps = form.Reps
	record.Sets = form.Sets
	record.DifficultyRating = form.DifficultyRating
	record.Notes = form.Notes

	if err := handler.records.Update(ctx, record, user.ID); err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			pkg.WriteErrorPage(w, http.StatusNotFound)
		case errors.Is(err, ErrInvalidExercise):
			pkg.WriteFieldErrors(w, pkg.FieldErrors{"exercise": "exercise does not exist"})
		case errors.Is(err, ErrInvalidRecordValues):
			pkg.WriteFieldErrors(w, pkg.FieldErrors{"record": "values out of range"})
		default:
			log.Errorf("update record %d: %s", record.ID, err)
			pkg.WriteErrorPage(w, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, recordView(*record))
}

// HandleDeleteForm returns the record as delete confirmation context.
func (handler *RecordsHandler) HandleDeleteForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.deleteForm")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	record, ok := handler.ownedRecord(w, r, user.ID)
	if !ok {
		return
	}
	writeJSON(w, recordView(*record))
}

func (handler *RecordsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.delete")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	record, ok := handler.ownedRecord(w, r, user.ID)
	if !ok {
		return
	}

	if err := handler.records.Delete(ctx, record.ID, user.ID); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			pkg.WriteErrorPage(w, http.StatusNotFound)
			return
		}
		log.Errorf("delete record %d: %s", record.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	log.Debugf("record %d deleted by user %d", record.ID, user.ID)
	pkg.WriteJSONResponseOK(w, `{"deletedId":`+strconv.Itoa(record.ID)+`}`)
}

// ownedSession loads the session from the given path var, scoped to the user.
func (handler *RecordsHandler) ownedSession(w http.ResponseWriter, r *http.Request, pathVar string, userID int) (*Session, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[pathVar])
	if err != nil {
		pkg.WriteErrorPage(w, http.StatusNotFound)
		return nil, false
	}

	session, err := handler.sessions.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			pkg.WriteErrorPage(w, http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get session %d: %s", id, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return nil, false
	}
	return session, true
}

// ownedRecord loads the record from the {id} path var and checks it belongs
// to the session in the {workoutID} path var, both scoped to the user.
func (handler *RecordsHandler) ownedRecord(w http.ResponseWriter, r *http.Request, userID int) (*Record, bool) {
	vars := mux.Vars(r)
	workoutID, err := strconv.Atoi(vars["workoutID"])
	if err != nil {
		pkg.WriteErrorPage(w, http.StatusNotFound)
		return nil, false
	}
	recordID, err := strconv.Atoi(vars["id"])
	if err != nil {
		pkg.WriteErrorPage(w, http.StatusNotFound)
		return nil, false
	}

	record, err := handler.records.Get(r.Context(), recordID, userID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			pkg.WriteErrorPage(w, http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get record %d: %s", recordID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return nil, false
	}

	if record.SessionID != workoutID {
		pkg.WriteErrorPage(w, http.StatusNotFound)
		return nil, false
	}
	return record, true
}
