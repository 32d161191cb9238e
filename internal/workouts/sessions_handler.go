package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
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

const (
	historyPageSize   = 10
	dashboardSessions = 5
	dashboardRecords  = 10
	dashboardDaysBack = 30
	dateLayout        = "2006-01-02"
)

//go:generate mockgen -source=$GOFILE -destination=sessions_handler_mocks_test.go -package=workouts_test

type sessionsRepo interface {
	Create(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, id, userID int) (*Session, error)
	Complete(ctx context.Context, id, userID int, endTime time.Time) (*Session, error)
	UpdateNotes(ctx context.Context, id, userID int, notes string) error
	History(ctx context.Context, params HistoryParams) (_ []Session, total int, err error)
	ListRecent(ctx context.Context, userID, limit int) ([]Session, error)
	GetForDate(ctx context.Context, userID int, date time.Time) (*Session, error)
	CountSince(ctx context.Context, userID int, since time.Time) (int, error)
}

type sessionRecordsRepo interface {
	ListForSession(ctx context.Context, sessionID, userID int) ([]Record, error)
	ListRecent(ctx context.Context, userID, limit int) ([]Record, error)
}

type exercisePlanner interface {
	AvailableExercises(ctx context.Context, userID, sessionID int) ([]ExerciseSuggestion, error)
}

// SessionView is a session with its duration rendered for display.
type SessionView struct {
	Session
	DurationDisplay string `json:"durationDisplay"`
}

// RecordView is a record with weight and volume rendered for display.
type RecordView struct {
	Record
	WeightDisplay string          `json:"weightDisplay"`
	TotalVolume   decimal.Decimal `json:"totalVolume"`
}

type DashboardResponse struct {
	RecentSessions []SessionView `json:"recentSessions"`
	TodaySession   *SessionView  `json:"todaySession,omitempty"`
	MonthlyCount   int           `json:"monthlyCount"`
	RecentRecords  []RecordView  `json:"recentRecords"`
}

type SessionDetailResponse struct {
	Session            SessionView          `json:"session"`
	Records            []RecordView         `json:"records"`
	TotalVolume        decimal.Decimal      `json:"totalVolume"`
	AvailableExercises []ExerciseSuggestion `json:"availableExercises"`
}

type HistoryResponse struct {
	Sessions []SessionView `json:"sessions"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
}

// SessionsHandler serves the dashboard, session lifecycle and history pages.
type SessionsHandler struct {
	sessions       sessionsRepo
	records        sessionRecordsRepo
	planner        exercisePlanner
	metricsManager *metrics.Manager
}

func NewSessionsHandler(
	sessions sessionsRepo,
	records sessionRecordsRepo,
	planner exercisePlanner,
	metricsManager *metrics.Manager,
) *SessionsHandler {
	return &SessionsHandler{
		sessions:       sessions,
		records:        records,
		planner:        planner,
		metricsManager: metricsManager,
	}
}

func sessionView(s Session) SessionView {
	return SessionView{
		Session:         s,
		DurationDisplay: format.Duration(s.Duration()),
	}
}

func recordView(r Record) RecordView {
	return RecordView{
		Record:        r,
		WeightDisplay: format.NullWeight(r.WeightKg),
		TotalVolume:   r.TotalVolume(),
	}
}

func (handler *SessionsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.dashboard")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	recentSessions, err := handler.sessions.ListRecent(ctx, user.ID, dashboardSessions)
	if err != nil {
		log.Errorf("dashboard, recent sessions for user %d: %s", user.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	var todaySession *SessionView
	if session, err := handler.sessions.GetForDate(ctx, user.ID, today); err == nil {
		view := sessionView(*session)
		todaySession = &view
	} else if !errors.Is(err, ErrSessionNotFound) {
		log.Errorf("dashboard, today session for user %d: %s", user.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	monthlyCount, err := handler.sessions.CountSince(ctx, user.ID, today.AddDate(0, 0, -dashboardDaysBack))
	if err != nil {
		log.Errorf("dashboard, session count for user %d: %s", user.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	recentRecords, err := handler.records.ListRecent(ctx, user.ID, dashboardRecords)
	if err != nil {
		log.Errorf("dashboard, recent records for user %d: %s", user.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	resp := DashboardResponse{
		RecentSessions: make([]SessionView, 0, len(recentSessions)),
		TodaySession:   todaySession,
		MonthlyCount:   monthlyCount,
		RecentRecords:  make([]RecordView, 0, len(recentRecords)),
	}
	for _, s := range recentSessions {
		resp.RecentSessions = append(resp.RecentSessions, sessionView(s))
	}
	for _, rec := range recentRecords {
		resp.RecentRecords = append(resp.RecentRecords, recordView(rec))
	}

	writeJSON(w, resp)
}

// HandleNewForm returns the create-session form defaults.
func (handler *SessionsHandler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newForm")
	defer span.End()

	pkg.WriteJSONResponseOK(w, `{"date":"`+time.Now().Format(dateLayout)+`","notes":""}`)
}

func (handler *SessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	type createRequest struct {
		Date  string `json:"date"`
		Notes string `json:"notes"`
	}

	var createReq createRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
			log.Tracef("create session, unmarshal json params: %s", err)
			http.Error(w, "create workout failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("create session, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		createReq.Date = r.Form.Get("date")
		createReq.Notes = r.Form.Get("notes")
	}

	if createReq.Date == "" {
		createReq.Date = time.Now().Format(dateLayout)
	}
	date, err := time.Parse(dateLayout, createReq.Date)
	if err != nil {
		pkg.WriteFieldErrors(w, pkg.FieldErrors{"date": "invalid date, expected YYYY-MM-DD"})
		return
	}

	now := time.Now()
	session, err := handler.sessions.Create(ctx, Session{
		UserID:    user.ID,
		Date:      date,
		StartTime: now,
		Notes:     createReq.Notes,
		CreatedAt: now,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateSession) {
			pkg.WriteFieldErrors(w, pkg.FieldErrors{"date": "a workout at this date and start time already exists"})
			return
		}
		log.Errorf("create session for user %d: %s", user.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsStarted.Inc()
	log.Debugf("workout session %d started by user %d", session.ID, user.ID)

	respJson, err := json.Marshal(sessionView(*session))
	if err != nil {
		log.Errorf("create session, marshal response: %s", err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *SessionsHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.detail")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	session, ok := handler.sessionFromPath(w, r, user.ID)
	if !ok {
		return
	}

	records, err := handler.records.ListForSession(ctx, session.ID, user.ID)
	if err != nil {
		log.Errorf("session detail, records for session %d: %s", session.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	available, err := handler.planner.AvailableExercises(ctx, user.ID, session.ID)
	if err != nil {
		log.Errorf("session detail, available exercises for session %d: %s", session.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	totalVolume := decimal.Zero
	recordViews := make([]RecordView, 0, len(records))
	for _, rec := range records {
		view := recordView(rec)
		totalVolume = totalVolume.Add(view.TotalVolume)
		recordViews = append(recordViews, view)
	}

	writeJSON(w, SessionDetailResponse{
		Session:            sessionView(*session),
		Records:            recordViews,
		TotalVolume:        totalVolume,
		AvailableExercises: available,
	})
}

// HandleCompleteForm returns the session as confirmation context.
func (handler *SessionsHandler) HandleCompleteForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.completeForm")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	session, ok := handler.sessionFromPath(w, r, user.ID)
	if !ok {
		return
	}
	writeJSON(w, sessionView(*session))
}

func (handler *SessionsHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.complete")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteErrorPage(w, http.StatusNotFound)
		return
	}

	type completeRequest struct {
		Notes *string `json:"notes"`
	}

	var completeReq completeRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&completeReq); err != nil && !errors.Is(err, io.EOF) {
			log.Tracef("complete session, unmarshal json params: %s", err)
			http.Error(w, "complete workout failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("complete session, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		if r.Form.Has("notes") {
			notes := r.Form.Get("notes")
			completeReq.Notes = &notes
		}
	}

	if completeReq.Notes != nil {
		if err := handler.sessions.UpdateNotes(ctx, id, user.ID, *completeReq.Notes); err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				pkg.WriteErrorPage(w, http.StatusNotFound)
				return
			}
			log.Errorf("complete session %d, update notes for user %d: %s", id, user.ID, err)
			pkg.WriteErrorPage(w, http.StatusInternalServerError)
			return
		}
	}

	session, err := handler.sessions.Complete(ctx, id, user.ID, time.Now())
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			pkg.WriteErrorPage(w, http.StatusNotFound)
			return
		}
		log.Errorf("complete session %d for user %d: %s", id, user.ID, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsCompleted.Inc()
	log.Debugf("workout session %d completed by user %d", session.ID, user.ID)

	writeJSON(w, sessionView(*session))
}

func (handler *SessionsHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	user := users.UserFromContext(ctx)
	if user == nil {
		pkg.WriteErrorPage(w, http.StatusForbidden)
		return
	}

	page := 1
	if pageRaw := r.URL.Query().Get("page"); pageRaw != "" {
		parsed, err := strconv.Atoi(pageRaw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	params := HistoryParams{
		UserID: user.ID,
		Page:   page,
		Size:   historyPageSize,
	}
	if fromRaw := r.URL.Query().Get("date_from"); fromRaw != "" {
		from, err := time.Parse(dateLayout, fromRaw)
		if err != nil {
			pkg.WriteFieldErrors(w, pkg.FieldErrors{"date_from": "invalid date, expected YYYY-MM-DD"})
			return
		}
		params.From = &from
	}
	if toRaw := r.URL.Query().Get("date_to"); toRaw != "" {
		to, err := time.Parse(dateLayout, toRaw)
		if err != nil {
			pkg.WriteFieldErrors(w, pkg.FieldErrors{"date_to": "invalid date, expected YYYY-MM-DD"})
			return
		}
		params.To = &to
	}

	sessions, total, err := handler.sessions.History(ctx, params)
	if err != nil {
		log.Errorf("history for user %d, page %d: %s", user.ID, page, err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}

	resp := HistoryResponse{
		Sessions: make([]SessionView, 0, len(sessions)),
		Total:    total,
		Page:     page,
	}
	for _, s := range sessions {
		resp.Sessions = append(resp.Sessions, sessionView(s))
	}
	writeJSON(w, resp)
}

// sessionFromPath loads the session from the {id} path var, scoped to the
// user. Missing or foreign sessions render the 404 page.
func (handler *SessionsHandler) sessionFromPath(w http.ResponseWriter, r *http.Request, userID int) (*Session, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
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

func writeJSON(w http.ResponseWriter, payload any) {
	respJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		pkg.WriteErrorPage(w, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
