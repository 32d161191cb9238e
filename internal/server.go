package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/svukovic/gymtrack/internal/auth"
	"github.com/svukovic/gymtrack/internal/config"
	"github.com/svukovic/gymtrack/internal/db"
	"github.com/svukovic/gymtrack/internal/exercises"
	"github.com/svukovic/gymtrack/internal/mail"
	"github.com/svukovic/gymtrack/internal/middleware"
	"github.com/svukovic/gymtrack/internal/telemetry/metrics"
	"github.com/svukovic/gymtrack/internal/telemetry/tracing"
	"github.com/svukovic/gymtrack/internal/users"
	"github.com/svukovic/gymtrack/internal/workouts"
	"github.com/svukovic/gymtrack/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	usersRepo      *users.Repo
	invitesService *users.InvitesService
	mailer         mail.Mailer

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config        *config.Config
	RedisPassword string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.Config.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymtrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(
		params.Config.HoneycombTracingEnabled,
		"gymtrack-backend", rdb,
	)
	if err != nil {
		return nil, err
	}

	var mailer mail.Mailer
	if params.Config.MailerDisabled {
		mailer = &mail.LogMailer{}
	} else {
		mailer = mail.NewSMTPMailer(params.Config.SMTPHost, params.Config.SMTPPort)
	}

	usersRepo := users.NewRepo(dbPool)

	return &Server{
		config: params.Config,
		dbPool: dbPool,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		usersRepo: usersRepo,
		mailer:    mailer,
		invitesService: users.NewInvitesService(
			usersRepo,
			mailer,
			params.Config.SiteBaseURL,
			params.Config.MailSender,
			metricsManager,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymtrack-router"))

	sessionsRepo := workouts.NewSessionsRepo(s.dbPool)
	recordsRepo := workouts.NewRecordsRepo(s.dbPool)
	planner := workouts.NewPlanner(recordsRepo)

	sessionsHandler := workouts.NewSessionsHandler(sessionsRepo, recordsRepo, planner, s.metricsManager)
	r.HandleFunc("/", sessionsHandler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/workout/new", sessionsHandler.HandleNewForm).Methods("GET", "OPTIONS").Name("new-workout-form")
	r.HandleFunc("/workout/new", sessionsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workout/{id}", sessionsHandler.HandleDetail).Methods("GET", "OPTIONS").Name("workout-detail")
	r.HandleFunc("/workout/{id}/complete", sessionsHandler.HandleCompleteForm).Methods("GET", "OPTIONS").Name("complete-workout-form")
	r.HandleFunc("/workout/{id}/complete", sessionsHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/history", sessionsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("workout-history")

	recordsHandler := workouts.NewRecordsHandler(recordsRepo, sessionsRepo, s.metricsManager)
	r.HandleFunc("/workout/{id}/add-exercise", recordsHandler.HandleAddForm).Methods("GET", "OPTIONS").Name("add-exercise-form")
	r.HandleFunc("/workout/{id}/add-exercise", recordsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/workout/{workoutID}/exercise/{id}/edit", recordsHandler.HandleEditForm).Methods("GET", "OPTIONS").Name("edit-exercise-form")
	r.HandleFunc("/workout/{workoutID}/exercise/{id}/edit", recordsHandler.HandleEdit).Methods("POST", "OPTIONS").Name("edit-exercise")
	r.HandleFunc("/workout/{workoutID}/exercise/{id}/delete", recordsHandler.HandleDeleteForm).Methods("GET", "OPTIONS").Name("delete-exercise-form")
	r.HandleFunc("/workout/{workoutID}/exercise/{id}/delete", recordsHandler.HandleDelete).Methods("POST", "OPTIONS").Name("delete-exercise")

	exercisesHandler := exercises.NewHandler(exercises.NewRepo(s.dbPool))
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/add", exercisesHandler.HandleAddForm).Methods("GET", "OPTIONS").Name("new-exercise-form")
	r.HandleFunc("/exercises/add", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")

	profileHandler := users.NewProfileHandler(s.usersRepo)
	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("profile")
	r.HandleFunc("/profile", profileHandler.HandleUpdate).Methods("POST", "OPTIONS").Name("update-profile")

	adminHandler := users.NewAdminHandler(s.usersRepo, s.invitesService)
	r.HandleFunc("/manage-users", adminHandler.HandleManageUsers).Methods("GET", "OPTIONS").Name("manage-users")
	r.HandleFunc("/invite-user", adminHandler.HandleInviteUser).Methods("POST", "OPTIONS").Name("invite-user")
	r.HandleFunc("/resend-invite/{userID}", adminHandler.HandleResendInvite).Methods("POST", "OPTIONS").Name("resend-invite")
	r.HandleFunc("/toggle-superuser/{userID}", adminHandler.HandleToggleSuperuser).Methods("POST", "OPTIONS").Name("toggle-superuser")

	authHandler := users.NewAuthHandler(s.usersRepo, s.authService, s.invitesService)
	loginRateLimit := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	)
	r.Handle("/login", loginRateLimit(http.HandlerFunc(authHandler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
	r.HandleFunc("/signup/{token}", authHandler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteErrorPage(w, http.StatusNotFound)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker, s.usersRepo)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
