package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/svukovic/gymtrack/internal/config"
	"github.com/svukovic/gymtrack/internal/db"
	"github.com/svukovic/gymtrack/internal/exercises"
	"github.com/svukovic/gymtrack/internal/logging"
	"github.com/svukovic/gymtrack/internal/users"
	"github.com/svukovic/gymtrack/internal/workouts"
	"github.com/svukovic/gymtrack/pkg"
)

const seedPassword = "some_pass"

var demoWorkoutsFlag int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "seed the database with starter users and exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed(cmd.Context())
	},
}

func init() {
	seedCmd.Flags().IntVar(
		&demoWorkoutsFlag, "demo-workouts", 0,
		"also generate this many fake past workouts per user",
	)
	rootCmd.AddCommand(seedCmd)
}

var starterExercises = []exercises.Exercise{
	{Name: "Bench Press", MuscleGroups: "chest, triceps"},
	{Name: "Squat", MuscleGroups: "quads, glutes"},
	{Name: "Deadlift", MuscleGroups: "back, hamstrings"},
	{Name: "Overhead Press", MuscleGroups: "shoulders, triceps"},
	{Name: "Barbell Row", MuscleGroups: "back, biceps"},
	{Name: "Pull Up", MuscleGroups: "back, biceps"},
	{Name: "Dip", MuscleGroups: "chest, triceps"},
	{Name: "Leg Press", MuscleGroups: "quads, glutes"},
	{Name: "Lateral Raise", MuscleGroups: "shoulders"},
	{Name: "Biceps Curl", MuscleGroups: "biceps"},
}

func seed(ctx context.Context) error {
	cfg, err := config.Load(envFlag, configPathFlag)
	if err != nil {
		return err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	usersRepo := users.NewRepo(dbPool)
	alice, err := seedUser(ctx, usersRepo, "alice@example.com", true)
	if err != nil {
		return err
	}
	bob, err := seedUser(ctx, usersRepo, "bob@example.com", false)
	if err != nil {
		return err
	}
	if err := seedPartners(ctx, usersRepo, alice, bob); err != nil {
		return err
	}

	exercisesRepo := exercises.NewRepo(dbPool)
	for _, exercise := range starterExercises {
		exercise.CreatedAt = time.Now()
		if _, err := exercisesRepo.Add(ctx, exercise); err != nil {
			if errors.Is(err, exercises.ErrExerciseNameTaken) {
				log.Debugf("exercise %q already present, skipping", exercise.Name)
				continue
			}
			return fmt.Errorf("add exercise %q: %w", exercise.Name, err)
		}
		log.Infof("exercise %q added", exercise.Name)
	}

	if demoWorkoutsFlag > 0 {
		allExercises, err := exercisesRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list exercises: %w", err)
		}
		for _, user := range []*users.User{alice, bob} {
			if err := seedDemoWorkouts(ctx, dbPool, user, allExercises); err != nil {
				return err
			}
		}
	}

	log.Infof("seeding done, login with %s / %s (password: %s)", alice.Email, bob.Email, seedPassword)
	return nil
}

func seedUser(ctx context.Context, repo *users.Repo, email string, superuser bool) (*users.User, error) {
	existing, err := repo.GetByEmail(ctx, email)
	if err == nil {
		log.Debugf("user %s already present, skipping", email)
		return existing, nil
	}
	if !errors.Is(err, users.ErrUserNotFound) {
		return nil, fmt.Errorf("get user %s: %w", email, err)
	}

	passwordHash, err := pkg.HashPassword(seedPassword)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	user, err := repo.Create(ctx, users.User{
		Email:        email,
		Username:     email,
		PasswordHash: passwordHash,
		IsActive:     true,
		IsSuperuser:  superuser,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", email, err)
	}

	log.Infof("user %s created (superuser: %t)", email, superuser)
	return user, nil
}

// seedPartners makes the two starter users each other's default workout partner.
func seedPartners(ctx context.Context, repo *users.Repo, alice, bob *users.User) error {
	for _, pair := range []struct {
		user    *users.User
		partner *users.User
	}{
		{alice, bob},
		{bob, alice},
	} {
		profile, err := repo.GetOrCreateProfile(ctx, pair.user.ID)
		if err != nil {
			return fmt.Errorf("get profile for %s: %w", pair.user.Email, err)
		}
		if profile.DefaultPartnerID != nil {
			continue
		}
		profile.DefaultPartnerID = &pair.partner.ID
		if err := repo.UpdateProfile(ctx, profile); err != nil {
			return fmt.Errorf("update profile for %s: %w", pair.user.Email, err)
		}
	}
	return nil
}

// seedDemoWorkouts generates fake past workouts with a few exercise records
// each, so a fresh install has some history to browse.
func seedDemoWorkouts(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	user *users.User,
	allExercises []exercises.Exercise,
) error {
	sessionsRepo := workouts.NewSessionsRepo(dbPool)
	recordsRepo := workouts.NewRecordsRepo(dbPool)
	weightStep := decimal.RequireFromString("2.5")

	created := 0
	for day := 1; created < demoWorkoutsFlag && day <= demoWorkoutsFlag*3; day++ {
		if gofakeit.Bool() {
			continue
		}

		date := time.Now().AddDate(0, 0, -day).Truncate(24 * time.Hour)
		startTime := date.Add(time.Duration(gofakeit.Number(7, 20)) * time.Hour)

		session, err := sessionsRepo.Create(ctx, workouts.Session{
			UserID:    user.ID,
			Date:      date,
			StartTime: startTime,
			CreatedAt: startTime,
		})
		if err != nil {
			if errors.Is(err, workouts.ErrDuplicateSession) {
				continue
			}
			return fmt.Errorf("create demo session for %s: %w", user.Email, err)
		}

		for i := 0; i < gofakeit.Number(2, 4); i++ {
			exercise := allExercises[gofakeit.Number(0, len(allExercises)-1)]
			weight := weightStep.Mul(decimal.NewFromInt(int64(gofakeit.Number(4, 40))))
			if _, err := recordsRepo.Add(ctx, workouts.Record{
				SessionID:        session.ID,
				ExerciseID:       exercise.ID,
				WeightKg:         decimal.NullDecimal{Decimal: weight, Valid: true},
				Reps:             gofakeit.Number(5, 12),
				Sets:             gofakeit.Number(1, 5),
				DifficultyRating: gofakeit.Number(1, 10),
				Notes:            gofakeit.SentenceSimple(),
				CreatedAt:        startTime,
			}); err != nil {
				return fmt.Errorf("add demo record: %w", err)
			}
		}

		endTime := startTime.Add(time.Duration(gofakeit.Number(40, 120)) * time.Minute)
		if _, err := sessionsRepo.Complete(ctx, session.ID, user.ID, endTime); err != nil {
			return fmt.Errorf("complete demo session %d: %w", session.ID, err)
		}
		created++
	}

	log.Infof("generated %d demo workouts for %s", created, user.Email)
	return nil
}
