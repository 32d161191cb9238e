package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/svukovic/gymtrack/internal"
	"github.com/svukovic/gymtrack/internal/config"
	"github.com/svukovic/gymtrack/internal/logging"
)

var portFlag int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the gymtrack server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	serveCmd.Flags().IntVar(&portFlag, "port", 0, "override the port from the config file")
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	log.Warnf("---->> running in [%s] environment", envFlag)

	cfg, err := config.Load(envFlag, configPathFlag)
	if err != nil {
		return err
	}
	if portFlag != 0 {
		cfg.Port = portFlag
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "gymtrack",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	redisPassword := os.Getenv("GYMTRACK_REDIS_PASS")
	if redisPassword == "" {
		log.Warnln("redis password not set, use GYMTRACK_REDIS_PASS env var to set it")
	}

	if cfg.HoneycombTracingEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:        cfg,
		RedisPassword: redisPassword,
	})
	if err != nil {
		return err
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)
	cancel()
	server.GracefulShutdown()

	return nil
}
