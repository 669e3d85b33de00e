package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/fitadapt/internal"
	"github.com/2beens/fitadapt/internal/config"
	"github.com/2beens/fitadapt/internal/db"
	"github.com/2beens/fitadapt/internal/logging"
	"github.com/2beens/fitadapt/pkg"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	env        string
	configPath string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fitadapt",
		Short:         "FitAdapt backend: workouts, goals and AI generated challenges",
		SilenceUsage:  true,
		SilenceErrors: true,
		// serve is the default
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.env, "env", "development", "environment [prod | production | dev | development]")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "./config.toml", "path for the TOML config file")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), flags)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context(), flags)
		},
	})

	return cmd
}

func setup(flags *rootFlags) (*config.Config, config.Secrets, func(), error) {
	log.Warnf("---->> running in [%s] environment", flags.env)

	cfg, err := config.Load(flags.env, flags.configPath)
	if err != nil {
		return nil, config.Secrets{}, nil, err
	}

	secrets := config.SecretsFromEnv(os.Getenv)
	closeLogs, err := logging.Setup(logging.LoggerSetupParams{
		LogsPath:         cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.Environment == "production",
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "fitadapt-service",
	})
	if err != nil {
		return nil, config.Secrets{}, nil, fmt.Errorf("setup logging: %w", err)
	}

	return cfg, secrets, closeLogs, nil
}

func serve(ctx context.Context, flags *rootFlags) error {
	fmt.Println("starting ...")

	cfg, secrets, closeLogs, err := setup(flags)
	if err != nil {
		return err
	}
	defer closeLogs()

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		Secrets:                 secrets,
		VersionInfo:             versionInfo,
		HoneycombTracingEnabled: honeycombEnabled,
	})
	if err != nil {
		return fmt.Errorf("new server: %w", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnf("signal received, shutting down ...")

	// go to sleep 🥱
	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("graceful shutdown: %s", err)
		return err
	}
	return nil
}

func migrate(ctx context.Context, flags *rootFlags) error {
	cfg, secrets, closeLogs, err := setup(flags)
	if err != nil {
		return err
	}
	defer closeLogs()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DatabaseURL: secrets.DatabaseURL,
		DBHost:      cfg.PostgresHost,
		DBPort:      cfg.PostgresPort,
		DBUser:      cfg.PostgresUser,
		DBPassword:  secrets.DBPassword,
		DBName:      cfg.PostgresDBName,
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		return err
	}
	log.Infof("schema applied to [%s]", cfg.PostgresDBName)
	return nil
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
