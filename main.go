package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/app"
	"github.com/RubachokBoss/study-planner/internal/config"
	"github.com/RubachokBoss/study-planner/internal/database"
	"github.com/RubachokBoss/study-planner/pkg/logger"
)

type runContext struct {
	cfg *config.Config
	log zerolog.Logger
}

var CLI struct {
	Version kong.VersionFlag

	Serve   ServeCmd   `cmd:"" help:"Run the web server." default:"1"`
	Migrate MigrateCmd `cmd:"" help:"Apply or roll back database migrations."`
}

type ServeCmd struct{}

func (c *ServeCmd) Run(rc *runContext) error {
	log := rc.log

	if err := database.Migrate(rc.cfg.Database); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	db, err := database.Open(ctx, rc.cfg.Database)
	if err != nil {
		return err
	}

	log.Info().
		Str("driver", rc.cfg.Database.Driver).
		Msg("Database connection established")

	application, err := app.New(ctx, rc.cfg, log, db)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create application: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), rc.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown gracefully")
	}

	log.Info().Msg("Study planner stopped")
	return nil
}

type MigrateCmd struct {
	Direction string `help:"Direction of migration." enum:"up,down" default:"up"`
}

func (c *MigrateCmd) Run(rc *runContext) error {
	migrator, err := database.NewMigrator(rc.cfg.Database)
	if err != nil {
		return err
	}

	switch c.Direction {
	case "down":
		if err := migrator.Down(); err != nil {
			return err
		}
		rc.log.Info().Msg("Migrations rolled back successfully")
	default:
		if err := migrator.Up(); err != nil {
			return err
		}
		rc.log.Info().Msg("Migrations applied successfully")
	}
	return nil
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("study-planner"),
		kong.Description("Homework tracker, weekly timetable and a rock-paper-scissors break"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		// конфигурации ещё нет, пишем консольным логгером по умолчанию
		fallback := logger.New()
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.NewWithConfig(cfg.Logging.Level, cfg.Logging.Pretty, cfg.Logging.NoColor, cfg.Logging.File)

	if err := kctx.Run(&runContext{cfg: cfg, log: log}); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
