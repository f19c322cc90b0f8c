package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/study-planner/internal/config"
	"github.com/RubachokBoss/study-planner/internal/delivery/httpd"
	"github.com/RubachokBoss/study-planner/internal/middleware"
	"github.com/RubachokBoss/study-planner/internal/repository"
	"github.com/RubachokBoss/study-planner/internal/service"
	"github.com/RubachokBoss/study-planner/internal/service/integration"
)

type App struct {
	server    *http.Server
	logger    zerolog.Logger
	config    *config.Config
	db        *sql.DB
	publisher integration.EventPublisher
}

func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	publisher := newPublisher(cfg.RabbitMQ, log)

	// Репозитории
	driver := cfg.Database.Driver
	assignmentRepo := repository.NewAssignmentRepository(db, driver, log)
	timeSlotRepo := repository.NewTimeSlotRepository(db, driver, log)
	noteRepo := repository.NewNoteRepository(db, driver, log)
	playerRepo := repository.NewPlayerRepository(db, driver, log)

	// Сервисы
	assignmentService := service.NewAssignmentService(assignmentRepo, timeSlotRepo, publisher, log)
	timeSlotService := service.NewTimeSlotService(timeSlotRepo, log)
	noteService := service.NewNoteService(noteRepo, cfg.Notes.Retention, nil, log)
	gameService := service.NewGameService(playerRepo, publisher, nil, log)

	if err := timeSlotService.SeedDefaults(ctx); err != nil {
		publisher.Close()
		return nil, fmt.Errorf("failed to seed time slots: %w", err)
	}

	pages, err := httpd.NewRenderer()
	if err != nil {
		publisher.Close()
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	handler := httpd.NewHandler(
		assignmentService,
		timeSlotService,
		noteService,
		gameService,
		repository.NewSQLRepository(db, driver, log),
		pages,
		log,
	)

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))
	router.Use(middleware.NewCORS(cfg.CORS))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:    server,
		logger:    log,
		config:    cfg,
		db:        db,
		publisher: publisher,
	}, nil
}

// без брокера приложение работает, события просто не уходят
func newPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) integration.EventPublisher {
	if !cfg.Enabled {
		return integration.NewNopPublisher()
	}

	publisher, err := integration.NewRabbitMQPublisher(cfg.URL, cfg.Exchange, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create RabbitMQ publisher, events disabled")
		return integration.NewNopPublisher()
	}
	return publisher
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting study planner on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down study planner...")

	err := a.server.Shutdown(ctx)

	if err := a.publisher.Close(); err != nil {
		a.logger.Error().Err(err).Msg("Failed to close event publisher")
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return err
}
