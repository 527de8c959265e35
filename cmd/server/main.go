package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmateos23/tennis-tour-system/config"
	"github.com/dmateos23/tennis-tour-system/db"
	"github.com/dmateos23/tennis-tour-system/handlers"
	"github.com/dmateos23/tennis-tour-system/metrics"
	"github.com/dmateos23/tennis-tour-system/middleware"
	"github.com/dmateos23/tennis-tour-system/notify"
	"github.com/dmateos23/tennis-tour-system/repositories"
	api "github.com/dmateos23/tennis-tour-system/routes"
	"github.com/dmateos23/tennis-tour-system/scoreboard"
	"github.com/dmateos23/tennis-tour-system/services"
	"github.com/dmateos23/tennis-tour-system/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Применение миграций схемы
	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	// Метрики
	metricsService := metrics.NewService()

	// Хранилище постеров (опционально)
	var uploader storage.FileUploader
	if cfg.PosterStorageEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("poster storage not configured, uploads disabled")
	}

	// Slack-оповещения (опционально)
	var notifier notify.Notifier = notify.NewNoop()
	if cfg.SlackEnabled() {
		notifier = notify.NewSlackNotifier(cfg.SlackBotToken, cfg.SlackChannelID, metricsService, logger)
		logger.Info("slack notifier initialized", slog.String("channel", cfg.SlackChannelID))
	}

	// Инициализация WebSocket Hub
	hub := scoreboard.NewHub(logger, metricsService)
	go hub.Run()
	logger.Info("scoreboard hub started")

	// Инициализация репозиториев
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	logger.Info("repositories initialized")

	// Инициализация сервисов
	playerService := services.NewPlayerService(playerRepo)
	tournamentService := services.NewTournamentService(tournamentRepo, uploader, logger)
	matchService := services.NewMatchService(
		matchRepo,
		tournamentRepo,
		playerRepo,
		hub,
		notifier,
		metricsService,
		logger,
	)
	statsService := services.NewStatsService(playerRepo, tournamentRepo, matchRepo)
	authService := services.NewAuthService(userRepo, logger)
	adminService := services.NewAdminService(dbConn, matchRepo, tournamentRepo, playerRepo, logger)
	logger.Info("services initialized")

	// Создание администратора при первом запуске
	if err := authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Error("failed to ensure admin user", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация обработчиков HTTP
	h := api.Handlers{
		Auth:       handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Admin:      handlers.NewAdminHandler(adminService),
		Player:     handlers.NewPlayerHandler(playerService),
		Tournament: handlers.NewTournamentHandler(tournamentService),
		Match:      handlers.NewMatchHandler(matchService),
		Stats:      handlers.NewStatsHandler(statsService),
		WebSocket:  handlers.NewWebSocketHandler(hub, logger),
	}
	authenticator := middleware.NewAuthenticator(cfg.JWTSecretKey)

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, h, authenticator, metricsService, cfg.CORSOrigins)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
