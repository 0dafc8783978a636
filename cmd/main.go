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

	"github.com/Dosada05/mahjong-club/clock"
	"github.com/Dosada05/mahjong-club/config"
	"github.com/Dosada05/mahjong-club/db"
	"github.com/Dosada05/mahjong-club/handlers"
	"github.com/Dosada05/mahjong-club/live"
	"github.com/Dosada05/mahjong-club/middleware"
	"github.com/Dosada05/mahjong-club/repositories"
	api "github.com/Dosada05/mahjong-club/routes"
	"github.com/Dosada05/mahjong-club/services"
	"github.com/Dosada05/mahjong-club/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

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

	// Инициализация хранилища аватаров (Cloudflare R2). Без него клуб
	// работает, просто загрузка аватаров отключена.
	var uploader storage.FileUploader
	if cfg.R2AccountID != "" {
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
		logger.Warn("avatar storage is not configured, uploads disabled")
	}

	// Инициализация WebSocket Hub
	wsHub := live.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	// Инициализация репозиториев
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	sessionRepo := repositories.NewPostgresSessionRepository(dbConn)
	roundRepo := repositories.NewPostgresRoundRepository(dbConn)
	membershipRepo := repositories.NewPostgresMembershipRepository(dbConn)
	logger.Info("Repositories initialized")

	// Инициализация сервисов
	playerService := services.NewPlayerService(playerRepo, uploader)
	sessionService := services.NewSessionService(sessionRepo)
	roundService := services.NewRoundService(roundRepo, sessionRepo, playerRepo, wsHub)
	membershipService := services.NewMembershipService(membershipRepo, playerRepo, sessionRepo, roundRepo, wsHub)
	dashboardService := services.NewDashboardService(playerRepo, sessionRepo, roundRepo, membershipRepo, &clock.DefaultClock{})
	logger.Info("Services initialized")

	// Инициализация обработчиков HTTP
	identity := middleware.NewIdentity(cfg.SessionSecretKey)
	playerHandler := handlers.NewPlayerHandler(playerService, identity)
	sessionHandler := handlers.NewSessionHandler(sessionService, membershipService)
	roundHandler := handlers.NewRoundHandler(roundService, membershipService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, identity)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, sessionService)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSAllowedOrigins,
		identity,
		playerHandler,
		sessionHandler,
		roundHandler,
		dashboardHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

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
		} else {
			logger.Info("server stopped gracefully")
		}
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
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
