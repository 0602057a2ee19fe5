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

	"github.com/Dosada05/tournament-draws/config"
	"github.com/Dosada05/tournament-draws/db"
	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/handlers"
	"github.com/Dosada05/tournament-draws/notify"
	"github.com/Dosada05/tournament-draws/repositories"
	api "github.com/Dosada05/tournament-draws/routes"
	"github.com/Dosada05/tournament-draws/services"
	"github.com/Dosada05/tournament-draws/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

const redisStreamMaxLen = 10000

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageDriver),
		slog.Bool("devMode", cfg.DevMode),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	drawRepo, closeRepo, err := openDrawRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open draw storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.Error("failed to close draw storage", slog.Any("error", err))
		} else {
			logger.Info("draw storage closed")
		}
	}()

	wsHub := notify.NewHub(logger)
	notifiers := notify.Fanout{wsHub, notify.LogNotifier{Logger: logger}}
	if cfg.RedisURL != "" {
		redisClient, err := notify.ConnectRedis(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer redisClient.Close()
		notifiers = append(notifiers, notify.NewRedisStreamNotifier(redisClient, cfg.RedisStream, redisStreamMaxLen))
		logger.Info("redis notification stream enabled")
	}

	ec := engine.New(
		engine.WithDevMode(cfg.DevMode),
		engine.WithLogger(logger),
		engine.WithNotifier(notifiers),
	)

	var archiver services.DrawArchiver
	if cfg.R2Configured() {
		uploader, err := storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
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
		archiver = storage.NewDrawArchiver(uploader, "")
		logger.Info("Cloudflare R2 uploader initialized")
	}

	var operator *services.Operator
	if cfg.OperatorUsername != "" {
		operator = &services.Operator{
			Username:     cfg.OperatorUsername,
			Role:         cfg.OperatorRole,
			PasswordHash: cfg.OperatorPasswordHash,
		}
	} else {
		logger.Warn("no operator configured, draw mutations are unavailable")
	}

	locks := services.NewDrawLocks()
	authService := services.NewAuthService(operator)
	formatService := services.NewFormatService()
	drawService := services.NewDrawService(drawRepo, ec, logger, services.DrawServiceConfig{
		DefaultMatchUpFormat: cfg.DefaultMatchUpFormat,
		Archiver:             archiver,
		Locks:                locks,
	})
	scoreService := services.NewScoreService(drawRepo, ec, logger, services.ScoreServiceConfig{
		DefaultMatchUpFormat: cfg.DefaultMatchUpFormat,
		Locks:                locks,
	})
	logger.Info("services initialized")

	if archiver != nil && cfg.SnapshotInterval > 0 {
		go runSnapshotScheduler(ctx, drawService, cfg.SnapshotInterval, logger)
	}

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:      handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Draw:      handlers.NewDrawHandler(drawService),
		Score:     handlers.NewScoreHandler(scoreService),
		Format:    handlers.NewFormatHandler(formatService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, drawService),
	}, api.Options{
		JWTSecret:      cfg.JWTSecretKey,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	})
	logger.Info("routes configured")

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

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
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

func openDrawRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.DrawRepository, func() error, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx, dbConn); err != nil {
			dbConn.Close()
			return nil, nil, err
		}
		logger.Info("database connection established")
		return repositories.NewPostgresDrawRepository(dbConn), dbConn.Close, nil
	case config.StorageBolt:
		repo, closeFn, err := repositories.NewBoltDrawRepository(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("bolt store opened", slog.String("path", cfg.BoltPath))
		return repo, closeFn, nil
	default:
		return repositories.NewMemoryDrawRepository(), func() error { return nil }, nil
	}
}

// runSnapshotScheduler archives every stored draw on each tick until ctx is done.
func runSnapshotScheduler(ctx context.Context, ds services.DrawService, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	logger.Info("snapshot scheduler started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := ds.ArchiveAll(ctx)
			if err != nil {
				logger.Error("scheduler: snapshot run failed", slog.Int("archived", n), slog.Any("error", err))
				continue
			}
			logger.Info("scheduler: draws archived", slog.Int("archived", n))
		}
	}
}
