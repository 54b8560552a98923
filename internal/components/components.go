package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/api"
	"github.com/gitsunil577/SafeHer-Backend/internal/config"
	"github.com/gitsunil577/SafeHer-Backend/internal/notify"
	"github.com/gitsunil577/SafeHer-Backend/internal/redis"
	"github.com/gitsunil577/SafeHer-Backend/internal/service"
	"github.com/gitsunil577/SafeHer-Backend/internal/storage/postgres"
	"github.com/gitsunil577/SafeHer-Backend/internal/workers"
	"github.com/gitsunil577/SafeHer-Backend/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Sweeper    *workers.Sweeper
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	publisher := redis.NewPublisher(redisClient)
	rosterCache := redis.NewRosterCache(redisClient)
	gateway := notify.NewGateway(logger, cfg.Gateway)

	matcher := service.NewVolunteerMatcher(storage.Volunteer, rosterCache, logger, cfg.Matcher)
	dispatcher := service.NewNotificationDispatcher(publisher, gateway, logger, cfg.Dispatch, cfg.Gateway.CountryCode)
	reputation := service.NewReputationEngine(storage.Volunteer, logger)
	alertSvc := service.NewAlertService(storage.Alert, storage.Volunteer, storage.Contact, matcher, dispatcher, reputation, logger)

	srv := service.NewService(alertSvc)
	httpServer := api.NewServer(cfg, logger, srv)
	sweeper := workers.NewSweeper(storage.Alert, logger, cfg.Sweeper)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Sweeper:    sweeper,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
