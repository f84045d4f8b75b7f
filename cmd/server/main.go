package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"careerinn/internal/app/di"
	authadapters "careerinn/internal/feature/auth/adapters"
	directoryadapters "careerinn/internal/feature/directory/adapters"
	"careerinn/internal/platform/config"
	platformdb "careerinn/internal/platform/db"
	"careerinn/internal/platform/logging"
	platformredis "careerinn/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// db
	dbCfg := platformdb.LoadConfigFromEnv()
	dbCfg.URL = cfg.DatabaseURL
	db, err := platformdb.Open(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := platformdb.Migrate(db); err != nil {
		return err
	}
	if err := directoryadapters.Seed(ctx, db); err != nil {
		return fmt.Errorf("failed to seed content: %w", err)
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisEnabled() {
		if tmp, err := platformredis.NewRedisClient(ctx, cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword); err != nil {
			slog.Warn("Redis unavailable; storing sessions in the database", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}
	if rdb == nil {
		n, err := authadapters.NewSessionGorm(db, cfg.SessionTTL).DeleteExpired(ctx)
		if err != nil {
			slog.Warn("failed to purge expired sessions", "error", err)
		} else if n > 0 {
			slog.Info("purged expired sessions", "count", n)
		}
	}

	router, err := di.NewApp(ctx, cfg, db, rdb)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	// SECRET_KEY check (development reminder)
	if cfg.SecretKey == config.DevSecretKey {
		slog.Warn("SECRET_KEY is not set. Set a strong secret in production.")
	}

	slog.Info("server starting", "port", cfg.Port)
	return router.Run(":" + cfg.Port)
}
