// Command seed migrates the database, loads reference content and purges expired sessions
// without starting the web server.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	authadapters "careerinn/internal/feature/auth/adapters"
	directoryadapters "careerinn/internal/feature/directory/adapters"
	"careerinn/internal/platform/config"
	platformdb "careerinn/internal/platform/db"
	"careerinn/internal/platform/logging"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	dbCfg := platformdb.LoadConfigFromEnv()
	dbCfg.URL = cfg.DatabaseURL
	db, err := platformdb.Open(dbCfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := platformdb.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := directoryadapters.Seed(ctx, db); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	n, err := authadapters.NewSessionGorm(db, cfg.SessionTTL).DeleteExpired(ctx)
	if err != nil {
		slog.Error("session purge failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed ok", "expired_sessions_deleted", n)
}
