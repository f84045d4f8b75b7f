// Package db opens the relational store and creates the schema.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authadapters "careerinn/internal/feature/auth/adapters"
	authentity "careerinn/internal/feature/auth/domain/entity"
	directoryentity "careerinn/internal/feature/directory/domain/entity"
	entitlemententity "careerinn/internal/feature/entitlement/domain/entity"
	profileentity "careerinn/internal/feature/profile/domain/entity"
)

const (
	// DefaultURL is the embedded single-file store used when DATABASE_URL is unset.
	DefaultURL = "sqlite://careerinn.db"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Config holds database connection settings.
type Config struct {
	URL   string // sqlite://path, postgres://..., or a bare sqlite file path
	Debug bool   // log every SQL statement
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv reads DATABASE_URL and DB_DEBUG.
func LoadConfigFromEnv() Config {
	url := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if url == "" {
		url = DefaultURL
	}
	return Config{
		URL:   url,
		Debug: os.Getenv("DB_DEBUG") == "true",
	}
}

// BuildDSN resolves the driver name and the driver-specific DSN for cfg.URL.
func BuildDSN(cfg Config) (driver, dsn string) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = DefaultURL
	}
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url
	case strings.HasPrefix(url, "sqlite:///"):
		return DriverSQLite, strings.TrimPrefix(url, "sqlite:///")
	case strings.HasPrefix(url, "sqlite://"):
		return DriverSQLite, strings.TrimPrefix(url, "sqlite://")
	default:
		return DriverSQLite, url
	}
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// Open connects to the store described by cfg.
// SQLite is limited to one open connection so writers never see "database is locked".
func Open(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if cfg.Debug {
		gcfg.Logger = logger.Default.LogMode(logger.Info)
	}

	driver, dsn := BuildDSN(cfg)
	var open Opener
	switch driver {
	case DriverPostgres:
		open = func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gcfg) }
	default:
		open = func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gcfg) }
	}

	db, err := ConnectWithRetry(dsn, 60*time.Second, open)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	slog.Info("database connected", "driver", driver)
	return db, nil
}

// Migrate creates or updates every table the application uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&authadapters.SessionModel{},
		&entitlemententity.Subscription{},
		&entitlemententity.AiUsage{},
		&profileentity.Profile{},
		&directoryentity.College{},
		&directoryentity.Course{},
		&directoryentity.Job{},
		&directoryentity.Mentor{},
		&directoryentity.PrevPaper{},
		&directoryentity.MockInterview{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
