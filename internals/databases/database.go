package database

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nguvan_backend/internals/configs"
	"nguvan_backend/internals/helpers/logger"
)

var DB *gorm.DB

// ConnectDB opens the configured database (postgres by default, sqlite for local dev).
func ConnectDB(l *logger.Logger) error {
	cfg := &gorm.Config{
		Logger:         configs.NewGormLogger(l),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch configs.DBDriver {
	case "sqlite":
		l.Info("connecting to sqlite", "path", configs.SQLitePath)
		db, err = gorm.Open(sqlite.Open(configs.SQLitePath), cfg)
	default:
		l.Info("connecting to postgres", "host", os.Getenv("DB_HOST"), "db", os.Getenv("DB_NAME"))
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  postgresDSN(),
			PreferSimpleProtocol: true, // PgBouncer transaction pooling
		}), cfg)
	}
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	DB = db
	l.Info("database connected", "driver", configs.DBDriver)
	return nil
}

func postgresDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=nguvan&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		os.Getenv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "disable"),
	)
}

func TunePool(l *logger.Logger) {
	sqlDB, err := DB.DB()
	if err != nil {
		l.Warn("pool tune failed", "error", err)
		return
	}
	if configs.DBDriver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries(l *logger.Logger) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			l.Warn("warm-up ping failed", "error", err)
		}
	}()
}

func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
