package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"nguvan_backend/internals/helpers/logger"
)

var (
	AppEnv           string
	Port             string
	JWTSecret        string
	CorsAllowOrigins string

	DBDriver      string
	SQLitePath    string
	DBAutoMigrate bool
	DBSeed        bool
	SeedDir       string

	AttemptSweepCron  string
	AttemptSweepGrace time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	} else {
		log.Println(".env file loaded")
	}

	AppEnv = GetEnv("APP_ENV", "development")
	Port = GetEnv("PORT", "3001")
	JWTSecret = GetEnv("JWT_SECRET")
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")

	DBDriver = strings.ToLower(GetEnv("DB_DRIVER", "postgres"))
	SQLitePath = GetEnv("SQLITE_PATH", "nguvan.db")
	DBAutoMigrate = GetEnvBool("DB_AUTOMIGRATE", true)
	DBSeed = GetEnvBool("DB_SEED", false)
	SeedDir = GetEnv("SEED_DIR", "internals/seeds/data")

	AttemptSweepCron = GetEnv("ATTEMPT_SWEEP_CRON")
	AttemptSweepGrace = time.Duration(GetEnvInt("ATTEMPT_SWEEP_GRACE_SECONDS", 60)) * time.Second

	if JWTSecret == "" {
		log.Println("JWT_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func GetEnvBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return b
}

// =======================
// GORM LOGGER (zap)
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
	Log           *logger.Logger
}

func NewGormLogger(l *logger.Logger) gormLogger.Interface {
	level := gormLogger.Warn
	if AppEnv == "development" {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
		Log:           l,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.Log.SugaredLogger.Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.Log.SugaredLogger.Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.Log.SugaredLogger.Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		l.Log.Error("sql error", "file", file, "error", err, "elapsed", elapsed, "rows", rows, "sql", sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.Log.Warn("slow sql", "file", file, "elapsed", elapsed, "rows", rows, "sql", sql)
	case l.LogLevel >= gormLogger.Info:
		l.Log.Debug("sql", "file", file, "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}
