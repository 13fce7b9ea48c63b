package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"nguvan_backend/internals/configs"
	database "nguvan_backend/internals/databases"
	quizService "nguvan_backend/internals/features/practice/quizzes/service"
	helper "nguvan_backend/internals/helpers"
	"nguvan_backend/internals/helpers/logger"
	middlewares "nguvan_backend/internals/middlewares"
	routes "nguvan_backend/internals/route"
	"nguvan_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	l, err := logger.New(configs.AppEnv)
	if err != nil {
		panic(err)
	}
	defer l.Sync()

	if configs.JWTSecret == "" {
		l.Fatal("JWT_SECRET is required")
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler(l),
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, l)

	// 🔌 DB connect + pool + warm-up
	if err := database.ConnectDB(l); err != nil {
		l.Fatal("database connect failed", "error", err)
	}
	database.TunePool(l)
	if configs.DBAutoMigrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			l.Fatal("migration failed", "error", err)
		}
		l.Info("schema migrated")
	}
	database.WarmUpQueries(l)

	// 🌱 data contoh (dev)
	if configs.DBSeed {
		if err := seeds.RunAllSeeds(database.DB, l, configs.SeedDir); err != nil {
			l.Fatal("seeding failed", "error", err)
		}
	}

	// ⏱ sweeper attempt kedaluwarsa (opsional)
	var sweeper *quizService.AttemptSweeper
	if spec := configs.AttemptSweepCron; spec != "" {
		attempts := quizService.NewQuizAttemptService(database.DB, l)
		sweeper = quizService.NewAttemptSweeper(attempts, configs.AttemptSweepGrace, l)
		if err := sweeper.Start(spec); err != nil {
			l.Fatal("attempt sweeper schedule invalid", "spec", spec, "error", err)
		}
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, l)

	go func() {
		l.Info("listening", "port", configs.Port, "env", configs.AppEnv)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			l.Fatal("server error", "error", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	l.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sweeper != nil {
		sweeper.Stop()
	}
	database.Close()
}
