package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"nguvan_backend/internals/helpers/logger"
	accessLogger "nguvan_backend/internals/middlewares/logger"
)

// SetupMiddlewares: urutan penting (recover paling luar)
func SetupMiddlewares(app *fiber.App, l *logger.Logger) {
	app.Use(RecoveryMiddleware(l))
	app.Use(RequestContext(5 * time.Second))
	app.Use(accessLogger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
