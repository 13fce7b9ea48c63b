package middlewares

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"nguvan_backend/internals/helpers/logger"
)

// RecoveryMiddleware menangkap panic; stack trace dicatat via zap, response 500 dari ErrorHandler
func RecoveryMiddleware(l *logger.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			l.Error("panic recovered",
				"method", c.Method(),
				"path", c.Path(),
				"panic", e,
				"stack", string(debug.Stack()),
			)
		},
	})
}
