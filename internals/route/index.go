// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nguvan_backend/internals/configs"
	"nguvan_backend/internals/helpers/logger"
	authMiddleware "nguvan_backend/internals/middlewares/auth"
	routeDetails "nguvan_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, l *logger.Logger) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== API =====================
	// GET katalog publik; tulis & attempt lewat JWT (per route)
	api := app.Group("/api")
	auth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	l.Info("mounting practice routes")
	routeDetails.PracticeRoutes(api, db, l, auth)
}
