package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/practice/essay_exercises/controller"
	"nguvan_backend/internals/features/practice/essay_exercises/service"
	"nguvan_backend/internals/helpers/logger"
	"nguvan_backend/internals/middlewares"
)

// EssayExerciseRoutes mounts /api/essay-exercises. Submissions paths go before /:id.
func EssayExerciseRoutes(api fiber.Router, db *gorm.DB, l *logger.Logger, auth fiber.Handler) {
	ctrl := controller.NewEssayExerciseController(service.NewEssayExerciseService(db, l), l)

	essays := api.Group("/essay-exercises")

	subs := essays.Group("/submissions", auth)
	subs.Post("/", middlewares.SubmitRateLimiter(), ctrl.Submit)
	subs.Get("/", ctrl.ListByUser)
	subs.Patch("/:id/grade", ctrl.Grade)

	essays.Get("/", ctrl.List)
	essays.Post("/", auth, ctrl.Create)
	essays.Get("/:id", ctrl.Get)
	essays.Get("/:id/submissions", auth, ctrl.ListByExercise)
}
