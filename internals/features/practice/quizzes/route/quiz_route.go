package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/practice/quizzes/controller"
	"nguvan_backend/internals/features/practice/quizzes/service"
	"nguvan_backend/internals/helpers/logger"
	"nguvan_backend/internals/middlewares"
)

/*
Catatan:
- Base: /api/quizzes
- GET list/detail publik; selain itu lewat JWT (auth).
- Path statis (/questions, /options, /attempts/...) didaftarkan sebelum /:id.
*/

func QuizRoutes(api fiber.Router, db *gorm.DB, l *logger.Logger, auth fiber.Handler) {
	quizCtrl := controller.NewQuizController(service.NewQuizService(db, l), l)
	attemptCtrl := controller.NewQuizAttemptController(service.NewQuizAttemptService(db, l), l)

	quizzes := api.Group("/quizzes")

	// ============================
	// CATALOG (tulis)
	// ============================
	quizzes.Post("/questions", auth, quizCtrl.CreateQuestion)
	quizzes.Post("/options", auth, quizCtrl.CreateOption)

	// ============================
	// ATTEMPTS
	// ============================
	attempts := quizzes.Group("/attempts", auth)
	attempts.Get("/mine", attemptCtrl.ListMine)
	attempts.Patch("/answers/:id", attemptCtrl.GradeAnswer)
	attempts.Get("/:attemptId", attemptCtrl.Get)
	attempts.Post("/:attemptId/answers", middlewares.SubmitRateLimiter(), attemptCtrl.SubmitAnswer)
	attempts.Post("/:attemptId/auto-grade", attemptCtrl.AutoGrade)
	attempts.Post("/:attemptId/complete", attemptCtrl.Complete)

	// ============================
	// QUIZ
	// ============================
	quizzes.Get("/", quizCtrl.List)
	quizzes.Post("/", auth, quizCtrl.Create)
	quizzes.Get("/:id", quizCtrl.Get)
	quizzes.Patch("/:id", auth, quizCtrl.Patch)
	quizzes.Delete("/:id", auth, quizCtrl.Delete)
	quizzes.Post("/:id/start", auth, attemptCtrl.Start)
	quizzes.Get("/:id/attempts", auth, attemptCtrl.ListByQuiz)
}
