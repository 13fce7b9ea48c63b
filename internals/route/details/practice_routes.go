package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	essayRoute "nguvan_backend/internals/features/practice/essay_exercises/route"
	quizRoute "nguvan_backend/internals/features/practice/quizzes/route"
	"nguvan_backend/internals/helpers/logger"
)

// PracticeRoutes mounts quizzes + essay exercises under the /api group.
func PracticeRoutes(api fiber.Router, db *gorm.DB, l *logger.Logger, auth fiber.Handler) {
	quizRoute.QuizRoutes(api, db, l, auth)
	essayRoute.EssayExerciseRoutes(api, db, l, auth)
}
