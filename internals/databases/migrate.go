package database

import (
	"fmt"

	"gorm.io/gorm"

	lessonModel "nguvan_backend/internals/features/lessons/lessons/model"
	essayModel "nguvan_backend/internals/features/practice/essay_exercises/model"
	quizModel "nguvan_backend/internals/features/practice/quizzes/model"
	userModel "nguvan_backend/internals/features/users/user/model"
)

// Models lists every table owned or referenced by the service, parents first.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&lessonModel.LessonModel{},

		&quizModel.QuizModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizOptionModel{},
		&quizModel.QuizAttemptModel{},
		&quizModel.QuizAttemptAnswerModel{},

		&essayModel.EssayExerciseModel{},
		&essayModel.EssaySubmissionModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
