package seeds

import (
	"path/filepath"

	"gorm.io/gorm"

	"nguvan_backend/internals/helpers/logger"
	"nguvan_backend/internals/seeds/essays"
	"nguvan_backend/internals/seeds/lessons"
	"nguvan_backend/internals/seeds/quizzes"
	"nguvan_backend/internals/seeds/users"
)

// RunAllSeeds loads the JSON files under dir. Lessons go first, quizzes and
// essay exercises point at them.
func RunAllSeeds(db *gorm.DB, l *logger.Logger, dir string) error {
	l = l.With("component", "seeds")

	//* Reference tables
	if err := lessons.SeedLessonsFromJSON(db, l, filepath.Join(dir, "data_lessons.json")); err != nil {
		return err
	}
	if err := users.SeedUsersFromJSON(db, l, filepath.Join(dir, "data_users.json")); err != nil {
		return err
	}

	//* Practice
	if err := quizzes.SeedQuizzesFromJSON(db, l, filepath.Join(dir, "data_quizzes.json")); err != nil {
		return err
	}
	if err := essays.SeedEssayExercisesFromJSON(db, l, filepath.Join(dir, "data_essay_exercises.json")); err != nil {
		return err
	}

	l.Info("seeding done")
	return nil
}
