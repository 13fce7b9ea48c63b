package lessons

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/lessons/lessons/model"
	"nguvan_backend/internals/helpers/logger"
)

type LessonSeed struct {
	LessonID         uuid.UUID  `json:"lesson_id"`
	LessonCourseID   *uuid.UUID `json:"lesson_course_id"`
	LessonTitle      string     `json:"lesson_title"`
	LessonGradeLevel *string    `json:"lesson_grade_level"`
}

// SeedLessonsFromJSON inserts lessons that are not there yet (matched by id).
func SeedLessonsFromJSON(db *gorm.DB, l *logger.Logger, filePath string) error {
	l.Info("reading seed file", "path", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var data []LessonSeed
	if err := sonic.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	for _, item := range data {
		var n int64
		if err := db.Model(&model.LessonModel{}).Where("lesson_id = ?", item.LessonID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			l.Debug("lesson exists, skipping", "lesson_id", item.LessonID)
			continue
		}

		record := model.LessonModel{
			LessonID:         item.LessonID,
			LessonCourseID:   item.LessonCourseID,
			LessonTitle:      item.LessonTitle,
			LessonGradeLevel: item.LessonGradeLevel,
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("insert lesson %q: %w", item.LessonTitle, err)
		}
		l.Info("lesson seeded", "lesson_id", record.LessonID, "title", record.LessonTitle)
	}
	return nil
}
