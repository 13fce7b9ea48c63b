package essays

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/practice/essay_exercises/dto"
	"nguvan_backend/internals/features/practice/essay_exercises/model"
	"nguvan_backend/internals/features/practice/essay_exercises/service"
	"nguvan_backend/internals/helpers/logger"
)

type EssayExerciseSeed struct {
	LessonID         uuid.UUID `json:"lesson_id"`
	Title            string    `json:"title"`
	Prompt           string    `json:"prompt"`
	PracticeType     *string   `json:"practice_type"`
	Topic            *string   `json:"topic"`
	GradeLevel       *string   `json:"grade_level"`
	WordCountMin     *int      `json:"word_count_min"`
	WordCountMax     *int      `json:"word_count_max"`
	TimeLimitMinutes *int      `json:"time_limit_minutes"`
	IsPublished      bool      `json:"is_published"`
}

func SeedEssayExercisesFromJSON(db *gorm.DB, l *logger.Logger, filePath string) error {
	l.Info("reading seed file", "path", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var data []EssayExerciseSeed
	if err := sonic.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	svc := service.NewEssayExerciseService(db, l)
	for _, item := range data {
		var n int64
		if err := db.Model(&model.EssayExerciseModel{}).
			Where("essay_exercise_lesson_id = ? AND essay_exercise_title = ?", item.LessonID, item.Title).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			l.Debug("essay exercise exists, skipping", "title", item.Title)
			continue
		}

		published := item.IsPublished
		if _, err := svc.CreateExercise(context.Background(), &dto.CreateEssayExerciseRequest{
			LessonID:         item.LessonID,
			Title:            item.Title,
			Prompt:           item.Prompt,
			PracticeType:     item.PracticeType,
			Topic:            item.Topic,
			GradeLevel:       item.GradeLevel,
			WordCountMin:     item.WordCountMin,
			WordCountMax:     item.WordCountMax,
			TimeLimitMinutes: item.TimeLimitMinutes,
			IsPublished:      &published,
		}); err != nil {
			return fmt.Errorf("insert essay exercise %q: %w", item.Title, err)
		}
	}
	return nil
}
