package quizzes

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/practice/quizzes/dto"
	"nguvan_backend/internals/features/practice/quizzes/model"
	"nguvan_backend/internals/features/practice/quizzes/service"
	"nguvan_backend/internals/helpers/logger"
)

type OptionSeed struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionSeed struct {
	Text    string       `json:"text"`
	Type    string       `json:"type"`
	Points  *float64     `json:"points"`
	Options []OptionSeed `json:"options"`
}

type QuizSeed struct {
	LessonID         uuid.UUID      `json:"lesson_id"`
	Title            string         `json:"title"`
	Description      *string        `json:"description"`
	TimeLimitMinutes *int           `json:"time_limit_minutes"`
	MaxAttempts      *int           `json:"max_attempts"`
	GradeLevel       *string        `json:"grade_level"`
	IsPublished      bool           `json:"is_published"`
	Questions        []QuestionSeed `json:"questions"`
}

// SeedQuizzesFromJSON creates quizzes through QuizService so the catalog rules
// (one correct option, unique order) hold for seed data too. A quiz whose title
// already exists on the lesson is skipped.
func SeedQuizzesFromJSON(db *gorm.DB, l *logger.Logger, filePath string) error {
	l.Info("reading seed file", "path", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var data []QuizSeed
	if err := sonic.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	ctx := context.Background()

	for _, item := range data {
		var n int64
		if err := db.Model(&model.QuizModel{}).
			Where("quiz_lesson_id = ? AND quiz_title = ?", item.LessonID, item.Title).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			l.Debug("quiz exists, skipping", "title", item.Title)
			continue
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return seedQuiz(ctx, service.NewQuizService(tx, l), item)
		}); err != nil {
			return err
		}
	}
	return nil
}

// seedQuiz writes one quiz with its questions and options. The caller runs it
// in a transaction so a failed question leaves no partial quiz behind.
func seedQuiz(ctx context.Context, svc *service.QuizService, item QuizSeed) error {
	published := item.IsPublished
	quiz, err := svc.CreateQuiz(ctx, &dto.CreateQuizRequest{
		LessonID:         item.LessonID,
		Title:            item.Title,
		Description:      item.Description,
		TimeLimitMinutes: item.TimeLimitMinutes,
		MaxAttempts:      item.MaxAttempts,
		IsPublished:      &published,
		GradeLevel:       item.GradeLevel,
	})
	if err != nil {
		return fmt.Errorf("insert quiz %q: %w", item.Title, err)
	}

	for qi, qs := range item.Questions {
		question, err := svc.CreateQuestion(ctx, &dto.CreateQuestionRequest{
			QuizID:       quiz.QuizID,
			QuestionText: qs.Text,
			QuestionType: qs.Type,
			OrderIndex:   qi,
			Points:       qs.Points,
		})
		if err != nil {
			return fmt.Errorf("insert question %d of %q: %w", qi, item.Title, err)
		}
		for oi, opt := range qs.Options {
			if _, err := svc.CreateOption(ctx, &dto.CreateOptionRequest{
				QuestionID: question.QuizQuestionID,
				OptionText: opt.Text,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: oi,
			}); err != nil {
				return fmt.Errorf("insert option %d of question %d: %w", oi, qi, err)
			}
		}
	}
	svc.Log.Info("quiz seeded", "quiz_id", quiz.QuizID, "title", quiz.QuizTitle, "questions", len(item.Questions))
	return nil
}
