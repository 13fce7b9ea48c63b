package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/practice/quizzes/dto"
	"nguvan_backend/internals/features/practice/quizzes/model"
	"nguvan_backend/internals/helpers/apperr"
	"nguvan_backend/internals/helpers/logger"
)

/* =========================================================
   SERVICE: katalog quiz (quiz, question, option)
========================================================= */

type QuizService struct {
	DB  *gorm.DB
	Log *logger.Logger
}

func NewQuizService(db *gorm.DB, l *logger.Logger) *QuizService {
	if l == nil {
		l = logger.Nop()
	}
	return &QuizService{DB: db, Log: l}
}

type QuizFilter struct {
	GradeLevel string
}

// withQuizTree: lesson + questions (order_index ASC) + options (order_index ASC)
func withQuizTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Lesson").
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("quiz_question_order_index ASC")
		}).
		Preload("Questions.Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("quiz_option_order_index ASC")
		})
}

/* =========================================================
   QUIZ
========================================================= */

func (s *QuizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*model.QuizModel, error) {
	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	s.Log.Info("quiz created", "quiz_id", m.QuizID, "lesson_id", m.QuizLessonID)
	return m, nil
}

// FindAll returns every quiz (published or not), newest first.
func (s *QuizService) FindAll(ctx context.Context, f QuizFilter) ([]model.QuizModel, error) {
	q := withQuizTree(s.DB.WithContext(ctx))
	if gl := strings.TrimSpace(f.GradeLevel); gl != "" {
		q = q.Where("quiz_grade_level = ?", gl)
	}
	var rows []model.QuizModel
	if err := q.Order("quiz_created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByLesson returns the published quizzes of a lesson, oldest first.
func (s *QuizService) FindByLesson(ctx context.Context, lessonID uuid.UUID) ([]model.QuizModel, error) {
	var rows []model.QuizModel
	err := withQuizTree(s.DB.WithContext(ctx)).
		Where("quiz_lesson_id = ? AND quiz_is_published = ?", lessonID, true).
		Order("quiz_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns nil, nil when the quiz does not exist.
func (s *QuizService) FindByID(ctx context.Context, id uuid.UUID) (*model.QuizModel, error) {
	var m model.QuizModel
	err := withQuizTree(s.DB.WithContext(ctx)).
		Where("quiz_id = ?", id).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id uuid.UUID, req *dto.UpdateQuizRequest) (*model.QuizModel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur model.QuizModel
		if err := tx.Select("quiz_id").Where("quiz_id = ?", id).Take(&cur).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("quiz not found")
			}
			return err
		}
		updates := req.ToUpdates()
		if updates == nil {
			return nil
		}
		return tx.Model(&model.QuizModel{}).Where("quiz_id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

// DeleteQuiz soft-deletes the quiz; attempts keep their history.
func (s *QuizService) DeleteQuiz(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("quiz_id = ?", id).Delete(&model.QuizModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("quiz not found")
	}
	s.Log.Info("quiz deleted", "quiz_id", id)
	return nil
}

/* =========================================================
   QUESTION
========================================================= */

func (s *QuizService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*model.QuizQuestionModel, error) {
	m := req.ToModel()
	if !m.QuizQuestionType.Valid() {
		return nil, apperr.Validation("questionType", "questionType must be one of: multiple_choice essay")
	}
	if m.QuizQuestionPoints < 0 {
		return nil, apperr.Validation("points", "points must be >= 0")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.QuizModel{}).Where("quiz_id = ?", m.QuizQuestionQuizID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound("quiz not found")
		}

		if err := tx.Model(&model.QuizQuestionModel{}).
			Where("quiz_question_quiz_id = ? AND quiz_question_order_index = ?", m.QuizQuestionQuizID, m.QuizQuestionOrderIndex).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperr.Validation("orderIndex", "orderIndex already used in this quiz")
		}
		return tx.Create(m).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.Validation("orderIndex", "orderIndex already used in this quiz")
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

/* =========================================================
   OPTION
========================================================= */

func (s *QuizService) CreateOption(ctx context.Context, req *dto.CreateOptionRequest) (*model.QuizOptionModel, error) {
	m := req.ToModel()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q model.QuizQuestionModel
		if err := tx.Where("quiz_question_id = ?", m.QuizOptionQuestionID).Take(&q).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("question not found")
			}
			return err
		}
		if !q.IsMultipleChoice() {
			return apperr.Validation("questionId", "options can only be added to multiple_choice questions")
		}

		var n int64
		if err := tx.Model(&model.QuizOptionModel{}).
			Where("quiz_option_question_id = ? AND quiz_option_order_index = ?", q.QuizQuestionID, m.QuizOptionOrderIndex).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperr.Validation("orderIndex", "orderIndex already used in this question")
		}

		if m.QuizOptionIsCorrect {
			if err := tx.Model(&model.QuizOptionModel{}).
				Where("quiz_option_question_id = ? AND quiz_option_is_correct = ?", q.QuizQuestionID, true).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return apperr.Validation("isCorrect", "question already has a correct option")
			}
		}
		return tx.Create(m).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.Validation("orderIndex", "orderIndex already used in this question")
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
