package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/practice/essay_exercises/dto"
	"nguvan_backend/internals/features/practice/essay_exercises/model"
	"nguvan_backend/internals/helpers/apperr"
	"nguvan_backend/internals/helpers/logger"
)

// Grades use the 0 to 10 school scale.
const (
	MinEssayGrade = 0.0
	MaxEssayGrade = 10.0
)

type EssayExerciseService struct {
	DB  *gorm.DB
	Log *logger.Logger
	Now func() time.Time
}

func NewEssayExerciseService(db *gorm.DB, l *logger.Logger) *EssayExerciseService {
	if l == nil {
		l = logger.Nop()
	}
	return &EssayExerciseService{DB: db, Log: l, Now: time.Now}
}

func (s *EssayExerciseService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

type ExerciseFilter struct {
	PracticeType string
	GradeLevel   string
}

/* =========================================================
   EXERCISE
========================================================= */

func (s *EssayExerciseService) CreateExercise(ctx context.Context, req *dto.CreateEssayExerciseRequest) (*model.EssayExerciseModel, error) {
	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	s.Log.Info("essay exercise created", "exercise_id", m.EssayExerciseID, "lesson_id", m.EssayExerciseLessonID)
	return m, nil
}

// FindAll returns every exercise (published or not), newest first.
func (s *EssayExerciseService) FindAll(ctx context.Context, f ExerciseFilter) ([]model.EssayExerciseModel, error) {
	q := s.DB.WithContext(ctx).Preload("Lesson")
	if pt := strings.TrimSpace(f.PracticeType); pt != "" {
		q = q.Where("essay_exercise_practice_type = ?", pt)
	}
	if gl := strings.TrimSpace(f.GradeLevel); gl != "" {
		q = q.Where("essay_exercise_grade_level = ?", gl)
	}
	var rows []model.EssayExerciseModel
	if err := q.Order("essay_exercise_created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByLesson returns the published exercises of a lesson, oldest first.
func (s *EssayExerciseService) FindByLesson(ctx context.Context, lessonID uuid.UUID) ([]model.EssayExerciseModel, error) {
	var rows []model.EssayExerciseModel
	err := s.DB.WithContext(ctx).
		Preload("Lesson").
		Where("essay_exercise_lesson_id = ? AND essay_exercise_is_published = ?", lessonID, true).
		Order("essay_exercise_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns nil, nil when the exercise does not exist.
func (s *EssayExerciseService) FindByID(ctx context.Context, id uuid.UUID) (*model.EssayExerciseModel, error) {
	var m model.EssayExerciseModel
	err := s.DB.WithContext(ctx).Preload("Lesson").Where("essay_exercise_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

/* =========================================================
   SUBMISSION
   submit ulang = row baru; batas kata tidak divalidasi
========================================================= */

func (s *EssayExerciseService) CreateSubmission(ctx context.Context, userID uuid.UUID, req *dto.CreateSubmissionRequest) (*model.EssaySubmissionModel, error) {
	if userID == uuid.Nil {
		return nil, apperr.Validation("userId", "userId is required")
	}
	m := req.ToModel(userID)
	m.EssaySubmissionSubmittedAt = s.now()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.EssayExerciseModel{}).Where("essay_exercise_id = ?", req.ExerciseID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound("essay exercise not found")
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("essay submitted", "submission_id", m.EssaySubmissionID, "exercise_id", m.EssaySubmissionExerciseID, "words", m.EssaySubmissionWordCount)
	return m, nil
}

// GradeSubmission does not write anything when the submission is missing.
func (s *EssayExerciseService) GradeSubmission(ctx context.Context, id uuid.UUID, req *dto.GradeSubmissionRequest) (*model.EssaySubmissionModel, error) {
	if req.Grade == nil {
		return nil, apperr.Validation("grade", "grade is required")
	}
	if g := *req.Grade; g < MinEssayGrade || g > MaxEssayGrade {
		return nil, apperr.Validation("grade", "grade must be between 0 and 10")
	}
	feedback := ""
	if req.Feedback != nil {
		feedback = strings.TrimSpace(*req.Feedback)
	}

	var out model.EssaySubmissionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("essay_submission_id = ?", id).Take(&out).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("submission not found")
			}
			return err
		}

		updates := map[string]any{
			"essay_submission_grade":     *req.Grade,
			"essay_submission_feedback":  feedback,
			"essay_submission_graded_at": s.now(),
		}
		if req.Scores != nil {
			updates["essay_submission_scores"] = datatypes.JSONMap(req.Scores)
		}
		if err := tx.Model(&model.EssaySubmissionModel{}).Where("essay_submission_id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Preload("Exercise").Where("essay_submission_id = ?", id).Take(&out).Error
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("essay graded", "submission_id", id, "grade", *req.Grade)
	return &out, nil
}

// FindByUser returns a student's submissions, newest first.
func (s *EssayExerciseService) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.EssaySubmissionModel, error) {
	var rows []model.EssaySubmissionModel
	err := s.DB.WithContext(ctx).
		Preload("Exercise").
		Preload("Exercise.Lesson").
		Where("essay_submission_user_id = ?", userID).
		Order("essay_submission_submitted_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByExercise returns the submissions of one exercise, newest first.
func (s *EssayExerciseService) FindByExercise(ctx context.Context, exerciseID uuid.UUID) ([]model.EssaySubmissionModel, error) {
	var rows []model.EssaySubmissionModel
	err := s.DB.WithContext(ctx).
		Where("essay_submission_exercise_id = ?", exerciseID).
		Order("essay_submission_submitted_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
