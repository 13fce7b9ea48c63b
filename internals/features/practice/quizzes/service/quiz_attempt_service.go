package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/practice/quizzes/dto"
	"nguvan_backend/internals/features/practice/quizzes/model"
	"nguvan_backend/internals/helpers/apperr"
	"nguvan_backend/internals/helpers/logger"
)

const (
	CodeAttemptCompleted   = "ATTEMPT_COMPLETED"
	CodeMaxAttemptsReached = "MAX_ATTEMPTS_REACHED"
)

/* =========================================================
   SERVICE: attempt engine
   in_progress → completed
   - start     : buat attempt (cek quiz + batas attempt)
   - answer    : simpan/timpa jawaban (belum dinilai)
   - grade     : nilai manual 1 jawaban
   - autograde : nilai otomatis multiple_choice
   - complete  : hitung score & total_points
========================================================= */

type QuizAttemptService struct {
	DB  *gorm.DB
	Log *logger.Logger
	Now func() time.Time
}

func NewQuizAttemptService(db *gorm.DB, l *logger.Logger) *QuizAttemptService {
	if l == nil {
		l = logger.Nop()
	}
	return &QuizAttemptService{DB: db, Log: l, Now: time.Now}
}

func (s *QuizAttemptService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func loadAttempt(tx *gorm.DB, id uuid.UUID) (*model.QuizAttemptModel, error) {
	var a model.QuizAttemptModel
	if err := tx.Where("quiz_attempt_id = ?", id).Take(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("attempt not found")
		}
		return nil, err
	}
	return &a, nil
}

/* =========================================================
   START
========================================================= */

func (s *QuizAttemptService) StartAttempt(ctx context.Context, quizID, userID uuid.UUID) (*model.QuizAttemptModel, error) {
	if userID == uuid.Nil {
		return nil, apperr.Validation("userId", "userId is required")
	}

	var attempt *model.QuizAttemptModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var quiz model.QuizModel
		if err := tx.Where("quiz_id = ?", quizID).Take(&quiz).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("quiz not found")
			}
			return err
		}

		if limit := quiz.AttemptCap(); limit > 0 {
			var used int64
			if err := tx.Model(&model.QuizAttemptModel{}).
				Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ?", quizID, userID).
				Count(&used).Error; err != nil {
				return err
			}
			if used >= int64(limit) {
				return apperr.Conflict(CodeMaxAttemptsReached, "maximum number of attempts reached for this quiz")
			}
		}

		attempt = &model.QuizAttemptModel{
			QuizAttemptQuizID:    quizID,
			QuizAttemptUserID:    userID,
			QuizAttemptStatus:    model.QuizAttemptInProgress,
			QuizAttemptStartedAt: s.now(),
		}
		return tx.Create(attempt).Error
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("attempt started", "attempt_id", attempt.QuizAttemptID, "quiz_id", quizID, "user_id", userID)
	return attempt, nil
}

/* =========================================================
   SUBMIT ANSWER
   1 jawaban per soal; submit ulang menimpa & reset penilaian
========================================================= */

func (s *QuizAttemptService) SubmitAnswer(ctx context.Context, attemptID uuid.UUID, req *dto.SubmitAnswerRequest) (*model.QuizAttemptAnswerModel, error) {
	var text *string
	if req.AnswerText != nil {
		if t := strings.TrimSpace(*req.AnswerText); t != "" {
			text = req.AnswerText
		}
	}
	optionID := req.SelectedOptionID
	if optionID != nil && *optionID == uuid.Nil {
		optionID = nil
	}
	if optionID == nil && text == nil {
		return nil, apperr.Validation("selectedOptionId", "selectedOptionId or answerText is required")
	}

	var answerID uuid.UUID
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt, err := loadAttempt(tx, attemptID)
		if err != nil {
			return err
		}
		if attempt.IsCompleted() {
			return apperr.Conflict(CodeAttemptCompleted, "attempt is already completed")
		}

		var question model.QuizQuestionModel
		if err := tx.Where("quiz_question_id = ? AND quiz_question_quiz_id = ?", req.QuestionID, attempt.QuizAttemptQuizID).
			Take(&question).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Validation("questionId", "question does not belong to this quiz")
			}
			return err
		}

		if optionID != nil {
			var n int64
			if err := tx.Model(&model.QuizOptionModel{}).
				Where("quiz_option_id = ? AND quiz_option_question_id = ?", *optionID, question.QuizQuestionID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return apperr.Validation("selectedOptionId", "option does not belong to this question")
			}
		}

		now := s.now()
		var existing model.QuizAttemptAnswerModel
		err = tx.Where("quiz_attempt_answer_attempt_id = ? AND quiz_attempt_answer_question_id = ?", attemptID, question.QuizQuestionID).
			Take(&existing).Error
		switch {
		case err == nil:
			answerID = existing.QuizAttemptAnswerID
			return tx.Model(&model.QuizAttemptAnswerModel{}).
				Where("quiz_attempt_answer_id = ?", answerID).
				Updates(map[string]any{
					"quiz_attempt_answer_selected_option_id": optionID,
					"quiz_attempt_answer_text":               text,
					"quiz_attempt_answer_is_correct":         nil,
					"quiz_attempt_answer_points_earned":      0,
					"quiz_attempt_answer_grade_status":       model.QuizAnswerUngraded,
					"quiz_attempt_answer_graded_at":          nil,
					"quiz_attempt_answer_feedback":           nil,
					"quiz_attempt_answer_answered_at":        now,
				}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			ans := &model.QuizAttemptAnswerModel{
				QuizAttemptAnswerAttemptID:        attemptID,
				QuizAttemptAnswerQuestionID:       question.QuizQuestionID,
				QuizAttemptAnswerSelectedOptionID: optionID,
				QuizAttemptAnswerText:             text,
				QuizAttemptAnswerGradeStatus:      model.QuizAnswerUngraded,
				QuizAttemptAnswerAnsweredAt:       now,
			}
			if err := tx.Create(ans).Error; err != nil {
				return err
			}
			answerID = ans.QuizAttemptAnswerID
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return s.findAnswer(ctx, answerID)
}

func (s *QuizAttemptService) findAnswer(ctx context.Context, id uuid.UUID) (*model.QuizAttemptAnswerModel, error) {
	var ans model.QuizAttemptAnswerModel
	if err := s.DB.WithContext(ctx).
		Preload("Question").
		Preload("SelectedOption").
		Where("quiz_attempt_answer_id = ?", id).
		Take(&ans).Error; err != nil {
		return nil, err
	}
	return &ans, nil
}

/* =========================================================
   GRADE (manual)
========================================================= */

func (s *QuizAttemptService) GradeAnswer(ctx context.Context, answerID uuid.UUID, req *dto.GradeAnswerRequest) (*model.QuizAttemptAnswerModel, error) {
	if req.PointsEarned == nil || req.IsCorrect == nil {
		return nil, apperr.Validation("pointsEarned", "pointsEarned and isCorrect are required")
	}
	points := *req.PointsEarned

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ans model.QuizAttemptAnswerModel
		if err := tx.Preload("Question").Where("quiz_attempt_answer_id = ?", answerID).Take(&ans).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("answer not found")
			}
			return err
		}
		if ans.Question == nil {
			return apperr.NotFound("question not found")
		}
		if points < 0 || points > ans.Question.QuizQuestionPoints {
			return apperr.Validation("pointsEarned", fmt.Sprintf("pointsEarned must be between 0 and %g", ans.Question.QuizQuestionPoints))
		}

		var feedback *string
		if req.Feedback != nil {
			if f := strings.TrimSpace(*req.Feedback); f != "" {
				feedback = &f
			}
		}
		if err := tx.Model(&model.QuizAttemptAnswerModel{}).
			Where("quiz_attempt_answer_id = ?", answerID).
			Updates(map[string]any{
				"quiz_attempt_answer_is_correct":    *req.IsCorrect,
				"quiz_attempt_answer_points_earned": points,
				"quiz_attempt_answer_grade_status":  model.QuizAnswerGraded,
				"quiz_attempt_answer_graded_at":     s.now(),
				"quiz_attempt_answer_feedback":      feedback,
			}).Error; err != nil {
			return err
		}

		attempt, err := loadAttempt(tx, ans.QuizAttemptAnswerAttemptID)
		if err != nil {
			return err
		}
		if attempt.IsCompleted() {
			return s.rescore(tx, attempt, attempt.QuizAttemptCompletedAt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.findAnswer(ctx, answerID)
}

/* =========================================================
   AUTO GRADE (multiple_choice)
========================================================= */

// AutoGradeAttempt grades every ungraded multiple_choice answer that has a
// selected option. Graded answers and essay answers are left as they are.
func (s *QuizAttemptService) AutoGradeAttempt(ctx context.Context, attemptID uuid.UUID) (*model.QuizAttemptModel, error) {
	graded := 0
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt, err := loadAttempt(tx, attemptID)
		if err != nil {
			return err
		}

		var answers []model.QuizAttemptAnswerModel
		if err := tx.Preload("Question").
			Preload("SelectedOption").
			Where("quiz_attempt_answer_attempt_id = ?", attemptID).
			Where("quiz_attempt_answer_grade_status = ?", model.QuizAnswerUngraded).
			Where("quiz_attempt_answer_selected_option_id IS NOT NULL").
			Find(&answers).Error; err != nil {
			return err
		}

		now := s.now()
		for i := range answers {
			a := &answers[i]
			if a.Question == nil || !a.Question.IsMultipleChoice() || a.SelectedOption == nil {
				continue
			}
			ok, pts := GradeChoice(a.Question, a.SelectedOption)
			if err := tx.Model(&model.QuizAttemptAnswerModel{}).
				Where("quiz_attempt_answer_id = ?", a.QuizAttemptAnswerID).
				Updates(map[string]any{
					"quiz_attempt_answer_is_correct":    ok,
					"quiz_attempt_answer_points_earned": pts,
					"quiz_attempt_answer_grade_status":  model.QuizAnswerGraded,
					"quiz_attempt_answer_graded_at":     now,
				}).Error; err != nil {
				return err
			}
			graded++
		}

		if attempt.IsCompleted() && graded > 0 {
			return s.rescore(tx, attempt, attempt.QuizAttemptCompletedAt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("attempt auto-graded", "attempt_id", attemptID, "graded", graded)
	return s.GetAttempt(ctx, attemptID)
}

/* =========================================================
   COMPLETE
========================================================= */

// CompleteAttempt scores the attempt and marks it completed. Calling it again
// recomputes the score from the current answers.
func (s *QuizAttemptService) CompleteAttempt(ctx context.Context, attemptID uuid.UUID) (*model.QuizAttemptModel, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt, err := loadAttempt(tx, attemptID)
		if err != nil {
			return err
		}
		now := s.now()
		return s.rescore(tx, attempt, &now)
	})
	if err != nil {
		return nil, err
	}
	out, err := s.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if out != nil {
		s.Log.Info("attempt completed",
			"attempt_id", attemptID,
			"score", deref(out.QuizAttemptScore),
			"total_points", deref(out.QuizAttemptTotalPoints),
		)
	}
	return out, nil
}

// ExpireAttempt completes the attempt only while it is still in progress.
// It returns false when the attempt was completed by someone else first.
func (s *QuizAttemptService) ExpireAttempt(ctx context.Context, attemptID uuid.UUID) (bool, error) {
	expired := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt, err := loadAttempt(tx, attemptID)
		if err != nil {
			return err
		}
		if attempt.IsCompleted() {
			return nil
		}
		now := s.now()
		n, err := s.writeScore(tx.Where("quiz_attempt_status = ?", model.QuizAttemptInProgress), attempt, &now)
		expired = n > 0
		return err
	})
	if err != nil {
		return false, err
	}
	if expired {
		s.Log.Info("attempt expired", "attempt_id", attemptID)
	}
	return expired, nil
}

// rescore writes score/total_points/completed_at from the answers currently stored.
func (s *QuizAttemptService) rescore(tx *gorm.DB, attempt *model.QuizAttemptModel, completedAt *time.Time) error {
	_, err := s.writeScore(tx, attempt, completedAt)
	return err
}

// writeScore applies any conditions already on upd to the attempt update and
// returns the number of rows it changed.
func (s *QuizAttemptService) writeScore(upd *gorm.DB, attempt *model.QuizAttemptModel, completedAt *time.Time) (int64, error) {
	tx := upd.Session(&gorm.Session{NewDB: true})
	var answers []model.QuizAttemptAnswerModel
	if err := tx.Where("quiz_attempt_answer_attempt_id = ?", attempt.QuizAttemptID).Find(&answers).Error; err != nil {
		return 0, err
	}
	var questions []model.QuizQuestionModel
	if err := tx.Where("quiz_question_quiz_id = ?", attempt.QuizAttemptQuizID).Find(&questions).Error; err != nil {
		return 0, err
	}

	r := ComputeScore(answers, questions)
	if completedAt == nil {
		now := s.now()
		completedAt = &now
	}
	res := upd.Model(&model.QuizAttemptModel{}).
		Where("quiz_attempt_id = ?", attempt.QuizAttemptID).
		Updates(map[string]any{
			"quiz_attempt_status":       model.QuizAttemptCompleted,
			"quiz_attempt_completed_at": *completedAt,
			"quiz_attempt_score":        r.Score,
			"quiz_attempt_total_points": r.TotalPoints,
		})
	return res.RowsAffected, res.Error
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

/* =========================================================
   READ
========================================================= */

// GetAttempt returns nil, nil when the attempt does not exist.
func (s *QuizAttemptService) GetAttempt(ctx context.Context, id uuid.UUID) (*model.QuizAttemptModel, error) {
	var a model.QuizAttemptModel
	err := s.DB.WithContext(ctx).
		Preload("User").
		Preload("Quiz").
		Preload("Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("quiz_attempt_answer_answered_at ASC")
		}).
		Preload("Answers.Question").
		Preload("Answers.SelectedOption").
		Where("quiz_attempt_id = ?", id).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAttempts returns the attempts of a quiz, newest first; status is optional.
func (s *QuizAttemptService) ListAttempts(ctx context.Context, quizID uuid.UUID, status string) ([]model.QuizAttemptModel, error) {
	q := s.DB.WithContext(ctx).
		Preload("User").
		Where("quiz_attempt_quiz_id = ?", quizID)
	if st := model.QuizAttemptStatus(strings.TrimSpace(status)); st != "" {
		if !st.Valid() {
			return nil, apperr.Validation("status", "status must be one of: in_progress completed")
		}
		q = q.Where("quiz_attempt_status = ?", st)
	}
	var rows []model.QuizAttemptModel
	if err := q.Order("quiz_attempt_started_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListUserAttempts returns a student's attempts, optionally narrowed to one quiz.
func (s *QuizAttemptService) ListUserAttempts(ctx context.Context, userID uuid.UUID, quizID *uuid.UUID) ([]model.QuizAttemptModel, error) {
	q := s.DB.WithContext(ctx).
		Preload("Quiz").
		Where("quiz_attempt_user_id = ?", userID)
	if quizID != nil && *quizID != uuid.Nil {
		q = q.Where("quiz_attempt_quiz_id = ?", *quizID)
	}
	var rows []model.QuizAttemptModel
	if err := q.Order("quiz_attempt_started_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
