package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizAnswerGradeStatus string

const (
	QuizAnswerUngraded QuizAnswerGradeStatus = "ungraded"
	QuizAnswerGraded   QuizAnswerGradeStatus = "graded"
)

func (s QuizAnswerGradeStatus) Value() (driver.Value, error) {
	if s != QuizAnswerUngraded && s != QuizAnswerGraded {
		return nil, fmt.Errorf("invalid answer grade status: %q", string(s))
	}
	return string(s), nil
}

func (s *QuizAnswerGradeStatus) Scan(v any) error {
	switch x := v.(type) {
	case string:
		*s = QuizAnswerGradeStatus(x)
	case []byte:
		*s = QuizAnswerGradeStatus(x)
	case nil:
		*s = ""
	default:
		return fmt.Errorf("cannot scan %T into QuizAnswerGradeStatus", v)
	}
	return nil
}

/* =========================================================
   ANSWER
   1 attempt × 1 question = 1 row (submit ulang menimpa)
   is_correct NULL sampai dinilai
========================================================= */

type QuizAttemptAnswerModel struct {
	QuizAttemptAnswerID               uuid.UUID             `gorm:"column:quiz_attempt_answer_id;type:uuid;primaryKey" json:"quiz_attempt_answer_id"`
	QuizAttemptAnswerAttemptID        uuid.UUID             `gorm:"column:quiz_attempt_answer_attempt_id;type:uuid;not null;uniqueIndex:uq_quiz_attempt_answer,priority:1" json:"quiz_attempt_answer_attempt_id"`
	QuizAttemptAnswerQuestionID       uuid.UUID             `gorm:"column:quiz_attempt_answer_question_id;type:uuid;not null;uniqueIndex:uq_quiz_attempt_answer,priority:2" json:"quiz_attempt_answer_question_id"`
	QuizAttemptAnswerSelectedOptionID *uuid.UUID            `gorm:"column:quiz_attempt_answer_selected_option_id;type:uuid" json:"quiz_attempt_answer_selected_option_id,omitempty"`
	QuizAttemptAnswerText             *string               `gorm:"column:quiz_attempt_answer_text;type:text" json:"quiz_attempt_answer_text,omitempty"`
	QuizAttemptAnswerIsCorrect        *bool                 `gorm:"column:quiz_attempt_answer_is_correct" json:"quiz_attempt_answer_is_correct,omitempty"`
	QuizAttemptAnswerPointsEarned     float64               `gorm:"column:quiz_attempt_answer_points_earned;type:numeric(6,2);not null" json:"quiz_attempt_answer_points_earned"`
	QuizAttemptAnswerGradeStatus      QuizAnswerGradeStatus `gorm:"column:quiz_attempt_answer_grade_status;type:varchar(10);not null" json:"quiz_attempt_answer_grade_status"`
	QuizAttemptAnswerGradedAt         *time.Time            `gorm:"column:quiz_attempt_answer_graded_at" json:"quiz_attempt_answer_graded_at,omitempty"`
	QuizAttemptAnswerFeedback         *string               `gorm:"column:quiz_attempt_answer_feedback;type:text" json:"quiz_attempt_answer_feedback,omitempty"`
	QuizAttemptAnswerAnsweredAt       time.Time             `gorm:"column:quiz_attempt_answer_answered_at;not null" json:"quiz_attempt_answer_answered_at"`

	Question       *QuizQuestionModel `gorm:"foreignKey:QuizAttemptAnswerQuestionID;references:QuizQuestionID" json:"question,omitempty"`
	SelectedOption *QuizOptionModel   `gorm:"foreignKey:QuizAttemptAnswerSelectedOptionID;references:QuizOptionID" json:"selected_option,omitempty"`
}

func (QuizAttemptAnswerModel) TableName() string { return "quiz_attempt_answers" }

func (m *QuizAttemptAnswerModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizAttemptAnswerID == uuid.Nil {
		m.QuizAttemptAnswerID = uuid.New()
	}
	if m.QuizAttemptAnswerGradeStatus == "" {
		m.QuizAttemptAnswerGradeStatus = QuizAnswerUngraded
	}
	return nil
}

// Counts reports whether the answer contributes to the attempt score.
func (m *QuizAttemptAnswerModel) Counts() bool {
	return m.QuizAttemptAnswerIsCorrect != nil && *m.QuizAttemptAnswerIsCorrect
}
