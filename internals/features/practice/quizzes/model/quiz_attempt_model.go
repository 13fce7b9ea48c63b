package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "nguvan_backend/internals/features/users/user/model"
)

type QuizAttemptStatus string

const (
	QuizAttemptInProgress QuizAttemptStatus = "in_progress"
	QuizAttemptCompleted  QuizAttemptStatus = "completed"
)

func (s QuizAttemptStatus) Valid() bool {
	return s == QuizAttemptInProgress || s == QuizAttemptCompleted
}

func (s QuizAttemptStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid quiz attempt status: %q", string(s))
	}
	return string(s), nil
}

func (s *QuizAttemptStatus) Scan(v any) error {
	switch x := v.(type) {
	case string:
		*s = QuizAttemptStatus(x)
	case []byte:
		*s = QuizAttemptStatus(x)
	case nil:
		*s = ""
	default:
		return fmt.Errorf("cannot scan %T into QuizAttemptStatus", v)
	}
	return nil
}

/* =========================================================
   ATTEMPT
   in_progress : completed_at NULL, score/total NULL
   completed   : completed_at, score, total_points terisi
========================================================= */

type QuizAttemptModel struct {
	QuizAttemptID          uuid.UUID         `gorm:"column:quiz_attempt_id;type:uuid;primaryKey" json:"quiz_attempt_id"`
	QuizAttemptQuizID      uuid.UUID         `gorm:"column:quiz_attempt_quiz_id;type:uuid;not null;index:idx_quiz_attempt_quiz_user,priority:1" json:"quiz_attempt_quiz_id"`
	QuizAttemptUserID      uuid.UUID         `gorm:"column:quiz_attempt_user_id;type:uuid;not null;index:idx_quiz_attempt_quiz_user,priority:2" json:"quiz_attempt_user_id"`
	QuizAttemptStatus      QuizAttemptStatus `gorm:"column:quiz_attempt_status;type:varchar(16);not null;index" json:"quiz_attempt_status"`
	QuizAttemptStartedAt   time.Time         `gorm:"column:quiz_attempt_started_at;not null" json:"quiz_attempt_started_at"`
	QuizAttemptCompletedAt *time.Time        `gorm:"column:quiz_attempt_completed_at" json:"quiz_attempt_completed_at,omitempty"`
	QuizAttemptScore       *float64          `gorm:"column:quiz_attempt_score;type:numeric(8,2)" json:"quiz_attempt_score,omitempty"`
	QuizAttemptTotalPoints *float64          `gorm:"column:quiz_attempt_total_points;type:numeric(8,2)" json:"quiz_attempt_total_points,omitempty"`

	QuizAttemptCreatedAt time.Time `gorm:"column:quiz_attempt_created_at;autoCreateTime" json:"quiz_attempt_created_at"`
	QuizAttemptUpdatedAt time.Time `gorm:"column:quiz_attempt_updated_at;autoUpdateTime" json:"quiz_attempt_updated_at"`

	Quiz    *QuizModel               `gorm:"foreignKey:QuizAttemptQuizID;references:QuizID" json:"quiz,omitempty"`
	User    *userModel.UserModel     `gorm:"foreignKey:QuizAttemptUserID;references:UserID" json:"user,omitempty"`
	Answers []QuizAttemptAnswerModel `gorm:"foreignKey:QuizAttemptAnswerAttemptID;references:QuizAttemptID" json:"answers,omitempty"`
}

func (QuizAttemptModel) TableName() string { return "quiz_attempts" }

func (m *QuizAttemptModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizAttemptID == uuid.Nil {
		m.QuizAttemptID = uuid.New()
	}
	if m.QuizAttemptStatus == "" {
		m.QuizAttemptStatus = QuizAttemptInProgress
	}
	return nil
}

func (m *QuizAttemptModel) IsCompleted() bool {
	return m.QuizAttemptStatus == QuizAttemptCompleted
}
