package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizQuestionType string

const (
	QuizQuestionTypeMultipleChoice QuizQuestionType = "multiple_choice"
	QuizQuestionTypeEssay          QuizQuestionType = "essay"
)

func (t QuizQuestionType) Valid() bool {
	return t == QuizQuestionTypeMultipleChoice || t == QuizQuestionTypeEssay
}

func (t QuizQuestionType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid quiz question type: %q", string(t))
	}
	return string(t), nil
}

func (t *QuizQuestionType) Scan(v any) error {
	switch x := v.(type) {
	case string:
		*t = QuizQuestionType(x)
	case []byte:
		*t = QuizQuestionType(x)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into QuizQuestionType", v)
	}
	return nil
}

/* =========================================================
   QUESTION
   order_index unik per quiz; points >= 0
========================================================= */

type QuizQuestionModel struct {
	QuizQuestionID         uuid.UUID        `gorm:"column:quiz_question_id;type:uuid;primaryKey" json:"quiz_question_id"`
	QuizQuestionQuizID     uuid.UUID        `gorm:"column:quiz_question_quiz_id;type:uuid;not null;uniqueIndex:uq_quiz_question_order,priority:1" json:"quiz_question_quiz_id"`
	QuizQuestionText       string           `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text"`
	QuizQuestionType       QuizQuestionType `gorm:"column:quiz_question_type;type:varchar(20);not null" json:"quiz_question_type"`
	QuizQuestionOrderIndex int              `gorm:"column:quiz_question_order_index;not null;uniqueIndex:uq_quiz_question_order,priority:2" json:"quiz_question_order_index"`
	QuizQuestionPoints     float64          `gorm:"column:quiz_question_points;type:numeric(6,2);not null" json:"quiz_question_points"`

	QuizQuestionCreatedAt time.Time `gorm:"column:quiz_question_created_at;autoCreateTime" json:"quiz_question_created_at"`
	QuizQuestionUpdatedAt time.Time `gorm:"column:quiz_question_updated_at;autoUpdateTime" json:"quiz_question_updated_at"`

	Options []QuizOptionModel `gorm:"foreignKey:QuizOptionQuestionID;references:QuizQuestionID" json:"options,omitempty"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

func (m *QuizQuestionModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizQuestionID == uuid.Nil {
		m.QuizQuestionID = uuid.New()
	}
	return nil
}

func (m *QuizQuestionModel) IsMultipleChoice() bool {
	return m.QuizQuestionType == QuizQuestionTypeMultipleChoice
}

func (m *QuizQuestionModel) IsEssay() bool { return m.QuizQuestionType == QuizQuestionTypeEssay }
