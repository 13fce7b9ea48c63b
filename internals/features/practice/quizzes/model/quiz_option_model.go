package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizOptionModel is one choice of a multiple_choice question.
type QuizOptionModel struct {
	QuizOptionID         uuid.UUID `gorm:"column:quiz_option_id;type:uuid;primaryKey" json:"quiz_option_id"`
	QuizOptionQuestionID uuid.UUID `gorm:"column:quiz_option_question_id;type:uuid;not null;uniqueIndex:uq_quiz_option_order,priority:1" json:"quiz_option_question_id"`
	QuizOptionText       string    `gorm:"column:quiz_option_text;type:text;not null" json:"quiz_option_text"`
	QuizOptionIsCorrect  bool      `gorm:"column:quiz_option_is_correct;not null" json:"quiz_option_is_correct"`
	QuizOptionOrderIndex int       `gorm:"column:quiz_option_order_index;not null;uniqueIndex:uq_quiz_option_order,priority:2" json:"quiz_option_order_index"`

	QuizOptionCreatedAt time.Time `gorm:"column:quiz_option_created_at;autoCreateTime" json:"quiz_option_created_at"`
}

func (QuizOptionModel) TableName() string { return "quiz_options" }

func (m *QuizOptionModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizOptionID == uuid.Nil {
		m.QuizOptionID = uuid.New()
	}
	return nil
}
