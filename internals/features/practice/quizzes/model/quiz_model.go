package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonModel "nguvan_backend/internals/features/lessons/lessons/model"
)

/* =========================================================
   QUIZ
   1 lesson → N quiz, 1 quiz → N question (urut order_index)
========================================================= */

type QuizModel struct {
	QuizID               uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey" json:"quiz_id"`
	QuizLessonID         uuid.UUID `gorm:"column:quiz_lesson_id;type:uuid;not null;index:idx_quiz_lesson_published,priority:1" json:"quiz_lesson_id"`
	QuizTitle            string    `gorm:"column:quiz_title;type:varchar(180);not null" json:"quiz_title"`
	QuizDescription      *string   `gorm:"column:quiz_description;type:text" json:"quiz_description,omitempty"`
	QuizTimeLimitMinutes *int      `gorm:"column:quiz_time_limit_minutes" json:"quiz_time_limit_minutes,omitempty"`
	QuizMaxAttempts      *int      `gorm:"column:quiz_max_attempts" json:"quiz_max_attempts,omitempty"`
	QuizIsPublished      bool      `gorm:"column:quiz_is_published;not null;index:idx_quiz_lesson_published,priority:2" json:"quiz_is_published"`
	QuizGradeLevel       *string   `gorm:"column:quiz_grade_level;type:varchar(8);index" json:"quiz_grade_level,omitempty"`

	QuizCreatedAt time.Time      `gorm:"column:quiz_created_at;autoCreateTime;index" json:"quiz_created_at"`
	QuizUpdatedAt time.Time      `gorm:"column:quiz_updated_at;autoUpdateTime" json:"quiz_updated_at"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"quiz_deleted_at,omitempty"`

	Lesson    *lessonModel.LessonModel `gorm:"foreignKey:QuizLessonID;references:LessonID" json:"lesson,omitempty"`
	Questions []QuizQuestionModel      `gorm:"foreignKey:QuizQuestionQuizID;references:QuizID" json:"questions,omitempty"`
}

func (QuizModel) TableName() string { return "quizzes" }

func (m *QuizModel) BeforeCreate(_ *gorm.DB) error {
	if m.QuizID == uuid.Nil {
		m.QuizID = uuid.New()
	}
	return nil
}

// AttemptCap reports the max attempts per user; 0 means unlimited.
func (m *QuizModel) AttemptCap() int {
	if m.QuizMaxAttempts == nil || *m.QuizMaxAttempts <= 0 {
		return 0
	}
	return *m.QuizMaxAttempts
}

// TimeLimit reports the attempt time budget; 0 means untimed.
func (m *QuizModel) TimeLimit() time.Duration {
	if m.QuizTimeLimitMinutes == nil || *m.QuizTimeLimitMinutes <= 0 {
		return 0
	}
	return time.Duration(*m.QuizTimeLimitMinutes) * time.Minute
}
