package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonModel "nguvan_backend/internals/features/lessons/lessons/model"
)

// Practice types the frontend filters on.
const (
	EssayPracticeWriting = "viet"
	EssayPracticeReading = "doc_hieu"
)

const (
	DefaultEssayWordCountMin     = 200
	DefaultEssayWordCountMax     = 1000
	DefaultEssayTimeLimitMinutes = 60
)

type EssayExerciseModel struct {
	EssayExerciseID               uuid.UUID `gorm:"column:essay_exercise_id;type:uuid;primaryKey" json:"essay_exercise_id"`
	EssayExerciseLessonID         uuid.UUID `gorm:"column:essay_exercise_lesson_id;type:uuid;not null;index" json:"essay_exercise_lesson_id"`
	EssayExerciseTitle            string    `gorm:"column:essay_exercise_title;type:varchar(180);not null" json:"essay_exercise_title"`
	EssayExercisePrompt           string    `gorm:"column:essay_exercise_prompt;type:text;not null" json:"essay_exercise_prompt"`
	EssayExercisePracticeType     *string   `gorm:"column:essay_exercise_practice_type;type:varchar(16);index" json:"essay_exercise_practice_type,omitempty"`
	EssayExerciseTopic            *string   `gorm:"column:essay_exercise_topic;type:varchar(120)" json:"essay_exercise_topic,omitempty"`
	EssayExerciseGradeLevel       *string   `gorm:"column:essay_exercise_grade_level;type:varchar(8);index" json:"essay_exercise_grade_level,omitempty"`
	EssayExerciseWordCountMin     int       `gorm:"column:essay_exercise_word_count_min;not null" json:"essay_exercise_word_count_min"`
	EssayExerciseWordCountMax     int       `gorm:"column:essay_exercise_word_count_max;not null" json:"essay_exercise_word_count_max"`
	EssayExerciseTimeLimitMinutes int       `gorm:"column:essay_exercise_time_limit_minutes;not null" json:"essay_exercise_time_limit_minutes"`
	EssayExerciseIsPublished      bool      `gorm:"column:essay_exercise_is_published;not null" json:"essay_exercise_is_published"`

	EssayExerciseCreatedAt time.Time      `gorm:"column:essay_exercise_created_at;autoCreateTime;index" json:"essay_exercise_created_at"`
	EssayExerciseUpdatedAt time.Time      `gorm:"column:essay_exercise_updated_at;autoUpdateTime" json:"essay_exercise_updated_at"`
	EssayExerciseDeletedAt gorm.DeletedAt `gorm:"column:essay_exercise_deleted_at;index" json:"essay_exercise_deleted_at,omitempty"`

	Lesson *lessonModel.LessonModel `gorm:"foreignKey:EssayExerciseLessonID;references:LessonID" json:"lesson,omitempty"`
}

func (EssayExerciseModel) TableName() string { return "essay_exercises" }

func (m *EssayExerciseModel) BeforeCreate(_ *gorm.DB) error {
	if m.EssayExerciseID == uuid.Nil {
		m.EssayExerciseID = uuid.New()
	}
	return nil
}
