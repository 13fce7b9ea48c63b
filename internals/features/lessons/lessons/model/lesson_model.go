package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonModel mirrors the lessons table of the course catalog.
// Quizzes and essay exercises hang off a lesson; this package never writes it outside seeds/tests.
type LessonModel struct {
	LessonID         uuid.UUID  `gorm:"column:lesson_id;type:uuid;primaryKey" json:"id"`
	LessonCourseID   *uuid.UUID `gorm:"column:lesson_course_id;type:uuid;index" json:"courseId,omitempty"`
	LessonTitle      string     `gorm:"column:lesson_title;type:varchar(180);not null" json:"title"`
	LessonGradeLevel *string    `gorm:"column:lesson_grade_level;type:varchar(8)" json:"gradeLevel,omitempty"`

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;autoCreateTime" json:"createdAt"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonModel) BeforeCreate(_ *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	return nil
}
