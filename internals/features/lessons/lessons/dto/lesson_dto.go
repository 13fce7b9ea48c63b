package dto

import (
	"github.com/google/uuid"

	"nguvan_backend/internals/features/lessons/lessons/model"
)

// LessonResponse is the lesson context embedded in quiz and essay payloads.
type LessonResponse struct {
	ID         uuid.UUID  `json:"id"`
	CourseID   *uuid.UUID `json:"courseId,omitempty"`
	Title      string     `json:"title"`
	GradeLevel *string    `json:"gradeLevel,omitempty"`
}

func FromLessonModel(m *model.LessonModel) *LessonResponse {
	if m == nil || m.LessonID == uuid.Nil {
		return nil
	}
	return &LessonResponse{
		ID:         m.LessonID,
		CourseID:   m.LessonCourseID,
		Title:      m.LessonTitle,
		GradeLevel: m.LessonGradeLevel,
	}
}
