package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	lessonDTO "nguvan_backend/internals/features/lessons/lessons/dto"
	"nguvan_backend/internals/features/practice/essay_exercises/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

/* ==============================
   CREATE (POST /essay-exercises)
============================== */

type CreateEssayExerciseRequest struct {
	LessonID         uuid.UUID `json:"lessonId" validate:"required"`
	Title            string    `json:"title" validate:"required,max=180"`
	Prompt           string    `json:"prompt" validate:"required"`
	PracticeType     *string   `json:"practiceType" validate:"omitempty,oneof=viet doc_hieu"`
	Topic            *string   `json:"topic" validate:"omitempty,max=120"`
	GradeLevel       *string   `json:"gradeLevel" validate:"omitempty,max=8"`
	WordCountMin     *int      `json:"wordCountMin" validate:"omitempty,gte=0"`
	WordCountMax     *int      `json:"wordCountMax" validate:"omitempty,gte=0"`
	TimeLimitMinutes *int      `json:"timeLimitMinutes" validate:"omitempty,gte=0"`
	IsPublished      *bool     `json:"isPublished"`
}

// ToModel: default 200 / 1000 kata, 60 menit, belum publish
func (r *CreateEssayExerciseRequest) ToModel() *model.EssayExerciseModel {
	isPub := false
	if r.IsPublished != nil {
		isPub = *r.IsPublished
	}
	return &model.EssayExerciseModel{
		EssayExerciseLessonID:         r.LessonID,
		EssayExerciseTitle:            strings.TrimSpace(r.Title),
		EssayExercisePrompt:           strings.TrimSpace(r.Prompt),
		EssayExercisePracticeType:     trimPtr(r.PracticeType),
		EssayExerciseTopic:            trimPtr(r.Topic),
		EssayExerciseGradeLevel:       trimPtr(r.GradeLevel),
		EssayExerciseWordCountMin:     intOr(r.WordCountMin, model.DefaultEssayWordCountMin),
		EssayExerciseWordCountMax:     intOr(r.WordCountMax, model.DefaultEssayWordCountMax),
		EssayExerciseTimeLimitMinutes: intOr(r.TimeLimitMinutes, model.DefaultEssayTimeLimitMinutes),
		EssayExerciseIsPublished:      isPub,
	}
}

type ListEssayExerciseQuery struct {
	LessonID     string `query:"lessonId"`
	PracticeType string `query:"practiceType" validate:"omitempty,oneof=viet doc_hieu"`
	GradeLevel   string `query:"gradeLevel"`
}

/* ==============================
   RESPONSE
============================== */

type EssayExerciseResponse struct {
	ID               uuid.UUID                 `json:"id"`
	LessonID         uuid.UUID                 `json:"lessonId"`
	Title            string                    `json:"title"`
	Prompt           string                    `json:"prompt"`
	PracticeType     *string                   `json:"practiceType,omitempty"`
	Topic            *string                   `json:"topic,omitempty"`
	GradeLevel       *string                   `json:"gradeLevel,omitempty"`
	WordCountMin     int                       `json:"wordCountMin"`
	WordCountMax     int                       `json:"wordCountMax"`
	TimeLimitMinutes int                       `json:"timeLimitMinutes"`
	IsPublished      bool                      `json:"isPublished"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
	Lesson           *lessonDTO.LessonResponse `json:"lesson,omitempty"`
}

func FromEssayExerciseModel(m *model.EssayExerciseModel) EssayExerciseResponse {
	return EssayExerciseResponse{
		ID:               m.EssayExerciseID,
		LessonID:         m.EssayExerciseLessonID,
		Title:            m.EssayExerciseTitle,
		Prompt:           m.EssayExercisePrompt,
		PracticeType:     m.EssayExercisePracticeType,
		Topic:            m.EssayExerciseTopic,
		GradeLevel:       m.EssayExerciseGradeLevel,
		WordCountMin:     m.EssayExerciseWordCountMin,
		WordCountMax:     m.EssayExerciseWordCountMax,
		TimeLimitMinutes: m.EssayExerciseTimeLimitMinutes,
		IsPublished:      m.EssayExerciseIsPublished,
		CreatedAt:        m.EssayExerciseCreatedAt,
		UpdatedAt:        m.EssayExerciseUpdatedAt,
		Lesson:           lessonDTO.FromLessonModel(m.Lesson),
	}
}

func FromEssayExerciseModels(rows []model.EssayExerciseModel) []EssayExerciseResponse {
	out := make([]EssayExerciseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromEssayExerciseModel(&rows[i]))
	}
	return out
}
