package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	lessonDTO "nguvan_backend/internals/features/lessons/lessons/dto"
	"nguvan_backend/internals/features/practice/quizzes/model"
	"nguvan_backend/internals/helpers/apperr"
)

/* ==============================
   Helpers
============================== */

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

/*
==============================

	Helper: Tri-state updater
	- Absent  : tidak diupdate
	- null    : set kolom ke NULL
	- value   : set kolom ke value

==============================
*/
type UpdateField[T any] struct {
	set   bool
	null  bool
	value T
}

func (f *UpdateField[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

func (f UpdateField[T]) ShouldUpdate() bool { return f.set }
func (f UpdateField[T]) IsNull() bool       { return f.set && f.null }
func (f UpdateField[T]) Val() T             { return f.value }

// Set builds a present field, used by tests and internal callers.
func Set[T any](v T) UpdateField[T] { return UpdateField[T]{set: true, value: v} }

func Null[T any]() UpdateField[T] { return UpdateField[T]{set: true, null: true} }

/* ==============================
   CREATE (POST /quizzes)
============================== */

type CreateQuizRequest struct {
	LessonID         uuid.UUID `json:"lessonId" validate:"required"`
	Title            string    `json:"title" validate:"required,max=180"`
	Description      *string   `json:"description" validate:"omitempty"`
	TimeLimitMinutes *int      `json:"timeLimitMinutes"`
	MaxAttempts      *int      `json:"maxAttempts"`
	IsPublished      *bool     `json:"isPublished"`
	GradeLevel       *string   `json:"gradeLevel" validate:"omitempty,max=8"`
}

// ToModel: time limit / max attempts disimpan apa adanya (0 dan negatif = tanpa batas)
func (r *CreateQuizRequest) ToModel() *model.QuizModel {
	isPub := false
	if r.IsPublished != nil {
		isPub = *r.IsPublished
	}
	return &model.QuizModel{
		QuizLessonID:         r.LessonID,
		QuizTitle:            strings.TrimSpace(r.Title),
		QuizDescription:      trimPtr(r.Description),
		QuizTimeLimitMinutes: r.TimeLimitMinutes,
		QuizMaxAttempts:      r.MaxAttempts,
		QuizIsPublished:      isPub,
		QuizGradeLevel:       trimPtr(r.GradeLevel),
	}
}

/* ==============================
   PATCH (PATCH /quizzes/:id)
============================== */

type UpdateQuizRequest struct {
	Title            UpdateField[string] `json:"title"`
	Description      UpdateField[string] `json:"description"`
	TimeLimitMinutes UpdateField[int]    `json:"timeLimitMinutes"`
	MaxAttempts      UpdateField[int]    `json:"maxAttempts"`
	IsPublished      UpdateField[bool]   `json:"isPublished"`
	GradeLevel       UpdateField[string] `json:"gradeLevel"`
}

func (r *UpdateQuizRequest) Validate() error {
	if r.Title.ShouldUpdate() {
		t := strings.TrimSpace(r.Title.Val())
		if r.Title.IsNull() || t == "" {
			return apperr.Validation("title", "title cannot be empty")
		}
		if len(t) > 180 {
			return apperr.Validation("title", "title must be at most 180 characters")
		}
	}
	if r.IsPublished.IsNull() {
		return apperr.Validation("isPublished", "isPublished cannot be null")
	}
	if r.GradeLevel.ShouldUpdate() && len(strings.TrimSpace(r.GradeLevel.Val())) > 8 {
		return apperr.Validation("gradeLevel", "gradeLevel must be at most 8 characters")
	}
	return nil
}

// ToUpdates returns column → value for gorm Updates; nil when nothing changes.
func (r *UpdateQuizRequest) ToUpdates() map[string]any {
	out := map[string]any{}

	if r.Title.ShouldUpdate() {
		out["quiz_title"] = strings.TrimSpace(r.Title.Val())
	}
	if r.Description.ShouldUpdate() {
		if r.Description.IsNull() {
			out["quiz_description"] = nil
		} else {
			out["quiz_description"] = nullableText(r.Description.Val())
		}
	}
	if r.TimeLimitMinutes.ShouldUpdate() {
		if r.TimeLimitMinutes.IsNull() {
			out["quiz_time_limit_minutes"] = nil
		} else {
			out["quiz_time_limit_minutes"] = r.TimeLimitMinutes.Val()
		}
	}
	if r.MaxAttempts.ShouldUpdate() {
		if r.MaxAttempts.IsNull() {
			out["quiz_max_attempts"] = nil
		} else {
			out["quiz_max_attempts"] = r.MaxAttempts.Val()
		}
	}
	if r.IsPublished.ShouldUpdate() {
		out["quiz_is_published"] = r.IsPublished.Val()
	}
	if r.GradeLevel.ShouldUpdate() {
		if r.GradeLevel.IsNull() {
			out["quiz_grade_level"] = nil
		} else {
			out["quiz_grade_level"] = nullableText(r.GradeLevel.Val())
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// nullableText: string kosong disimpan sebagai NULL
func nullableText(s string) any {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return nil
}

/* ==============================
   QUERY (GET /quizzes)
============================== */

type ListQuizQuery struct {
	LessonID   string `query:"lessonId"`
	GradeLevel string `query:"gradeLevel"`
}

/* ==============================
   RESPONSE
============================== */

type QuizResponse struct {
	ID               uuid.UUID                 `json:"id"`
	LessonID         uuid.UUID                 `json:"lessonId"`
	Title            string                    `json:"title"`
	Description      *string                   `json:"description,omitempty"`
	TimeLimitMinutes *int                      `json:"timeLimitMinutes,omitempty"`
	MaxAttempts      *int                      `json:"maxAttempts,omitempty"`
	IsPublished      bool                      `json:"isPublished"`
	GradeLevel       *string                   `json:"gradeLevel,omitempty"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
	Lesson           *lessonDTO.LessonResponse `json:"lesson,omitempty"`
	Questions        []QuestionResponse        `json:"questions"`
}

func FromQuizModel(m *model.QuizModel) QuizResponse {
	qs := make([]QuestionResponse, 0, len(m.Questions))
	for i := range m.Questions {
		qs = append(qs, FromQuestionModel(&m.Questions[i]))
	}
	return QuizResponse{
		ID:               m.QuizID,
		LessonID:         m.QuizLessonID,
		Title:            m.QuizTitle,
		Description:      m.QuizDescription,
		TimeLimitMinutes: m.QuizTimeLimitMinutes,
		MaxAttempts:      m.QuizMaxAttempts,
		IsPublished:      m.QuizIsPublished,
		GradeLevel:       m.QuizGradeLevel,
		CreatedAt:        m.QuizCreatedAt,
		UpdatedAt:        m.QuizUpdatedAt,
		Lesson:           lessonDTO.FromLessonModel(m.Lesson),
		Questions:        qs,
	}
}

func FromQuizModels(rows []model.QuizModel) []QuizResponse {
	out := make([]QuizResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromQuizModel(&rows[i]))
	}
	return out
}
