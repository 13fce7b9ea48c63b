package dto

import (
	"strings"

	"github.com/google/uuid"

	"nguvan_backend/internals/features/practice/quizzes/model"
)

/* ==============================
   QUESTION (POST /quizzes/questions)
============================== */

type CreateQuestionRequest struct {
	QuizID       uuid.UUID `json:"quizId" validate:"required"`
	QuestionText string    `json:"questionText" validate:"required"`
	QuestionType string    `json:"questionType" validate:"required,oneof=multiple_choice essay"`
	OrderIndex   int       `json:"orderIndex" validate:"gte=0"`
	Points       *float64  `json:"points" validate:"omitempty,gte=0"`
}

// ToModel: points default 1
func (r *CreateQuestionRequest) ToModel() *model.QuizQuestionModel {
	points := 1.0
	if r.Points != nil {
		points = *r.Points
	}
	return &model.QuizQuestionModel{
		QuizQuestionQuizID:     r.QuizID,
		QuizQuestionText:       strings.TrimSpace(r.QuestionText),
		QuizQuestionType:       model.QuizQuestionType(r.QuestionType),
		QuizQuestionOrderIndex: r.OrderIndex,
		QuizQuestionPoints:     points,
	}
}

type QuestionResponse struct {
	ID           uuid.UUID        `json:"id"`
	QuizID       uuid.UUID        `json:"quizId"`
	QuestionText string           `json:"questionText"`
	QuestionType string           `json:"questionType"`
	OrderIndex   int              `json:"orderIndex"`
	Points       float64          `json:"points"`
	Options      []OptionResponse `json:"options"`
}

func FromQuestionModel(m *model.QuizQuestionModel) QuestionResponse {
	opts := make([]OptionResponse, 0, len(m.Options))
	for i := range m.Options {
		opts = append(opts, FromOptionModel(&m.Options[i]))
	}
	return QuestionResponse{
		ID:           m.QuizQuestionID,
		QuizID:       m.QuizQuestionQuizID,
		QuestionText: m.QuizQuestionText,
		QuestionType: string(m.QuizQuestionType),
		OrderIndex:   m.QuizQuestionOrderIndex,
		Points:       m.QuizQuestionPoints,
		Options:      opts,
	}
}

/* ==============================
   OPTION (POST /quizzes/options)
============================== */

type CreateOptionRequest struct {
	QuestionID uuid.UUID `json:"questionId" validate:"required"`
	OptionText string    `json:"optionText" validate:"required"`
	IsCorrect  bool      `json:"isCorrect"`
	OrderIndex int       `json:"orderIndex" validate:"gte=0"`
}

func (r *CreateOptionRequest) ToModel() *model.QuizOptionModel {
	return &model.QuizOptionModel{
		QuizOptionQuestionID: r.QuestionID,
		QuizOptionText:       strings.TrimSpace(r.OptionText),
		QuizOptionIsCorrect:  r.IsCorrect,
		QuizOptionOrderIndex: r.OrderIndex,
	}
}

type OptionResponse struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"questionId"`
	OptionText string    `json:"optionText"`
	IsCorrect  bool      `json:"isCorrect"`
	OrderIndex int       `json:"orderIndex"`
}

func FromOptionModel(m *model.QuizOptionModel) OptionResponse {
	return OptionResponse{
		ID:         m.QuizOptionID,
		QuestionID: m.QuizOptionQuestionID,
		OptionText: m.QuizOptionText,
		IsCorrect:  m.QuizOptionIsCorrect,
		OrderIndex: m.QuizOptionOrderIndex,
	}
}
