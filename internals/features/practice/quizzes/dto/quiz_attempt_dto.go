package dto

import (
	"time"

	"github.com/google/uuid"

	"nguvan_backend/internals/features/practice/quizzes/model"
	userDTO "nguvan_backend/internals/features/users/user/dto"
)

/* ==============================
   REQUESTS
============================== */

// StartAttemptRequest: userId kosong → pakai user dari token
type StartAttemptRequest struct {
	UserID *uuid.UUID `json:"userId"`
}

type SubmitAnswerRequest struct {
	QuestionID       uuid.UUID  `json:"questionId" validate:"required"`
	SelectedOptionID *uuid.UUID `json:"selectedOptionId"`
	AnswerText       *string    `json:"answerText"`
}

type GradeAnswerRequest struct {
	PointsEarned *float64 `json:"pointsEarned" validate:"required,gte=0"`
	IsCorrect    *bool    `json:"isCorrect" validate:"required"`
	Feedback     *string  `json:"feedback"`
}

type ListAttemptsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=in_progress completed"`
}

type MyAttemptsQuery struct {
	QuizID string `query:"quizId"`
}

/* ==============================
   RESPONSES
============================== */

type AttemptResponse struct {
	ID          uuid.UUID             `json:"id"`
	QuizID      uuid.UUID             `json:"quizId"`
	UserID      uuid.UUID             `json:"userId"`
	Status      string                `json:"status"`
	StartedAt   time.Time             `json:"startedAt"`
	CompletedAt *time.Time            `json:"completedAt,omitempty"`
	Score       *float64              `json:"score,omitempty"`
	TotalPoints *float64              `json:"totalPoints,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	User        *userDTO.UserResponse `json:"user,omitempty"`
	Quiz        *AttemptQuizBrief     `json:"quiz,omitempty"`
	Answers     []AnswerResponse      `json:"answers,omitempty"`
}

type AttemptQuizBrief struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	TimeLimitMinutes *int      `json:"timeLimitMinutes,omitempty"`
}

type AnswerResponse struct {
	ID               uuid.UUID         `json:"id"`
	AttemptID        uuid.UUID         `json:"attemptId"`
	QuestionID       uuid.UUID         `json:"questionId"`
	SelectedOptionID *uuid.UUID        `json:"selectedOptionId,omitempty"`
	AnswerText       *string           `json:"answerText,omitempty"`
	IsCorrect        *bool             `json:"isCorrect"`
	PointsEarned     float64           `json:"pointsEarned"`
	GradeStatus      string            `json:"gradeStatus"`
	GradedAt         *time.Time        `json:"gradedAt,omitempty"`
	Feedback         *string           `json:"feedback,omitempty"`
	AnsweredAt       time.Time         `json:"answeredAt"`
	Question         *QuestionResponse `json:"question,omitempty"`
	SelectedOption   *OptionResponse   `json:"selectedOption,omitempty"`
}

func FromAnswerModel(m *model.QuizAttemptAnswerModel) AnswerResponse {
	out := AnswerResponse{
		ID:               m.QuizAttemptAnswerID,
		AttemptID:        m.QuizAttemptAnswerAttemptID,
		QuestionID:       m.QuizAttemptAnswerQuestionID,
		SelectedOptionID: m.QuizAttemptAnswerSelectedOptionID,
		AnswerText:       m.QuizAttemptAnswerText,
		IsCorrect:        m.QuizAttemptAnswerIsCorrect,
		PointsEarned:     m.QuizAttemptAnswerPointsEarned,
		GradeStatus:      string(m.QuizAttemptAnswerGradeStatus),
		GradedAt:         m.QuizAttemptAnswerGradedAt,
		Feedback:         m.QuizAttemptAnswerFeedback,
		AnsweredAt:       m.QuizAttemptAnswerAnsweredAt,
	}
	if m.Question != nil && m.Question.QuizQuestionID != uuid.Nil {
		q := FromQuestionModel(m.Question)
		q.Options = nil
		out.Question = &q
	}
	if m.SelectedOption != nil && m.SelectedOption.QuizOptionID != uuid.Nil {
		o := FromOptionModel(m.SelectedOption)
		out.SelectedOption = &o
	}
	return out
}

func FromAttemptModel(m *model.QuizAttemptModel) AttemptResponse {
	out := AttemptResponse{
		ID:          m.QuizAttemptID,
		QuizID:      m.QuizAttemptQuizID,
		UserID:      m.QuizAttemptUserID,
		Status:      string(m.QuizAttemptStatus),
		StartedAt:   m.QuizAttemptStartedAt,
		CompletedAt: m.QuizAttemptCompletedAt,
		Score:       m.QuizAttemptScore,
		TotalPoints: m.QuizAttemptTotalPoints,
		CreatedAt:   m.QuizAttemptCreatedAt,
		UpdatedAt:   m.QuizAttemptUpdatedAt,
		User:        userDTO.FromUserModel(m.User),
	}
	if m.Quiz != nil && m.Quiz.QuizID != uuid.Nil {
		out.Quiz = &AttemptQuizBrief{
			ID:               m.Quiz.QuizID,
			Title:            m.Quiz.QuizTitle,
			TimeLimitMinutes: m.Quiz.QuizTimeLimitMinutes,
		}
	}
	if len(m.Answers) > 0 {
		out.Answers = make([]AnswerResponse, 0, len(m.Answers))
		for i := range m.Answers {
			out.Answers = append(out.Answers, FromAnswerModel(&m.Answers[i]))
		}
	}
	return out
}

func FromAttemptModels(rows []model.QuizAttemptModel) []AttemptResponse {
	out := make([]AttemptResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromAttemptModel(&rows[i]))
	}
	return out
}
