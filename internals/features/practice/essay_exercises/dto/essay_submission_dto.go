package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"nguvan_backend/internals/features/practice/essay_exercises/model"
)

/* ==============================
   SUBMIT (POST /essay-exercises/submissions)
============================== */

// CreateSubmissionRequest: userId kosong → user dari token
type CreateSubmissionRequest struct {
	ExerciseID       uuid.UUID  `json:"exerciseId" validate:"required"`
	UserID           *uuid.UUID `json:"userId"`
	Content          string     `json:"content" validate:"required"`
	WordCount        *int       `json:"wordCount" validate:"omitempty,gte=0"`
	TimeSpentMinutes *int       `json:"timeSpentMinutes" validate:"omitempty,gte=0"`
}

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

func (r *CreateSubmissionRequest) ToModel(userID uuid.UUID) *model.EssaySubmissionModel {
	wc := CountWords(r.Content)
	if r.WordCount != nil {
		wc = *r.WordCount
	}
	return &model.EssaySubmissionModel{
		EssaySubmissionExerciseID:       r.ExerciseID,
		EssaySubmissionUserID:           userID,
		EssaySubmissionContent:          r.Content,
		EssaySubmissionWordCount:        wc,
		EssaySubmissionTimeSpentMinutes: r.TimeSpentMinutes,
	}
}

/* ==============================
   GRADE (PATCH /essay-exercises/submissions/:id/grade)
============================== */

type GradeSubmissionRequest struct {
	Grade    *float64       `json:"grade" validate:"required,gte=0,lte=10"`
	Feedback *string        `json:"feedback"`
	Scores   map[string]any `json:"scores"`
}

type ListSubmissionsQuery struct {
	UserID string `query:"userId"`
}

/* ==============================
   RESPONSE
============================== */

type SubmissionResponse struct {
	ID               uuid.UUID              `json:"id"`
	ExerciseID       uuid.UUID              `json:"exerciseId"`
	UserID           uuid.UUID              `json:"userId"`
	Content          string                 `json:"content"`
	WordCount        int                    `json:"wordCount"`
	TimeSpentMinutes *int                   `json:"timeSpentMinutes,omitempty"`
	Grade            *float64               `json:"grade,omitempty"`
	Feedback         *string                `json:"feedback,omitempty"`
	Scores           datatypes.JSONMap      `json:"scores,omitempty"`
	SubmittedAt      time.Time              `json:"submittedAt"`
	GradedAt         *time.Time             `json:"gradedAt,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
	Exercise         *EssayExerciseResponse `json:"exercise,omitempty"`
}

func FromSubmissionModel(m *model.EssaySubmissionModel) SubmissionResponse {
	out := SubmissionResponse{
		ID:               m.EssaySubmissionID,
		ExerciseID:       m.EssaySubmissionExerciseID,
		UserID:           m.EssaySubmissionUserID,
		Content:          m.EssaySubmissionContent,
		WordCount:        m.EssaySubmissionWordCount,
		TimeSpentMinutes: m.EssaySubmissionTimeSpentMinutes,
		Grade:            m.EssaySubmissionGrade,
		Feedback:         m.EssaySubmissionFeedback,
		Scores:           m.EssaySubmissionScores,
		SubmittedAt:      m.EssaySubmissionSubmittedAt,
		GradedAt:         m.EssaySubmissionGradedAt,
		CreatedAt:        m.EssaySubmissionCreatedAt,
		UpdatedAt:        m.EssaySubmissionUpdatedAt,
	}
	if m.Exercise != nil && m.Exercise.EssayExerciseID != uuid.Nil {
		ex := FromEssayExerciseModel(m.Exercise)
		out.Exercise = &ex
	}
	return out
}

func FromSubmissionModels(rows []model.EssaySubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromSubmissionModel(&rows[i]))
	}
	return out
}
