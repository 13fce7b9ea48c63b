package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   ESSAY SUBMISSION
   setiap submit = row baru (tidak ada batas resubmit)
   grade NULL sampai dinilai guru
========================================================= */

type EssaySubmissionModel struct {
	EssaySubmissionID               uuid.UUID         `gorm:"column:essay_submission_id;type:uuid;primaryKey" json:"essay_submission_id"`
	EssaySubmissionExerciseID       uuid.UUID         `gorm:"column:essay_submission_exercise_id;type:uuid;not null;index" json:"essay_submission_exercise_id"`
	EssaySubmissionUserID           uuid.UUID         `gorm:"column:essay_submission_user_id;type:uuid;not null;index" json:"essay_submission_user_id"`
	EssaySubmissionContent          string            `gorm:"column:essay_submission_content;type:text;not null" json:"essay_submission_content"`
	EssaySubmissionWordCount        int               `gorm:"column:essay_submission_word_count;not null" json:"essay_submission_word_count"`
	EssaySubmissionTimeSpentMinutes *int              `gorm:"column:essay_submission_time_spent_minutes" json:"essay_submission_time_spent_minutes,omitempty"`
	EssaySubmissionGrade            *float64          `gorm:"column:essay_submission_grade;type:numeric(5,2)" json:"essay_submission_grade,omitempty"`
	EssaySubmissionFeedback         *string           `gorm:"column:essay_submission_feedback;type:text" json:"essay_submission_feedback,omitempty"`
	EssaySubmissionScores           datatypes.JSONMap `gorm:"column:essay_submission_scores" json:"essay_submission_scores,omitempty"`
	EssaySubmissionSubmittedAt      time.Time         `gorm:"column:essay_submission_submitted_at;not null;index" json:"essay_submission_submitted_at"`
	EssaySubmissionGradedAt         *time.Time        `gorm:"column:essay_submission_graded_at" json:"essay_submission_graded_at,omitempty"`

	EssaySubmissionCreatedAt time.Time `gorm:"column:essay_submission_created_at;autoCreateTime" json:"essay_submission_created_at"`
	EssaySubmissionUpdatedAt time.Time `gorm:"column:essay_submission_updated_at;autoUpdateTime" json:"essay_submission_updated_at"`

	Exercise *EssayExerciseModel `gorm:"foreignKey:EssaySubmissionExerciseID;references:EssayExerciseID" json:"exercise,omitempty"`
}

func (EssaySubmissionModel) TableName() string { return "essay_submissions" }

func (m *EssaySubmissionModel) BeforeCreate(_ *gorm.DB) error {
	if m.EssaySubmissionID == uuid.Nil {
		m.EssaySubmissionID = uuid.New()
	}
	if m.EssaySubmissionSubmittedAt.IsZero() {
		m.EssaySubmissionSubmittedAt = time.Now()
	}
	return nil
}

func (m *EssaySubmissionModel) IsGraded() bool { return m.EssaySubmissionGradedAt != nil }
