package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"nguvan_backend/internals/features/practice/quizzes/model"
)

func boolPtr(b bool) *bool { return &b }

func TestComputeScore(t *testing.T) {
	questions := []model.QuizQuestionModel{
		{QuizQuestionPoints: 3},
		{QuizQuestionPoints: 2},
		{QuizQuestionPoints: 1.5},
	}

	tests := []struct {
		name    string
		answers []model.QuizAttemptAnswerModel
		want    ScoreResult
	}{
		{
			name: "no answers",
			want: ScoreResult{Score: 0, TotalPoints: 6.5},
		},
		{
			name: "only correct answers count",
			answers: []model.QuizAttemptAnswerModel{
				{QuizAttemptAnswerIsCorrect: boolPtr(true), QuizAttemptAnswerPointsEarned: 3},
				{QuizAttemptAnswerIsCorrect: boolPtr(false), QuizAttemptAnswerPointsEarned: 2},
				{QuizAttemptAnswerIsCorrect: nil, QuizAttemptAnswerPointsEarned: 1.5},
			},
			want: ScoreResult{Score: 3, TotalPoints: 6.5},
		},
		{
			name: "partial credit on a correct answer",
			answers: []model.QuizAttemptAnswerModel{
				{QuizAttemptAnswerIsCorrect: boolPtr(true), QuizAttemptAnswerPointsEarned: 1},
				{QuizAttemptAnswerIsCorrect: boolPtr(true), QuizAttemptAnswerPointsEarned: 2},
			},
			want: ScoreResult{Score: 3, TotalPoints: 6.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeScore(tt.answers, questions))
		})
	}
}

func TestGradeChoice(t *testing.T) {
	q := &model.QuizQuestionModel{
		QuizQuestionID:     uuid.New(),
		QuizQuestionType:   model.QuizQuestionTypeMultipleChoice,
		QuizQuestionPoints: 4,
	}
	right := &model.QuizOptionModel{QuizOptionQuestionID: q.QuizQuestionID, QuizOptionIsCorrect: true}
	wrong := &model.QuizOptionModel{QuizOptionQuestionID: q.QuizQuestionID}
	foreign := &model.QuizOptionModel{QuizOptionQuestionID: uuid.New(), QuizOptionIsCorrect: true}

	ok, pts := GradeChoice(q, right)
	assert.True(t, ok)
	assert.Equal(t, 4.0, pts)

	ok, pts = GradeChoice(q, wrong)
	assert.False(t, ok)
	assert.Zero(t, pts)

	ok, _ = GradeChoice(q, foreign)
	assert.False(t, ok)

	essay := &model.QuizQuestionModel{QuizQuestionID: q.QuizQuestionID, QuizQuestionType: model.QuizQuestionTypeEssay}
	ok, _ = GradeChoice(essay, right)
	assert.False(t, ok)
}
