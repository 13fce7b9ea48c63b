package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nguvan_backend/internals/features/practice/quizzes/dto"
	"nguvan_backend/internals/features/practice/quizzes/model"
	"nguvan_backend/internals/testutil"
)

type fixture struct {
	db       *gorm.DB
	catalog  *QuizService
	attempts *QuizAttemptService
	userID   uuid.UUID
	lessonID uuid.UUID
}

type seededQuestion struct {
	question *model.QuizQuestionModel
	correct  *model.QuizOptionModel
	wrong    *model.QuizOptionModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	l := testutil.Logger(t)
	return &fixture{
		db:       db,
		catalog:  NewQuizService(db, l),
		attempts: NewQuizAttemptService(db, l),
		userID:   testutil.CreateUser(t, db, "Lan", "Nguyen").UserID,
		lessonID: testutil.CreateLesson(t, db, "Truyen Kieu").LessonID,
	}
}

func (f *fixture) createQuiz(t *testing.T, req dto.CreateQuizRequest) *model.QuizModel {
	t.Helper()
	if req.LessonID == uuid.Nil {
		req.LessonID = f.lessonID
	}
	if req.Title == "" {
		req.Title = "Quiz"
	}
	q, err := f.catalog.CreateQuiz(context.Background(), &req)
	require.NoError(t, err)
	return q
}

// seedChoiceQuestions adds one multiple_choice question per points value,
// each with a correct and a wrong option.
func (f *fixture) seedChoiceQuestions(t *testing.T, quizID uuid.UUID, points ...float64) []seededQuestion {
	t.Helper()
	ctx := context.Background()
	out := make([]seededQuestion, 0, len(points))
	for i, p := range points {
		q, err := f.catalog.CreateQuestion(ctx, &dto.CreateQuestionRequest{
			QuizID:       quizID,
			QuestionText: "Question",
			QuestionType: string(model.QuizQuestionTypeMultipleChoice),
			OrderIndex:   i,
			Points:       testutil.Ptr(p),
		})
		require.NoError(t, err)

		right, err := f.catalog.CreateOption(ctx, &dto.CreateOptionRequest{
			QuestionID: q.QuizQuestionID, OptionText: "right", IsCorrect: true, OrderIndex: 0,
		})
		require.NoError(t, err)
		wrong, err := f.catalog.CreateOption(ctx, &dto.CreateOptionRequest{
			QuestionID: q.QuizQuestionID, OptionText: "wrong", OrderIndex: 1,
		})
		require.NoError(t, err)

		out = append(out, seededQuestion{question: q, correct: right, wrong: wrong})
	}
	return out
}

func (f *fixture) answer(t *testing.T, attemptID uuid.UUID, q seededQuestion, opt *model.QuizOptionModel) *model.QuizAttemptAnswerModel {
	t.Helper()
	a, err := f.attempts.SubmitAnswer(context.Background(), attemptID, &dto.SubmitAnswerRequest{
		QuestionID:       q.question.QuizQuestionID,
		SelectedOptionID: &opt.QuizOptionID,
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) grade(t *testing.T, answerID uuid.UUID, points float64, correct bool) *model.QuizAttemptAnswerModel {
	t.Helper()
	a, err := f.attempts.GradeAnswer(context.Background(), answerID, &dto.GradeAnswerRequest{
		PointsEarned: testutil.Ptr(points),
		IsCorrect:    testutil.Ptr(correct),
	})
	require.NoError(t, err)
	return a
}
