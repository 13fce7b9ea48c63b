package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nguvan_backend/internals/features/practice/quizzes/dto"
	"nguvan_backend/internals/features/practice/quizzes/model"
	"nguvan_backend/internals/helpers/apperr"
	"nguvan_backend/internals/testutil"
)

func TestCreateQuiz_Defaults(t *testing.T) {
	f := newFixture(t)

	q := f.createQuiz(t, dto.CreateQuizRequest{
		Title:       "  Chi Pheo  ",
		MaxAttempts: testutil.Ptr(0),
	})

	assert.NotEqual(t, uuid.Nil, q.QuizID)
	assert.Equal(t, "Chi Pheo", q.QuizTitle)
	assert.False(t, q.QuizIsPublished)
	require.NotNil(t, q.QuizMaxAttempts)
	assert.Equal(t, 0, *q.QuizMaxAttempts)
	assert.Zero(t, q.AttemptCap())
}

func TestCreateQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	quiz := f.createQuiz(t, dto.CreateQuizRequest{})

	t.Run("points default to 1", func(t *testing.T) {
		q, err := f.catalog.CreateQuestion(ctx, &dto.CreateQuestionRequest{
			QuizID: quiz.QuizID, QuestionText: "Q1", QuestionType: "essay", OrderIndex: 0,
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, q.QuizQuestionPoints)
	})

	t.Run("zero points are kept", func(t *testing.T) {
		q, err := f.catalog.CreateQuestion(ctx, &dto.CreateQuestionRequest{
			QuizID: quiz.QuizID, QuestionText: "Q2", QuestionType: "essay", OrderIndex: 1, Points: testutil.Ptr(0.0),
		})
		require.NoError(t, err)

		var stored model.QuizQuestionModel
		require.NoError(t, f.db.Take(&stored, "quiz_question_id = ?", q.QuizQuestionID).Error)
		assert.Zero(t, stored.QuizQuestionPoints)
	})

	t.Run("duplicate orderIndex is rejected", func(t *testing.T) {
		_, err := f.catalog.CreateQuestion(ctx, &dto.CreateQuestionRequest{
			QuizID: quiz.QuizID, QuestionText: "dup", QuestionType: "essay", OrderIndex: 0,
		})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("unknown quiz", func(t *testing.T) {
		_, err := f.catalog.CreateQuestion(ctx, &dto.CreateQuestionRequest{
			QuizID: uuid.New(), QuestionText: "x", QuestionType: "essay",
		})
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := f.catalog.CreateQuestion(ctx, &dto.CreateQuestionRequest{
			QuizID: quiz.QuizID, QuestionText: "x", QuestionType: "true_false", OrderIndex: 9,
		})
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestCreateOption_Rules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	quiz := f.createQuiz(t, dto.CreateQuizRequest{})
	seeded := f.seedChoiceQuestions(t, quiz.QuizID, 2)
	qid := seeded[0].question.QuizQuestionID

	_, err := f.catalog.CreateOption(ctx, &dto.CreateOptionRequest{
		QuestionID: qid, OptionText: "second right", IsCorrect: true, OrderIndex: 5,
	})
	assert.True(t, apperr.IsValidation(err), "second correct option must be rejected")

	_, err = f.catalog.CreateOption(ctx, &dto.CreateOptionRequest{
		QuestionID: qid, OptionText: "dup order", OrderIndex: 1,
	})
	assert.True(t, apperr.IsValidation(err), "duplicate orderIndex must be rejected")

	_, err = f.catalog.CreateOption(ctx, &dto.CreateOptionRequest{
		QuestionID: uuid.New(), OptionText: "orphan",
	})
	assert.True(t, apperr.IsNotFound(err))

	essay, err := f.catalog.CreateQuestion(ctx, &dto.CreateQuestionRequest{
		QuizID: quiz.QuizID, QuestionText: "Write", QuestionType: "essay", OrderIndex: 7,
	})
	require.NoError(t, err)
	_, err = f.catalog.CreateOption(ctx, &dto.CreateOptionRequest{
		QuestionID: essay.QuizQuestionID, OptionText: "nope",
	})
	assert.True(t, apperr.IsValidation(err), "essay questions take no options")
}

func TestFindByLesson_PublishedOnlyOrdered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	older := f.createQuiz(t, dto.CreateQuizRequest{Title: "older", IsPublished: testutil.Ptr(true)})
	newer := f.createQuiz(t, dto.CreateQuizRequest{Title: "newer", IsPublished: testutil.Ptr(true)})
	f.createQuiz(t, dto.CreateQuizRequest{Title: "draft"})
	other := testutil.CreateLesson(t, f.db, "Other")
	f.createQuiz(t, dto.CreateQuizRequest{LessonID: other.LessonID, Title: "elsewhere", IsPublished: testutil.Ptr(true)})

	base := time.Now().Add(-time.Hour)
	require.NoError(t, f.db.Model(&model.QuizModel{}).Where("quiz_id = ?", older.QuizID).Update("quiz_created_at", base).Error)
	require.NoError(t, f.db.Model(&model.QuizModel{}).Where("quiz_id = ?", newer.QuizID).Update("quiz_created_at", base.Add(time.Minute)).Error)

	// questions come back in orderIndex order whatever the insert order
	for _, idx := range []int{2, 0, 1} {
		_, err := f.catalog.CreateQuestion(ctx, &dto.CreateQuestionRequest{
			QuizID: older.QuizID, QuestionText: "q", QuestionType: "essay", OrderIndex: idx,
		})
		require.NoError(t, err)
	}

	rows, err := f.catalog.FindByLesson(ctx, f.lessonID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "older", rows[0].QuizTitle)
	assert.Equal(t, "newer", rows[1].QuizTitle)
	require.NotNil(t, rows[0].Lesson)
	assert.Equal(t, "Truyen Kieu", rows[0].Lesson.LessonTitle)

	require.Len(t, rows[0].Questions, 3)
	for i, q := range rows[0].Questions {
		assert.Equal(t, i, q.QuizQuestionOrderIndex)
	}
}

func TestFindAll_IncludesDraftsNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.createQuiz(t, dto.CreateQuizRequest{Title: "a", GradeLevel: testutil.Ptr("10")})
	b := f.createQuiz(t, dto.CreateQuizRequest{Title: "b", IsPublished: testutil.Ptr(true), GradeLevel: testutil.Ptr("11")})
	base := time.Now().Add(-time.Hour)
	require.NoError(t, f.db.Model(&model.QuizModel{}).Where("quiz_id = ?", a.QuizID).Update("quiz_created_at", base).Error)
	require.NoError(t, f.db.Model(&model.QuizModel{}).Where("quiz_id = ?", b.QuizID).Update("quiz_created_at", base.Add(time.Minute)).Error)

	rows, err := f.catalog.FindAll(ctx, QuizFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].QuizTitle)
	assert.Equal(t, "a", rows[1].QuizTitle)

	rows, err = f.catalog.FindAll(ctx, QuizFilter{GradeLevel: "10"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].QuizTitle)
}

func TestFindByID_MissingIsNil(t *testing.T) {
	f := newFixture(t)
	m, err := f.catalog.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestUpdateAndDeleteQuiz(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	q := f.createQuiz(t, dto.CreateQuizRequest{Title: "before", TimeLimitMinutes: testutil.Ptr(15)})

	updated, err := f.catalog.UpdateQuiz(ctx, q.QuizID, &dto.UpdateQuizRequest{
		Title:            dto.Set("after"),
		IsPublished:      dto.Set(true),
		TimeLimitMinutes: dto.Null[int](),
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.QuizTitle)
	assert.True(t, updated.QuizIsPublished)
	assert.Nil(t, updated.QuizTimeLimitMinutes)

	_, err = f.catalog.UpdateQuiz(ctx, q.QuizID, &dto.UpdateQuizRequest{Title: dto.Set("  ")})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.catalog.UpdateQuiz(ctx, uuid.New(), &dto.UpdateQuizRequest{Title: dto.Set("x")})
	assert.True(t, apperr.IsNotFound(err))

	require.NoError(t, f.catalog.DeleteQuiz(ctx, q.QuizID))
	gone, err := f.catalog.FindByID(ctx, q.QuizID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.True(t, apperr.IsNotFound(f.catalog.DeleteQuiz(ctx, q.QuizID)))
}
