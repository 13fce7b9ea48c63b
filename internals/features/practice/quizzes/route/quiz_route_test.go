package route

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nguvan_backend/internals/features/practice/quizzes/dto"
	"nguvan_backend/internals/testutil"
)

type quizAPI struct {
	app      *fiber.App
	token    string
	userID   uuid.UUID
	lessonID uuid.UUID
}

func newQuizAPI(t *testing.T) *quizAPI {
	t.Helper()
	db := testutil.DB(t)
	l := testutil.Logger(t)
	app, auth := testutil.App(t, l)
	QuizRoutes(app.Group("/api"), db, l, auth)

	user := testutil.CreateUser(t, db, "Thu", "Vu")
	return &quizAPI{
		app:      app,
		token:    testutil.Token(t, user.UserID),
		userID:   user.UserID,
		lessonID: testutil.CreateLesson(t, db, "Tat den").LessonID,
	}
}

func (a *quizAPI) do(t *testing.T, method, path string, body, out any) int {
	t.Helper()
	return testutil.Do(t, a.app, method, path, a.token, body, out)
}

func TestQuizRoutes_AuthGuard(t *testing.T) {
	api := newQuizAPI(t)

	var e testutil.ErrorBody
	status := testutil.Do(t, api.app, http.MethodPost, "/api/quizzes", "", fiber.Map{"lessonId": api.lessonID, "title": "x"}, &e)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, e.Success)
	assert.Equal(t, "UNAUTHORIZED", e.ErrorCode)

	status = testutil.Do(t, api.app, http.MethodGet, "/api/quizzes/attempts/mine", "not-a-jwt", nil, &e)
	assert.Equal(t, http.StatusUnauthorized, status)

	// reads are public
	var list []dto.QuizResponse
	status = testutil.Do(t, api.app, http.MethodGet, "/api/quizzes", "", nil, &list)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, list)
}

func TestQuizRoutes_Validation(t *testing.T) {
	api := newQuizAPI(t)

	var e testutil.ErrorBody
	status := api.do(t, http.MethodPost, "/api/quizzes", fiber.Map{"title": ""}, &e)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", e.ErrorCode)
	assert.Contains(t, e.Errors, "lessonId")
	assert.Contains(t, e.Errors, "title")

	status = api.do(t, http.MethodGet, "/api/quizzes/not-a-uuid", nil, &e)
	assert.Equal(t, http.StatusBadRequest, status)

	status = api.do(t, http.MethodGet, "/api/quizzes/"+uuid.NewString(), nil, &e)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", e.ErrorCode)
}

func TestQuizRoutes_AttemptFlow(t *testing.T) {
	api := newQuizAPI(t)

	var quiz dto.QuizResponse
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/quizzes", fiber.Map{
		"lessonId":    api.lessonID,
		"title":       "Tat den",
		"isPublished": true,
		"maxAttempts": 1,
	}, &quiz))
	assert.Equal(t, "Tat den", quiz.Title)

	type seeded struct{ questionID, right, wrong uuid.UUID }
	mk := func(order int, points float64) seeded {
		var q dto.QuestionResponse
		require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/quizzes/questions", fiber.Map{
			"quizId": quiz.ID, "questionText": "Chi Dau la ai?", "questionType": "multiple_choice",
			"orderIndex": order, "points": points,
		}, &q))
		var right, wrong dto.OptionResponse
		require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/quizzes/options", fiber.Map{
			"questionId": q.ID, "optionText": "A", "isCorrect": true, "orderIndex": 0,
		}, &right))
		require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/quizzes/options", fiber.Map{
			"questionId": q.ID, "optionText": "B", "orderIndex": 1,
		}, &wrong))
		return seeded{q.ID, right.ID, wrong.ID}
	}
	q1, q2 := mk(0, 3), mk(1, 2)

	var detail dto.QuizResponse
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/quizzes/"+quiz.ID.String(), nil, &detail))
	require.Len(t, detail.Questions, 2)
	assert.Len(t, detail.Questions[0].Options, 2)

	var attempt dto.AttemptResponse
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/quizzes/"+quiz.ID.String()+"/start", nil, &attempt))
	assert.Equal(t, "in_progress", attempt.Status)
	assert.Equal(t, api.userID, attempt.UserID)

	var e testutil.ErrorBody
	assert.Equal(t, http.StatusConflict, api.do(t, http.MethodPost, "/api/quizzes/"+quiz.ID.String()+"/start", nil, &e))
	assert.Equal(t, "MAX_ATTEMPTS_REACHED", e.ErrorCode)

	answers := "/api/quizzes/attempts/" + attempt.ID.String() + "/answers"
	var ans dto.AnswerResponse
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, answers, fiber.Map{"questionId": q1.questionID, "selectedOptionId": q1.right}, &ans))
	assert.Equal(t, "ungraded", ans.GradeStatus)
	assert.Nil(t, ans.IsCorrect)
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, answers, fiber.Map{"questionId": q2.questionID, "selectedOptionId": q2.wrong}, nil))

	assert.Equal(t, http.StatusUnprocessableEntity,
		api.do(t, http.MethodPost, answers, fiber.Map{"questionId": q1.questionID, "selectedOptionId": q2.right}, &e))

	var graded dto.AnswerResponse
	assert.Equal(t, http.StatusUnprocessableEntity, api.do(t, http.MethodPatch, "/api/quizzes/attempts/answers/"+ans.ID.String(),
		fiber.Map{"pointsEarned": 9, "isCorrect": true}, &e))
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPatch, "/api/quizzes/attempts/answers/"+ans.ID.String(),
		fiber.Map{"pointsEarned": 3, "isCorrect": true, "feedback": "dung"}, &graded))
	assert.Equal(t, "graded", graded.GradeStatus)

	var done dto.AttemptResponse
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/quizzes/attempts/"+attempt.ID.String()+"/complete", nil, &done))
	assert.Equal(t, "completed", done.Status)
	require.NotNil(t, done.Score)
	assert.Equal(t, 3.0, *done.Score)
	assert.Equal(t, 5.0, *done.TotalPoints)

	// auto-grade after completion marks q2 wrong; score is unchanged
	var regraded dto.AttemptResponse
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/quizzes/attempts/"+attempt.ID.String()+"/auto-grade", nil, &regraded))
	assert.Equal(t, 3.0, *regraded.Score)
	assert.Len(t, regraded.Answers, 2)

	assert.Equal(t, http.StatusConflict,
		api.do(t, http.MethodPost, answers, fiber.Map{"questionId": q1.questionID, "answerText": "late"}, &e))
	assert.Equal(t, "ATTEMPT_COMPLETED", e.ErrorCode)

	var mine []dto.AttemptResponse
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/quizzes/attempts/mine?quizId="+quiz.ID.String(), nil, &mine))
	assert.Len(t, mine, 1)

	var byQuiz []dto.AttemptResponse
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/quizzes/"+quiz.ID.String()+"/attempts?status=completed", nil, &byQuiz))
	require.Len(t, byQuiz, 1)
	require.NotNil(t, byQuiz[0].User)
	assert.Equal(t, "Thu Vu", byQuiz[0].User.FullName)

	assert.Equal(t, http.StatusUnprocessableEntity,
		api.do(t, http.MethodGet, "/api/quizzes/"+quiz.ID.String()+"/attempts?status=lost", nil, &e))
}

func TestQuizRoutes_PatchAndDelete(t *testing.T) {
	api := newQuizAPI(t)

	var quiz dto.QuizResponse
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/quizzes", fiber.Map{
		"lessonId": api.lessonID, "title": "draft", "timeLimitMinutes": 20,
	}, &quiz))

	// drafts are hidden from the lesson listing
	var byLesson []dto.QuizResponse
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/quizzes?lessonId="+api.lessonID.String(), nil, &byLesson))
	assert.Empty(t, byLesson)

	var patched dto.QuizResponse
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPatch, "/api/quizzes/"+quiz.ID.String(),
		fiber.Map{"isPublished": true, "timeLimitMinutes": nil}, &patched))
	assert.True(t, patched.IsPublished)
	assert.Nil(t, patched.TimeLimitMinutes)

	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/quizzes?lessonId="+api.lessonID.String(), nil, &byLesson))
	assert.Len(t, byLesson, 1)

	require.Equal(t, http.StatusOK, api.do(t, http.MethodDelete, "/api/quizzes/"+quiz.ID.String(), nil, nil))
	var e testutil.ErrorBody
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/api/quizzes/"+quiz.ID.String(), nil, &e))
}
