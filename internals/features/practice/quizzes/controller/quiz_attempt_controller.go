package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nguvan_backend/internals/features/practice/quizzes/dto"
	"nguvan_backend/internals/features/practice/quizzes/service"
	helper "nguvan_backend/internals/helpers"
	helperAuth "nguvan_backend/internals/helpers/auth"
	"nguvan_backend/internals/helpers/logger"
)

type QuizAttemptController struct {
	Service   *service.QuizAttemptService
	Validator *validator.Validate
	Log       *logger.Logger
}

func NewQuizAttemptController(svc *service.QuizAttemptService, l *logger.Logger) *QuizAttemptController {
	return &QuizAttemptController{
		Service:   svc,
		Validator: helper.NewValidator(),
		Log:       l,
	}
}

// POST /quizzes/:id/start  body opsional {userId}
func (ctrl *QuizAttemptController) Start(c *fiber.Ctx) error {
	quizID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	var body dto.StartAttemptRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}
	userID, err := helperAuth.ResolveUserID(c, body.UserID)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}

	m, err := ctrl.Service.StartAttempt(c.UserContext(), quizID, userID)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonCreated(c, dto.FromAttemptModel(m))
}

// GET /quizzes/:id/attempts?status=
func (ctrl *QuizAttemptController) ListByQuiz(c *fiber.Ctx) error {
	quizID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	var q dto.ListAttemptsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	if err := helper.ValidateStruct(ctrl.Validator, &q); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}

	rows, err := ctrl.Service.ListAttempts(c.UserContext(), quizID, q.Status)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonOK(c, dto.FromAttemptModels(rows))
}

// GET /quizzes/attempts/mine?quizId=
func (ctrl *QuizAttemptController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	var q dto.MyAttemptsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	quizID, err := parseUUIDQuery(q.QuizID, "quizId")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}

	rows, err := ctrl.Service.ListUserAttempts(c.UserContext(), userID, quizID)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonOK(c, dto.FromAttemptModels(rows))
}

// GET /quizzes/attempts/:attemptId
func (ctrl *QuizAttemptController) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "attemptId")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.GetAttempt(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "attempt not found")
	}
	return helper.JsonOK(c, dto.FromAttemptModel(m))
}

// POST /quizzes/attempts/:attemptId/answers
func (ctrl *QuizAttemptController) SubmitAnswer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "attemptId")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	var body dto.SubmitAnswerRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}

	m, err := ctrl.Service.SubmitAnswer(c.UserContext(), id, &body)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonCreated(c, dto.FromAnswerModel(m))
}

// POST /quizzes/attempts/:attemptId/auto-grade
func (ctrl *QuizAttemptController) AutoGrade(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "attemptId")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.AutoGradeAttempt(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonOK(c, dto.FromAttemptModel(m))
}

// POST /quizzes/attempts/:attemptId/complete
func (ctrl *QuizAttemptController) Complete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "attemptId")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.CompleteAttempt(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonOK(c, dto.FromAttemptModel(m))
}

// PATCH /quizzes/attempts/answers/:id
func (ctrl *QuizAttemptController) GradeAnswer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	var body dto.GradeAnswerRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}

	m, err := ctrl.Service.GradeAnswer(c.UserContext(), id, &body)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonUpdated(c, dto.FromAnswerModel(m))
}
