package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nguvan_backend/internals/features/practice/quizzes/dto"
	"nguvan_backend/internals/features/practice/quizzes/service"
	helper "nguvan_backend/internals/helpers"
	"nguvan_backend/internals/helpers/logger"
)

type QuizController struct {
	Service   *service.QuizService
	Validator *validator.Validate
	Log       *logger.Logger
}

func NewQuizController(svc *service.QuizService, l *logger.Logger) *QuizController {
	return &QuizController{
		Service:   svc,
		Validator: helper.NewValidator(),
		Log:       l,
	}
}

/* =======================
   Helpers
======================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid uuid")
	}
	return id, nil
}

func parseUUIDQuery(raw, name string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid uuid")
	}
	return &id, nil
}

/* =======================
   Handlers
======================= */

// GET /quizzes?lessonId=&gradeLevel=
func (ctrl *QuizController) List(c *fiber.Ctx) error {
	var q dto.ListQuizQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	lessonID, err := parseUUIDQuery(q.LessonID, "lessonId")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}

	ctx := c.UserContext()
	if lessonID != nil {
		rows, err := ctrl.Service.FindByLesson(ctx, *lessonID)
		if err != nil {
			return helper.JsonFromError(c, ctrl.Log, err)
		}
		return helper.JsonOK(c, dto.FromQuizModels(rows))
	}
	rows, err := ctrl.Service.FindAll(ctx, service.QuizFilter{GradeLevel: q.GradeLevel})
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonOK(c, dto.FromQuizModels(rows))
}

// GET /quizzes/:id
func (ctrl *QuizController) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "quiz not found")
	}
	return helper.JsonOK(c, dto.FromQuizModel(m))
}

// POST /quizzes
func (ctrl *QuizController) Create(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.CreateQuiz(c.UserContext(), &body)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonCreated(c, dto.FromQuizModel(m))
}

// PATCH /quizzes/:id
func (ctrl *QuizController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	m, err := ctrl.Service.UpdateQuiz(c.UserContext(), id, &body)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "quiz not found")
	}
	return helper.JsonUpdated(c, dto.FromQuizModel(m))
}

// DELETE /quizzes/:id
func (ctrl *QuizController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	if err := ctrl.Service.DeleteQuiz(c.UserContext(), id); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonDeleted(c, fiber.Map{"id": id})
}

// POST /quizzes/questions
func (ctrl *QuizController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.CreateQuestion(c.UserContext(), &body)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonCreated(c, dto.FromQuestionModel(m))
}

// POST /quizzes/options
func (ctrl *QuizController) CreateOption(c *fiber.Ctx) error {
	var body dto.CreateOptionRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.CreateOption(c.UserContext(), &body)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonCreated(c, dto.FromOptionModel(m))
}
