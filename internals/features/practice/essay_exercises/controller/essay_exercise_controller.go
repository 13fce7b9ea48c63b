package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nguvan_backend/internals/features/practice/essay_exercises/dto"
	"nguvan_backend/internals/features/practice/essay_exercises/service"
	helper "nguvan_backend/internals/helpers"
	helperAuth "nguvan_backend/internals/helpers/auth"
	"nguvan_backend/internals/helpers/logger"
)

type EssayExerciseController struct {
	Service   *service.EssayExerciseService
	Validator *validator.Validate
	Log       *logger.Logger
}

func NewEssayExerciseController(svc *service.EssayExerciseService, l *logger.Logger) *EssayExerciseController {
	return &EssayExerciseController{
		Service:   svc,
		Validator: helper.NewValidator(),
		Log:       l,
	}
}

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid uuid")
	}
	return id, nil
}

/* =======================
   EXERCISE
======================= */

// GET /essay-exercises?lessonId=&practiceType=&gradeLevel=
func (ctrl *EssayExerciseController) List(c *fiber.Ctx) error {
	var q dto.ListEssayExerciseQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	if err := helper.ValidateStruct(ctrl.Validator, &q); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}

	ctx := c.UserContext()
	if raw := strings.TrimSpace(q.LessonID); raw != "" {
		lessonID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "lessonId is not a valid uuid")
		}
		rows, err := ctrl.Service.FindByLesson(ctx, lessonID)
		if err != nil {
			return helper.JsonFromError(c, ctrl.Log, err)
		}
		return helper.JsonOK(c, dto.FromEssayExerciseModels(rows))
	}

	rows, err := ctrl.Service.FindAll(ctx, service.ExerciseFilter{
		PracticeType: q.PracticeType,
		GradeLevel:   q.GradeLevel,
	})
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonOK(c, dto.FromEssayExerciseModels(rows))
}

// GET /essay-exercises/:id
func (ctrl *EssayExerciseController) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "essay exercise not found")
	}
	return helper.JsonOK(c, dto.FromEssayExerciseModel(m))
}

// POST /essay-exercises
func (ctrl *EssayExerciseController) Create(c *fiber.Ctx) error {
	var body dto.CreateEssayExerciseRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.CreateExercise(c.UserContext(), &body)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonCreated(c, dto.FromEssayExerciseModel(m))
}

/* =======================
   SUBMISSION
======================= */

// POST /essay-exercises/submissions
func (ctrl *EssayExerciseController) Submit(c *fiber.Ctx) error {
	var body dto.CreateSubmissionRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	userID, err := helperAuth.ResolveUserID(c, body.UserID)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.CreateSubmission(c.UserContext(), userID, &body)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonCreated(c, dto.FromSubmissionModel(m))
}

// GET /essay-exercises/submissions?userId=  (default: user dari token)
func (ctrl *EssayExerciseController) ListByUser(c *fiber.Ctx) error {
	var q dto.ListSubmissionsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	var explicit *uuid.UUID
	if raw := strings.TrimSpace(q.UserID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "userId is not a valid uuid")
		}
		explicit = &id
	}
	userID, err := helperAuth.ResolveUserID(c, explicit)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}

	rows, err := ctrl.Service.FindByUser(c.UserContext(), userID)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonOK(c, dto.FromSubmissionModels(rows))
}

// GET /essay-exercises/:id/submissions
func (ctrl *EssayExerciseController) ListByExercise(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	rows, err := ctrl.Service.FindByExercise(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonOK(c, dto.FromSubmissionModels(rows))
}

// PATCH /essay-exercises/submissions/:id/grade
func (ctrl *EssayExerciseController) Grade(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	var body dto.GradeSubmissionRequest
	if err := helper.BindAndValidate(c, ctrl.Validator, &body); err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	m, err := ctrl.Service.GradeSubmission(c.UserContext(), id, &body)
	if err != nil {
		return helper.JsonFromError(c, ctrl.Log, err)
	}
	return helper.JsonUpdated(c, dto.FromSubmissionModel(m))
}
