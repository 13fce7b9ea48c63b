// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nguvan_backend/internals/helpers/apperr"
	"nguvan_backend/internals/helpers/logger"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	return jsonErrorWithCode(c, status, "", message)
}

func jsonErrorWithCode(c *fiber.Ctx, status int, code, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" && status >= 500 {
		message = fiber.ErrInternalServerError.Message
	}
	if code == "" {
		code = statusToErrorCode(status)
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: code,
	})
}

// JsonValidationError: khusus error validasi (422)
func JsonValidationError(c *fiber.Ctx, message string, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	if strings.TrimSpace(message) == "" {
		message = "validation failed"
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: apperr.CodeValidation,
		Errors:    fieldErrors,
	})
}

// JsonFromError maps a service error onto the error envelope.
// Unknown errors become 500 and are logged; their text is never sent to the client.
func JsonFromError(c *fiber.Ctx, l *logger.Logger, err error) error {
	if ae, ok := apperr.As(err); ok {
		if ae.Status == fiber.StatusUnprocessableEntity {
			return JsonValidationError(c, ae.Message, ae.Fields)
		}
		return jsonErrorWithCode(c, ae.Status, ae.Code, ae.Message)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, "record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return JsonError(c, fiber.StatusConflict, "duplicate record")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return JsonError(c, fiber.StatusUnprocessableEntity, "referenced record does not exist")
	}
	if l != nil {
		l.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return JsonError(c, fiber.StatusInternalServerError, "")
}

// ErrorHandler renders errors returned from handlers/middleware (401 guard, 429 limiter, 404 route).
func ErrorHandler(l *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return JsonFromError(c, l, err)
	}
}

/* ===============================
   JSON responses (bare resource)
=================================*/

// JsonOK: GET detail / list
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: POST
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonUpdated: PATCH/PUT
func JsonUpdated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonDeleted: DELETE
func JsonDeleted(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}
