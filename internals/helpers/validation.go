package helper

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nguvan_backend/internals/helpers/apperr"
)

// NewValidator reports field names by their json tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// BindAndValidate parses the JSON body into dst and runs struct validation.
// Parse failures are 400, rule failures 422 with per-field messages.
func BindAndValidate(c *fiber.Ctx, v *validator.Validate, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return ValidateStruct(v, dst)
}

func ValidateStruct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return &apperr.Error{
			Status:  http.StatusUnprocessableEntity,
			Code:    apperr.CodeValidation,
			Message: "validation failed",
			Fields:  ValidationFields(err),
		}
	}
	return nil
}

// ValidationFields flattens validator errors into field → messages.
func ValidationFields(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		out[field] = append(out[field], describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "is required when " + lowerFirst(fe.Param()) + " is empty"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
