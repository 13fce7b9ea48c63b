package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nguvan_backend/internals/helpers/apperr"
	"nguvan_backend/internals/helpers/logger"
)

type createThing struct {
	Name  string `json:"name" validate:"required,max=5"`
	Count *int   `json:"count" validate:"omitempty,gte=0"`
}

func TestJsonFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		message  string
		hasField string
	}{
		{"not found", apperr.NotFound("quiz not found"), 404, "NOT_FOUND", "quiz not found", ""},
		{"validation", apperr.Validation("orderIndex", "orderIndex already used"), 422, "VALIDATION_ERROR", "orderIndex already used", "orderIndex"},
		{"conflict with code", apperr.Conflict("ATTEMPT_COMPLETED", "done"), 409, "ATTEMPT_COMPLETED", "done", ""},
		{"wrapped app error", fmt.Errorf("tx: %w", apperr.NotFound("x")), 404, "NOT_FOUND", "x", ""},
		{"fiber error", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized"), 401, "UNAUTHORIZED", "Unauthorized", ""},
		{"gorm not found", gorm.ErrRecordNotFound, 404, "NOT_FOUND", "record not found", ""},
		{"gorm duplicate", gorm.ErrDuplicatedKey, 409, "CONFLICT", "duplicate record", ""},
		{"unknown is hidden", errors.New("pq: connection reset"), 500, "INTERNAL_ERROR", "Internal Server Error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return JsonFromError(c, logger.Nop(), tt.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.ErrorCode)
			assert.Equal(t, tt.message, body.Message)
			if tt.hasField != "" {
				assert.Contains(t, body.Errors, tt.hasField)
			}
		})
	}
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.Nop())})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.ErrorCode)
}

func TestValidateStruct_FieldNamesFromJSONTags(t *testing.T) {
	v := NewValidator()

	err := ValidateStruct(v, &createThing{Name: "toolong", Count: ptr(-1)})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	ae, _ := apperr.As(err)
	assert.Equal(t, []string{"must be at most 5"}, ae.Fields["name"])
	assert.Equal(t, []string{"must be >= 0"}, ae.Fields["count"])

	assert.NoError(t, ValidateStruct(v, &createThing{Name: "ok"}))
}

func ptr[T any](v T) *T { return &v }
