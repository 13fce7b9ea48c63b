package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "nguvan_backend/internals/helpers"
	helperAuth "nguvan_backend/internals/helpers/auth"
	"nguvan_backend/internals/helpers/logger"
)

func TestRequestContext(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(2 * time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		_, ok := c.UserContext().Deadline()
		return c.JSON(fiber.Map{"deadline": ok, "id": c.Locals(LocRequestID)})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-123")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler(logger.Nop())})
	app.Use(RecoveryMiddleware(logger.Nop()))
	app.Get("/boom", func(c *fiber.Ctx) error { panic("nil map") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSubmitRateLimiter_PerUser(t *testing.T) {
	app := fiber.New()
	app.Post("/answers", func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, c.Get("X-User"))
		return c.Next()
	}, SubmitRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/answers", nil)
		req.Header.Set("X-User", user)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	for i := 0; i < 30; i++ {
		require.Equal(t, http.StatusCreated, send("a"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("a"))
	assert.Equal(t, http.StatusCreated, send("b"), "other users keep their own budget")
}
