package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	helper "nguvan_backend/internals/helpers"
	"nguvan_backend/internals/helpers/logger"
	authMiddleware "nguvan_backend/internals/middlewares/auth"
)

const JWTSecret = "test-secret"

// App returns a fiber app configured like main, plus the JWT guard routes take.
func App(tb testing.TB, l *logger.Logger) (*fiber.App, fiber.Handler) {
	tb.Helper()
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler(l),
	})
	auth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{Secret: JWTSecret})
	return app, auth
}

// Token signs an HS256 access token for userID with JWTSecret.
func Token(tb testing.TB, userID uuid.UUID) string {
	tb.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(JWTSecret))
	require.NoError(tb, err)
	return s
}

// Do sends a JSON request and decodes the response body into out when out is not nil.
func Do(tb testing.TB, app *fiber.App, method, path, token string, body any, out any) int {
	tb.Helper()

	var r io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(tb, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(tb, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(tb, err)
	if out != nil && len(raw) > 0 && resp.StatusCode != http.StatusNoContent {
		require.NoError(tb, sonic.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

// ErrorBody is the error envelope every failing endpoint returns.
type ErrorBody struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
}
