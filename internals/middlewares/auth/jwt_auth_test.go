package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperAuth "nguvan_backend/internals/helpers/auth"
)

const secret = "s3cret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newApp(cookie bool) *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthJWT(AuthJWTOpts{Secret: secret, AllowCookieFallback: cookie}), func(c *fiber.Ctx) error {
		id, err := helperAuth.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"id": id.String(), "role": helperAuth.GetRole(c)})
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	uid := uuid.New()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		cookie bool
		setup  func(r *http.Request)
		want   int
	}{
		{
			name:  "no token",
			setup: func(r *http.Request) {},
			want:  http.StatusUnauthorized,
		},
		{
			name: "valid bearer with id claim",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"id": uid.String(), "exp": exp}))
			},
			want: http.StatusOK,
		},
		{
			name: "sub claim is accepted",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "bearer "+sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": uid.String(), "exp": exp}))
			},
			want: http.StatusOK,
		},
		{
			name: "wrong secret",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"id": uid.String()}))
			},
			want: http.StatusUnauthorized,
		},
		{
			name: "expired",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"id": uid.String(), "exp": time.Now().Add(-time.Minute).Unix()}))
			},
			want: http.StatusUnauthorized,
		},
		{
			name: "cookie ignored without fallback",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "access_token", Value: sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"id": uid.String()})})
			},
			want: http.StatusUnauthorized,
		},
		{
			name:   "cookie fallback",
			cookie: true,
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "access_token", Value: sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"id": uid.String()})})
			},
			want: http.StatusOK,
		},
		{
			name: "user id that is not a uuid",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"id": "42"}))
			},
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			resp, err := newApp(tt.cookie).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuthJWT_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { AuthJWT(AuthJWTOpts{Secret: "  "}) })
}
