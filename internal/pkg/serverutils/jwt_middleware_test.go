package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shreyansh1410/aiNotes/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T, svc *token.Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/protected", JwtMiddleware(svc, nil), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"user_id": ctx.Locals("user_id")})
	})
	return app
}

func TestJwtMiddlewareAcceptsValidToken(t *testing.T) {
	svc := token.NewService("secret", time.Hour)
	app := newProtectedApp(t, svc)

	userID := uuid.New()
	signed, err := svc.Issue(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareRejectsUniformly(t *testing.T) {
	svc := token.NewService("secret", time.Hour)
	app := newProtectedApp(t, svc)

	expired, err := token.NewService("secret", -time.Minute).Issue(uuid.New())
	require.NoError(t, err)

	headers := map[string]string{
		"no header":       "",
		"not bearer":      "Basic abc",
		"garbage token":   "Bearer garbage",
		"expired token":   "Bearer " + expired,
		"wrong signature": "Bearer " + mustIssue(t, token.NewService("other", time.Hour)),
	}

	// Every failure mode yields the same 401 response.
	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func mustIssue(t *testing.T, svc *token.Service) string {
	t.Helper()
	signed, err := svc.Issue(uuid.New())
	require.NoError(t, err)
	return signed
}

func TestValidateRequest(t *testing.T) {
	type body struct {
		Email string `validate:"required,email"`
	}

	assert.NoError(t, ValidateRequest(body{Email: "a@b.com"}))
	assert.Error(t, ValidateRequest(body{Email: "nope"}))
	assert.Error(t, ValidateRequest(body{}))
}
