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

	"bookswap_backend/internals/configs"
)

const testSecret = "test-secret-key"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":    c.Locals("user_id"),
			"email": c.Locals("user_email"),
		})
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newProtectedApp()
	userID := uuid.New()

	t.Run("missing token answers 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token answers 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("token signed with wrong secret answers 403", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": userID.String()})
		signed, err := token.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("expired token answers 403", func(t *testing.T) {
		signed := signToken(t, jwt.MapClaims{
			"id":  userID.String(),
			"exp": time.Now().Add(-2 * time.Minute).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("token without id claim answers 403", func(t *testing.T) {
		signed := signToken(t, jwt.MapClaims{"email": "x@y.z"})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("valid token passes and populates locals", func(t *testing.T) {
		signed := signToken(t, jwt.MapClaims{
			"id":    userID.String(),
			"email": "anita@college.edu",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("legacy token without exp still verifies", func(t *testing.T) {
		signed := signToken(t, jwt.MapClaims{
			"id":    userID.String(),
			"email": "anita@college.edu",
		})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
