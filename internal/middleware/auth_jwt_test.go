package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTAuth(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		role, _ := c.Locals("role").(string)
		return c.JSON(fiber.Map{"user_id": uid, "role": role})
	})
	app.Get("/private", RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTAuthValidToken(t *testing.T) {
	app := testApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"uid":  "64f000000000000000000001",
		"role": "member",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTAuthSubFallback(t *testing.T) {
	app := testApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "64f000000000000000000002",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTAuthMissingTokenPassesThroughAnonymously(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
	app := testApp()

	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"uid": "64f000000000000000000003",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	expired := signToken(t, testSecret, jwt.MapClaims{
		"uid": "64f000000000000000000004",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	noUID := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	for name, token := range map[string]string{
		"garbage":     "not.a.jwt",
		"wrong key":   wrongKey,
		"expired":     expired,
		"missing uid": noUID,
	} {
		req := httptest.NewRequest("GET", "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, name)
	}
}
