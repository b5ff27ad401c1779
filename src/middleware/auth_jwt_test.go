package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"FoodiePal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(tokens *utils.TokenManager) *fiber.App {
	app := fiber.New()
	app.Get("/private", AuthJWT(tokens, utils.NewTokenBlacklist(nil)), func(c *fiber.Ctx) error {
		claims := c.Locals("user").(jwt.MapClaims)
		return c.SendString(claims["email"].(string))
	})
	return app
}

func TestAuthJWTMissingCookie(t *testing.T) {
	app := newProtectedApp(utils.NewTokenManager("secret", time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTInvalidToken(t *testing.T) {
	app := newProtectedApp(utils.NewTokenManager("secret", time.Hour))
	other, _, err := utils.NewTokenManager("other", time.Hour).GenerateJWT(map[string]interface{}{"email": "a@example.com"})
	require.NoError(t, err)

	for _, token := range []string{"garbage", other} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: utils.TokenCookie, Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestAuthJWTValidTokenPassesClaims(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	app := newProtectedApp(tokens)
	token, _, err := tokens.GenerateJWT(map[string]interface{}{"email": "a@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: utils.TokenCookie, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
