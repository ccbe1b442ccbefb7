package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPublicPath(t *testing.T) {
	public := []string{
		"/api/v1/public/products",
		"/api/v1/public/products/64a1f2e8c9b4d1a2b3c4d5e6/site1",
		"/api/v1/public/quotes",
		"/api/v1/system/health",
	}
	for _, path := range public {
		assert.True(t, IsPublicPath(path), "path %q must be public", path)
	}

	protected := []string{
		"/api/v1/products",
		"/api/v1/quotes",
		"/api/v1/dashboard/stats",
		"/api/v1/public",
		"/api/v1/publicx/products",
		"/",
	}
	for _, path := range protected {
		assert.False(t, IsPublicPath(path), "path %q must require auth", path)
	}
}

// authTestApp builds a minimal app with the auth gate and one route per zone.
func authTestApp() *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware())
	app.Get("/api/v1/public/products", func(c fiber.Ctx) error {
		return c.SendString("public ok")
	})
	app.Get("/api/v1/products", func(c fiber.Ctx) error {
		return c.SendString("admin ok")
	})
	return app
}

func TestAuthMiddleware_PublicPathPassesWithoutToken(t *testing.T) {
	app := authTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/public/products", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_MissingTokenRejected(t *testing.T) {
	app := authTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeaderRejected(t *testing.T) {
	app := authTestApp()

	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	req.Header.Set("Authorization", "Token abcdef")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
