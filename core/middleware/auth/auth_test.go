package auth_test

import (
	"net/http/httptest"
	"testing"

	"mod-compat/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key, Skip: []string{"/swagger"}}))
	app.Get("/plugins", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/swagger/index.html", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		path   string
		header string
		want   int
	}{
		{"Disabled", "", "/plugins", "", fiber.StatusOK},
		{"MissingKey", "secret", "/plugins", "", fiber.StatusUnauthorized},
		{"WrongKey", "secret", "/plugins", "nope", fiber.StatusUnauthorized},
		{"ValidKey", "secret", "/plugins", "secret", fiber.StatusOK},
		{"QueryKey", "secret", "/plugins?api_key=secret", "", fiber.StatusOK},
		{"SkippedPath", "secret", "/swagger/index.html", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}
			resp, err := setupApp(tt.key).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
