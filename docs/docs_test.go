package docs_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/will-aam/stock/docs"
)

func TestSpec_EsJSONValido(t *testing.T) {
	require.NotEmpty(t, docs.Spec)

	var spec map[string]any
	require.NoError(t, json.Unmarshal(docs.Spec, &spec))
	assert.Equal(t, "2.0", spec["swagger"])

	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok)
	for _, p := range []string{
		"/api/auth/register", "/api/auth/login",
		"/api/products/import", "/api/products/search",
		"/api/counts/scan", "/api/counts/items", "/api/counts/export",
	} {
		assert.Contains(t, paths, p)
	}
}

// El middleware lee la spec al registrarse; con la spec embebida el arranque
// no depende de ningún archivo en disco.
func TestSpec_MiddlewareArrancaSinArchivos(t *testing.T) {
	app := fiber.New()
	require.NotPanics(t, func() {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: docs.Spec,
			Path:        "docs",
			Title:       "Stock Count API",
		}))
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
