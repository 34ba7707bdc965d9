package routes

import (
	"github.com/gofiber/fiber/v2"

	"ftms_backend/internals/configs"
)

// DocsRoutes serves the OpenAPI document only when ENABLE_API_DOCS=true;
// otherwise the path falls through to the app's 404 handler.
func DocsRoutes(app *fiber.App) {
	if !configs.EnableAPIDocs {
		return
	}

	app.Get("/api/docs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"openapi": "3.0.3",
			"info": fiber.Map{
				"title":   "FTMS Backend API",
				"version": "1.0.0",
			},
			"paths": fiber.Map{
				"/api/auth/login":  fiber.Map{"post": fiber.Map{"summary": "Login"}},
				"/api/u/revenues":  fiber.Map{"get": fiber.Map{"summary": "List revenues"}, "post": fiber.Map{"summary": "Create revenue"}},
				"/api/u/expenses":  fiber.Map{"get": fiber.Map{"summary": "List expenses"}, "post": fiber.Map{"summary": "Create expense"}},
				"/api/a/accounts":  fiber.Map{"get": fiber.Map{"summary": "List accounts"}, "post": fiber.Map{"summary": "Create account"}},
				"/api/a/journal":   fiber.Map{"get": fiber.Map{"summary": "List journal entries"}},
				"/api/a/operations/sync": fiber.Map{"post": fiber.Map{"summary": "Sync operations cache"}},
			},
		})
	})
}
