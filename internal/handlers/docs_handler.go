package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

// RegisterDocsRoutes serves the registered OpenAPI document at /swagger/doc.json.
func RegisterDocsRoutes(router fiber.Router) {
	router.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "API documentation is not registered")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})
}
