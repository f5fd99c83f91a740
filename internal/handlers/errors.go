package handlers

import (
	"errors"

	"apiproducts/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler translates errors returned by handlers into HTTP responses.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			switch appErr.Kind {
			case apperrors.KindValidation:
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": appErr.Message,
					"errors":  appErr.Fields,
				})
			case apperrors.KindBadRequest:
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": appErr.Message,
				})
			case apperrors.KindUnsupportedMediaType:
				return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
					"message": appErr.Message,
				})
			case apperrors.KindNotFound:
				c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
				return c.Status(fiber.StatusNotFound).SendString(appErr.Message)
			}
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"message": fiberErr.Message,
			})
		}

		logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
