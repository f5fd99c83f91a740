package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger logs one line per request. Errors returned by later handlers are
// passed to the app's error handler first so the logged status is the one sent.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("http.method", c.Method()),
			zap.String("http.path", c.Path()),
			zap.String("http.route", c.Route().Path),
			zap.Int("http.status_code", status),
			zap.Int64("http.duration_ms", time.Since(start).Milliseconds()),
		}
		if requestID, ok := c.Locals("requestid").(string); ok && requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		level := zapcore.InfoLevel
		if status >= fiber.StatusInternalServerError {
			level = zapcore.ErrorLevel
		} else if status >= fiber.StatusBadRequest {
			level = zapcore.WarnLevel
		}
		if ce := logger.Check(level, "HTTP Request"); ce != nil {
			ce.Write(fields...)
		}
		return nil
	}
}
