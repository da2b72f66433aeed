package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Logger - middleware для логирования HTTP запросов
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if requestID, ok := c.Locals(RequestIDKey).(string); ok {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
			logger.Error("HTTP request", fields...)
		} else {
			logger.Info("HTTP request", fields...)
		}

		return err
	}
}
