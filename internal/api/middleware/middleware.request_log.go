package middleware

import (
	"time"

	"star_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// RequestLogMiddleware ghi log mỗi request vào audit logger với thời gian xử lý.
// Request ID được middleware requestid của Fiber set trước đó.
func RequestLogMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		entry := logger.WithRequest(c)
		entry = entry.WithField("status", c.Response().StatusCode()).
			WithField("duration_ms", time.Since(start).Milliseconds())
		if err != nil {
			entry.WithError(err).Warn("Request completed with error")
		} else {
			entry.Info("Request completed")
		}

		return err
	}
}
