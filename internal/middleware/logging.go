package middleware

import (
	"errors"
	"time"

	"afiyazone/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// RequestContext copies the request id set by the requestid middleware into
// the request's context so loggers downstream pick it up.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		c.SetUserContext(logger.WithRequestID(c.UserContext(), rid))
		return c.Next()
	}
}

// RequestLogger writes one structured line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		fields := []zap.Field{
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if userID := UserIDFrom(c); userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}
		logger.FromCtx(c.UserContext()).Info("HTTP Request", fields...)
		return err
	}
}
