package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID header de correlación por petición.
const HeaderRequestID = "X-Request-ID"

// RequestLogger registra cada petición con un request id propio.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(HeaderRequestID, requestID)

		start := time.Now()
		err := c.Next()

		var ev *zerolog.Event
		if err != nil {
			// El status definitivo lo fija el ErrorHandler después de este middleware.
			ev = log.Warn().Err(err)
		} else {
			ev = log.Info().Int("status", c.Response().StatusCode())
		}
		ev.Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
