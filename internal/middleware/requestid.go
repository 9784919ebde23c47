package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID is a Fiber middleware that tags every request with an id. An
// incoming X-Request-Id header is honored so upstream proxies can correlate;
// otherwise a fresh UUID is generated. The id is echoed on the response and
// stored in locals for handlers that want to log it.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Locals("request_id", id)
		c.Set(fiber.HeaderXRequestID, id)

		return c.Next()
	}
}
