package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "academy_backend/internals/helpers"
)

const defaultRequestsPerMinute = 100

// Global limiter: untuk semua endpoint, per IP
func GlobalRateLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "❌ Too many requests. Please try again later.")
		},
	})
}
