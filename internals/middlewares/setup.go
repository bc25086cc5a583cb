package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"academy_backend/internals/middlewares/logger"
)

type Options struct {
	CORSOrigins string
	RateLimit   int
	TimeZone    string
}

// SetupMiddlewares memasang middleware global; urutan penting
// (request id harus ada sebelum logger & recover).
func SetupMiddlewares(app *fiber.App, opts Options) {
	app.Use(RequestID())
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware(opts.TimeZone))
	app.Use(CorsMiddleware(opts.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(GlobalRateLimiter(opts.RateLimit))
}
