// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/features/academy/reports/service"
	helper "academy_backend/internals/helpers"
	authMiddleware "academy_backend/internals/middlewares/auth"
	routeDetails "academy_backend/internals/route/details"
)

var startTime = time.Now()

type Options struct {
	// JWTSecret protects /api when set; empty leaves it public.
	JWTSecret string
	Cache     service.Cache
}

// NewApp builds the fiber app with the sonic JSON codec.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FromFiberError,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})
}

func SetupRoutes(app *fiber.App, db *gorm.DB, opts Options) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== API =====================
	var api fiber.Router
	if opts.JWTSecret != "" {
		log.Println("[INFO] Setting up API group (JWT)...")
		api = app.Group("/api", authMiddleware.AuthJWT(opts.JWTSecret))
	} else {
		log.Println("[INFO] Setting up API group (public, JWT_SECRET kosong)...")
		api = app.Group("/api")
	}

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Academy routes...")
	routeDetails.AcademyApiRoutes(api, db, opts.Cache)
}
