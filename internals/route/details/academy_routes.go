package details

import (
	AcademyRoutes "academy_backend/internals/features/academy/main/route"
	ReportRoutes "academy_backend/internals/features/academy/reports/route"
	ReportService "academy_backend/internals/features/academy/reports/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Contoh akses: /api/reports/top-students, /api/academy/groups/list
func AcademyApiRoutes(api fiber.Router, db *gorm.DB, cache ReportService.Cache) {
	ReportRoutes.ReportRoutes(api, db, cache)
	AcademyRoutes.AcademyRoutes(api, db)
}
