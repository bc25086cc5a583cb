package route

import (
	"academy_backend/internals/features/academy/main/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AcademyRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAcademyController(db)

	// Group: /academy
	academy := r.Group("/academy")
	academy.Get("/groups/list", ctrl.ListGroups)     // 📄 Semua grup
	academy.Get("/students/list", ctrl.ListStudents) // 📄 Siswa (?group_id=)
	academy.Get("/teachers/list", ctrl.ListTeachers) // 📄 Semua pengajar
	academy.Get("/subjects/list", ctrl.ListSubjects) // 📄 Mata pelajaran (?teacher_id=)
}
