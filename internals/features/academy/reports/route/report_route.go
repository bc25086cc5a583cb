// internals/features/academy/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/features/academy/reports/controller"
	"academy_backend/internals/features/academy/reports/service"
)

/*
Read-only report routes.
Mount: ReportRoutes(app.Group("/api"), db, cache) → /api/reports/...
*/
func ReportRoutes(r fiber.Router, db *gorm.DB, cache service.Cache) {
	h := controller.NewReportController(db, cache)

	reports := r.Group("/reports")
	reports.Get("/top-students", h.TopStudents)                             // 1
	reports.Get("/top-student", h.TopStudentInSubject)                      // 2 ?subject=
	reports.Get("/group-averages", h.GroupAveragesForSubject)               // 3 ?subject=
	reports.Get("/overall-average", h.OverallAverage)                       // 4
	reports.Get("/teacher-subjects", h.SubjectsByTeacher)                   // 5 ?teacher=
	reports.Get("/group-students", h.StudentsInGroup)                       // 6 ?group=
	reports.Get("/group-grades", h.GradesInGroupForSubject)                 // 7 ?group=&subject=
	reports.Get("/teacher-average", h.TeacherAverage)                       // 8 ?teacher=
	reports.Get("/student-subjects", h.SubjectsByStudent)                   // 9 ?student=
	reports.Get("/student-teacher-subjects", h.SubjectsByStudentAndTeacher) // 10 ?student=&teacher=
}
