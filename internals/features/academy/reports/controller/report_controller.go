// internals/features/academy/reports/controller/report_controller.go
package controller

import (
	"context"
	"log"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academy_backend/internals/features/academy/reports/dto"
	"academy_backend/internals/features/academy/reports/service"
	helper "academy_backend/internals/helpers"
)

var validate = validator.New()

type ReportController struct {
	Service *service.ReportService
	Cache   service.Cache
}

func NewReportController(db *gorm.DB, cache service.Cache) *ReportController {
	if cache == nil {
		cache = service.NoopCache{}
	}
	return &ReportController{Service: service.NewReportService(db), Cache: cache}
}

/* ===================== HANDLERS ===================== */

// GET /api/reports/top-students
func (h *ReportController) TopStudents(c *fiber.Ctx) error {
	return serve(c, h.Cache, service.CacheKey("top-students"), h.Service.TopStudents)
}

// GET /api/reports/top-student?subject=
func (h *ReportController) TopStudentInSubject(c *fiber.Ctx) error {
	var q dto.SubjectQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	return serve(c, h.Cache, service.CacheKey("top-student", q.Params()...),
		func(ctx context.Context) (dto.Result[dto.StudentAverage], error) {
			return h.Service.TopStudentInSubject(ctx, q.Subject)
		})
}

// GET /api/reports/group-averages?subject=
func (h *ReportController) GroupAveragesForSubject(c *fiber.Ctx) error {
	var q dto.SubjectQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	return serve(c, h.Cache, service.CacheKey("group-averages", q.Params()...),
		func(ctx context.Context) (dto.Result[[]dto.GroupAverage], error) {
			return h.Service.GroupAveragesForSubject(ctx, q.Subject)
		})
}

// GET /api/reports/overall-average
func (h *ReportController) OverallAverage(c *fiber.Ctx) error {
	return serve(c, h.Cache, service.CacheKey("overall-average"), h.Service.OverallAverage)
}

// GET /api/reports/teacher-subjects?teacher=
func (h *ReportController) SubjectsByTeacher(c *fiber.Ctx) error {
	var q dto.TeacherQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	return serve(c, h.Cache, service.CacheKey("teacher-subjects", q.Params()...),
		func(ctx context.Context) (dto.Result[[]string], error) {
			return h.Service.SubjectsByTeacher(ctx, q.Teacher)
		})
}

// GET /api/reports/group-students?group=
func (h *ReportController) StudentsInGroup(c *fiber.Ctx) error {
	var q dto.GroupQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	return serve(c, h.Cache, service.CacheKey("group-students", q.Params()...),
		func(ctx context.Context) (dto.Result[[]string], error) {
			return h.Service.StudentsInGroup(ctx, q.Group)
		})
}

// GET /api/reports/group-grades?group=&subject=
func (h *ReportController) GradesInGroupForSubject(c *fiber.Ctx) error {
	var q dto.GroupSubjectQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	return serve(c, h.Cache, service.CacheKey("group-grades", q.Params()...),
		func(ctx context.Context) (dto.Result[[]dto.StudentGrade], error) {
			return h.Service.GradesInGroupForSubject(ctx, q.Group, q.Subject)
		})
}

// GET /api/reports/teacher-average?teacher=
func (h *ReportController) TeacherAverage(c *fiber.Ctx) error {
	var q dto.TeacherQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	return serve(c, h.Cache, service.CacheKey("teacher-average", q.Params()...),
		func(ctx context.Context) (dto.Result[dto.Average], error) {
			return h.Service.TeacherAverage(ctx, q.Teacher)
		})
}

// GET /api/reports/student-subjects?student=
func (h *ReportController) SubjectsByStudent(c *fiber.Ctx) error {
	var q dto.StudentQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	return serve(c, h.Cache, service.CacheKey("student-subjects", q.Params()...),
		func(ctx context.Context) (dto.Result[[]string], error) {
			return h.Service.SubjectsByStudent(ctx, q.Student)
		})
}

// GET /api/reports/student-teacher-subjects?student=&teacher=
func (h *ReportController) SubjectsByStudentAndTeacher(c *fiber.Ctx) error {
	var q dto.StudentTeacherQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	return serve(c, h.Cache, service.CacheKey("student-teacher-subjects", q.Params()...),
		func(ctx context.Context) (dto.Result[[]string], error) {
			return h.Service.SubjectsByStudentAndTeacher(ctx, q.Student, q.Teacher)
		})
}

/* ===================== HELPERS ===================== */

// parseQuery binds and validates the query string. When it returns false the
// error response has already been written.
func parseQuery(c *fiber.Ctx, q any) (bool, error) {
	if err := c.QueryParser(q); err != nil {
		return false, helper.JsonError(c, fiber.StatusBadRequest, "invalid query string")
	}
	if err := validate.Struct(q); err != nil {
		return false, helper.ValidationError(c, err)
	}
	return true, nil
}

// serve answers from cache when possible, otherwise runs the report.
// Only found results are cached.
func serve[T any](c *fiber.Ctx, cache service.Cache, key string, run func(context.Context) (dto.Result[T], error)) error {
	ctx := c.UserContext()

	if b, ok := cache.Get(ctx, key); ok {
		c.Set("X-Cache", "HIT")
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(b)
	}

	res, err := run(ctx)
	if err != nil {
		log.Printf("[ERROR] report %s: %v", key, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to run report")
	}
	if !res.Found {
		return helper.JsonError(c, fiber.StatusNotFound, res.Message)
	}

	b, err := sonic.Marshal(helper.OKBody("ok", res.Data))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to encode report")
	}
	cache.Set(ctx, key, b)

	c.Set("X-Cache", "MISS")
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(b)
}
