// internals/features/academy/main/controller/academy_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academy_backend/internals/features/academy/main/dto"
	"academy_backend/internals/features/academy/main/model"
	helper "academy_backend/internals/helpers"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type AcademyController struct {
	DB *gorm.DB
}

func NewAcademyController(db *gorm.DB) *AcademyController {
	return &AcademyController{DB: db}
}

/*
=========================================================
	LIST
	GET /api/academy/{groups,students,teachers,subjects}/list
	Query: page, per_page (alias limit)
=========================================================
*/

func (ctl *AcademyController) ListGroups(c *fiber.Ctx) error {
	var rows []model.GroupModel
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.GroupModel{})
	pg, ok, err := paginate(c, tx, "groups", "", &rows)
	if !ok {
		return err
	}
	return helper.JsonList(c, "ok", dto.FromGroupModels(rows), pg)
}

func (ctl *AcademyController) ListTeachers(c *fiber.Ctx) error {
	var rows []model.TeacherModel
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.TeacherModel{})
	pg, ok, err := paginate(c, tx, "teachers", "", &rows)
	if !ok {
		return err
	}
	return helper.JsonList(c, "ok", dto.FromTeacherModels(rows), pg)
}

// ?group_id= narrows the list to one group
func (ctl *AcademyController) ListStudents(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})

	groupID, set, valid := dto.ParseIDFilter(c.Query("group_id"))
	if !valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "group_id must be a positive integer")
	}
	if set {
		tx = tx.Where("students.group_id = ?", groupID)
	}

	var rows []model.StudentModel
	pg, ok, err := paginate(c, tx, "students", "Group", &rows)
	if !ok {
		return err
	}
	return helper.JsonList(c, "ok", dto.FromStudentModels(rows), pg)
}

// ?teacher_id= narrows the list to one teacher
func (ctl *AcademyController) ListSubjects(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.SubjectModel{})

	teacherID, set, valid := dto.ParseIDFilter(c.Query("teacher_id"))
	if !valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id must be a positive integer")
	}
	if set {
		tx = tx.Where("subjects.teacher_id = ?", teacherID)
	}

	var rows []model.SubjectModel
	pg, ok, err := paginate(c, tx, "subjects", "Teacher", &rows)
	if !ok {
		return err
	}
	return helper.JsonList(c, "ok", dto.FromSubjectModels(rows), pg)
}

/* ===================== HELPERS ===================== */

// paginate counts tx, then loads one page ordered by name, id into dest,
// preloading the named relation when set. When ok is false the error response
// has already been written.
func paginate(c *fiber.Ctx, tx *gorm.DB, table, preload string, dest any) (helper.Pagination, bool, error) {
	p := helper.ResolvePaging(c, defaultPerPage, maxPerPage)

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count %s: %v", table, err)
		return helper.Pagination{}, false, helper.JsonError(c, fiber.StatusInternalServerError, "failed to list "+table)
	}

	q := tx.Order(table + ".name ASC").Order(table + ".id ASC").Offset(p.Offset).Limit(p.Limit)
	if preload != "" {
		q = q.Preload(preload)
	}
	if err := q.Find(dest).Error; err != nil {
		log.Printf("[ERROR] list %s: %v", table, err)
		return helper.Pagination{}, false, helper.JsonError(c, fiber.StatusInternalServerError, "failed to list "+table)
	}

	// Count is filled from data by JsonList
	return helper.BuildPaginationFromPage(total, p.Page, p.PerPage), true, nil
}
