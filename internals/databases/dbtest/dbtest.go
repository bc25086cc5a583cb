// Package dbtest opens throwaway SQLite databases with the academy schema for tests.
package dbtest

import (
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"academy_backend/internals/configs"
	database "academy_backend/internals/databases"
	"academy_backend/internals/features/academy/main/model"
)

// Open returns a migrated in-memory database that is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := configs.Config{
		DBDriver:   configs.DriverSQLite,
		SQLitePath: ":memory:",
		DBLogLevel: "silent",
	}
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	database.TunePool(db, cfg.DBDriver)
	t.Cleanup(func() { database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Fixture inserts rows one at a time and fails the test on any error.
type Fixture struct {
	t  testing.TB
	db *gorm.DB
}

func NewFixture(t testing.TB, db *gorm.DB) *Fixture {
	return &Fixture{t: t, db: db}
}

func (f *Fixture) create(v any) {
	f.t.Helper()
	if err := f.db.Create(v).Error; err != nil {
		f.t.Fatalf("create %T: %v", v, err)
	}
}

func (f *Fixture) Group(name string) model.GroupModel {
	f.t.Helper()
	g := model.GroupModel{Name: name}
	f.create(&g)
	return g
}

func (f *Fixture) Teacher(name string) model.TeacherModel {
	f.t.Helper()
	tc := model.TeacherModel{Name: name}
	f.create(&tc)
	return tc
}

func (f *Fixture) Subject(name string, teacher model.TeacherModel) model.SubjectModel {
	f.t.Helper()
	s := model.SubjectModel{Name: name, TeacherID: teacher.ID}
	f.create(&s)
	return s
}

func (f *Fixture) Student(name string, group model.GroupModel) model.StudentModel {
	f.t.Helper()
	s := model.StudentModel{Name: name, GroupID: group.ID}
	f.create(&s)
	return s
}

// Grades records one grade per value, dated on consecutive days from 2024-09-01.
func (f *Fixture) Grades(student model.StudentModel, subject model.SubjectModel, values ...float64) {
	f.t.Helper()
	start := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	for i, v := range values {
		g := model.GradeModel{
			StudentID:    student.ID,
			SubjectID:    subject.ID,
			Grade:        v,
			DateReceived: datatypes.Date(start.AddDate(0, 0, i)),
		}
		f.create(&g)
	}
}
