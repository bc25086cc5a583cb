package database_test

import (
	"context"
	"testing"

	"academy_backend/internals/configs"
	database "academy_backend/internals/databases"
	"academy_backend/internals/databases/dbtest"
	"academy_backend/internals/features/academy/main/model"
)

func TestMigrateCreatesTables(t *testing.T) {
	db := dbtest.Open(t)

	for _, table := range []string{"groups", "students", "teachers", "subjects", "grades"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %q", table)
		}
	}
	if !db.Migrator().HasIndex(&model.GroupModel{}, "Name") {
		t.Fatal("expected unique index on groups.name")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestGroupNameUnique(t *testing.T) {
	db := dbtest.Open(t)
	f := dbtest.NewFixture(t, db)
	f.Group("Group 1")

	if err := db.Create(&model.GroupModel{Name: "Group 1"}).Error; err == nil {
		t.Fatal("expected duplicate group name to fail")
	}
}

func TestStudentEmailUniqueButNullable(t *testing.T) {
	db := dbtest.Open(t)
	f := dbtest.NewFixture(t, db)
	g := f.Group("Group 1")

	// two students without email are fine
	f.Student("Ann", g)
	f.Student("Bob", g)

	email := "same@example.com"
	if err := db.Create(&model.StudentModel{Name: "Cid", GroupID: g.ID, Email: &email}).Error; err != nil {
		t.Fatalf("create with email: %v", err)
	}
	if err := db.Create(&model.StudentModel{Name: "Dee", GroupID: g.ID, Email: &email}).Error; err == nil {
		t.Fatal("expected duplicate email to fail")
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := dbtest.Open(t)

	if err := db.Create(&model.StudentModel{Name: "Orphan", GroupID: 999}).Error; err == nil {
		t.Fatal("expected student with unknown group to fail")
	}
	if err := db.Create(&model.SubjectModel{Name: "Orphan", TeacherID: 999}).Error; err == nil {
		t.Fatal("expected subject with unknown teacher to fail")
	}

	var n int64
	db.Model(&model.StudentModel{}).Count(&n)
	if n != 0 {
		t.Fatalf("expected no students, got %d", n)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := database.Open(configs.Config{DBDriver: "oracle"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestPing(t *testing.T) {
	db := dbtest.Open(t)
	if err := database.Ping(context.Background(), db); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
